package process

import (
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/shuldan/errorhandler/pkg/errorhandler"
	"github.com/shuldan/errorhandler/pkg/severity"
)

// Trigger raises a runtime error signal from the caller's location. The
// installed handler sees it first; a non-nil error it returns is handed
// back to the caller. Signals nobody handled are written to the
// runtime's writer when they are in the reporting level, and unhandled
// user or recoverable errors end the process like Fatal does.
func (r *Runtime) Trigger(code severity.Code, message string, extra ...map[string]any) error {
	_, file, line, _ := runtime.Caller(1)
	return r.raise(code, message, file, line, mergeExtra(extra))
}

func (r *Runtime) raise(code severity.Code, message, file string, line int, extra map[string]any) error {
	r.mu.Lock()
	handler := r.handler
	reporting := r.reporting
	r.mu.Unlock()

	if handler != nil {
		handled, err := handler(code, message, file, line, extra)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	if !reporting.Has(code) {
		return nil
	}
	if severity.Convertible.Has(code) {
		r.fatal(code, message, file, line)
		return nil
	}
	r.report(code, message, file, line)
	return nil
}

// Fatal records a fatal error at the caller's location, runs the
// shutdown functions and exits with status 255.
func (r *Runtime) Fatal(code severity.Code, message string) {
	_, file, line, _ := runtime.Caller(1)
	r.fatal(code, message, file, line)
}

func (r *Runtime) fatal(code severity.Code, message, file string, line int) {
	r.recordFatal(code, message, file, line)
	if r.ErrorReporting().Has(code) {
		r.report(code, message, file, line)
	}
	r.Shutdown()
	r.exit(fatalExitCode)
}

func (r *Runtime) recordFatal(code severity.Code, message, file string, line int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFatal = &errorhandler.FatalError{
		Code:    code,
		Message: message,
		File:    file,
		Line:    line,
	}
}

// Guard runs fn. If it panics, the panic is recorded as the last fatal
// error, the shutdown functions run, and the panic continues.
func (r *Runtime) Guard(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			file, line := panicLocation()
			r.recordFatal(severity.Error, fmt.Sprint(rec), file, line)
			r.Shutdown()
			panic(rec)
		}
	}()
	fn()
}

// panicLocation finds the first frame below the runtime's panic
// machinery. It must be called from the deferred recover function.
func panicLocation() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			return frame.File, frame.Line
		}
		if !more {
			return "unknown", 0
		}
	}
}

func mergeExtra(extra []map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, e := range extra {
		maps.Copy(merged, e)
	}
	return merged
}
