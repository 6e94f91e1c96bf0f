// Package process is the process wide side of error interception: it
// keeps the installed error handler, the shutdown functions, the
// reporting level and the last fatal error, and implements
// errorhandler.Hooks on top of them.
package process

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/shuldan/errorhandler/pkg/errorhandler"
	"github.com/shuldan/errorhandler/pkg/severity"
)

const fatalExitCode = 255

type Runtime struct {
	mu sync.Mutex

	handler      errorhandler.SignalHandler
	shutdown     []func()
	shutdownDone bool
	lastFatal    *errorhandler.FatalError
	reporting    severity.Mask

	writer io.Writer
	exit   func(code int)
}

var _ errorhandler.Hooks = (*Runtime)(nil)

type Option func(*Runtime)

// WithWriter sets where unhandled signals are reported. Defaults to stderr.
func WithWriter(w io.Writer) Option {
	return func(r *Runtime) {
		if w == nil {
			w = io.Discard
		}
		r.writer = w
	}
}

func WithExit(exit func(code int)) Option {
	return func(r *Runtime) {
		r.exit = exit
	}
}

func WithErrorReporting(mask severity.Mask) Option {
	return func(r *Runtime) {
		r.reporting = mask
	}
}

func New(opts ...Option) *Runtime {
	r := &Runtime{
		reporting: severity.All,
		writer:    os.Stderr,
		exit:      os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRuntime = New()

// Default returns the runtime shared by the whole process.
func Default() *Runtime {
	return defaultRuntime
}

func (r *Runtime) SetErrorHandler(handler errorhandler.SignalHandler) errorhandler.SignalHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.handler
	r.handler = handler
	return prev
}

func (r *Runtime) RegisterShutdownFunction(fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdown = append(r.shutdown, fn)
}

func (r *Runtime) ErrorGetLast() *errorhandler.FatalError {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastFatal == nil {
		return nil
	}
	last := *r.lastFatal
	return &last
}

func (r *Runtime) ErrorReporting() severity.Mask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporting
}

// SetErrorReporting changes the reporting level and returns the old one.
func (r *Runtime) SetErrorReporting(mask severity.Mask) severity.Mask {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.reporting
	r.reporting = mask
	return prev
}

// Suppress runs fn with the reporting level set to none, so signals it
// raises are neither logged nor reported.
func (r *Runtime) Suppress(fn func()) {
	prev := r.SetErrorReporting(severity.None)
	defer r.SetErrorReporting(prev)
	fn()
}

// Shutdown runs the registered shutdown functions once, in registration
// order. A panicking function does not stop the ones after it.
func (r *Runtime) Shutdown() {
	r.mu.Lock()
	if r.shutdownDone {
		r.mu.Unlock()
		return
	}
	r.shutdownDone = true
	fns := slices.Clone(r.shutdown)
	r.mu.Unlock()

	for _, fn := range fns {
		runIsolated(fn)
	}
}

func runIsolated(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (r *Runtime) report(code severity.Code, message, file string, line int) {
	_, label := severity.Classify(code)
	_, _ = fmt.Fprintf(r.writer, "%s: %s in %s on line %d\n", label, message, file, line)
}
