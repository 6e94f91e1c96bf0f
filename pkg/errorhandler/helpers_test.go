package errorhandler

import (
	"bytes"
	"io"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/severity"
)

type logEntry struct {
	level   contracts.LogLevel
	message string
	context map[string]any
}

type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Log(level contracts.LogLevel, message string, context map[string]any) {
	l.entries = append(l.entries, logEntry{level: level, message: message, context: context})
}

type fakeHooks struct {
	previous SignalHandler

	setErrorHandlerCalls int
	installed            SignalHandler

	registerShutdownCalls int
	shutdown              func()

	reporting      severity.Mask
	reportingCalls int

	last      *FatalError
	lastCalls int
}

func newFakeHooks() *fakeHooks {
	return &fakeHooks{reporting: severity.All}
}

func (f *fakeHooks) SetErrorHandler(handler SignalHandler) SignalHandler {
	f.setErrorHandlerCalls++
	f.installed = handler
	return f.previous
}

func (f *fakeHooks) RegisterShutdownFunction(fn func()) {
	f.registerShutdownCalls++
	f.shutdown = fn
}

func (f *fakeHooks) ErrorGetLast() *FatalError {
	f.lastCalls++
	return f.last
}

func (f *fakeHooks) ErrorReporting() severity.Mask {
	f.reportingCalls++
	return f.reporting
}

type fakeResponse struct {
	status  int
	body    bytes.Buffer
	derived *fakeResponse
}

func (r *fakeResponse) WithStatus(code int) contracts.Response {
	r.derived = &fakeResponse{status: code}
	return r.derived
}

func (r *fakeResponse) Body() io.Writer {
	return &r.body
}

type customError struct{}

func (customError) Error() string { return "" }

type nilDerefError struct {
	reason string
}

func (e *nilDerefError) Error() string { return e.reason }
