package errorhandler

import "github.com/shuldan/errorhandler/pkg/severity"

// SignalHandler receives runtime error signals. It reports whether the
// signal was handled; a non-nil error is the signal promoted to an error
// that the code raising it has to deal with.
type SignalHandler func(code severity.Code, message, file string, line int, extra map[string]any) (bool, error)

// FatalError describes the last error that terminated the process.
type FatalError struct {
	Code    severity.Code
	Message string
	File    string
	Line    int
}

// Hooks is the process side the handler installs itself into.
type Hooks interface {
	// SetErrorHandler installs handler and returns the previous one.
	SetErrorHandler(handler SignalHandler) SignalHandler
	RegisterShutdownFunction(fn func())
	// ErrorGetLast returns nil when no fatal error was recorded.
	ErrorGetLast() *FatalError
	ErrorReporting() severity.Mask
}

type noopHooks struct{}

func (noopHooks) SetErrorHandler(SignalHandler) SignalHandler { return nil }
func (noopHooks) RegisterShutdownFunction(func())             {}
func (noopHooks) ErrorGetLast() *FatalError                   { return nil }
func (noopHooks) ErrorReporting() severity.Mask               { return severity.All }
