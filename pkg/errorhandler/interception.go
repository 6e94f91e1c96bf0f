package errorhandler

import "github.com/shuldan/errorhandler/pkg/severity"

// AlsoLog adds mask to the severities that are logged. The process error
// hook is installed the first time a non fatal severity is added and the
// shutdown hook the first time an unhandled one is.
func (h *ErrorHandler) AlsoLog(mask severity.Mask) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.loggedTypes = h.loggedTypes.With(mask)

	if h.loggedTypes.Intersects(severity.NonFatal) {
		h.initErrorHandler()
	}
	if h.loggedTypes.Intersects(severity.Unhandled) {
		h.initShutdownFunction()
	}
}

// ConvertErrorsToExceptions makes HandleError return recoverable and user
// errors as a *StructuredError instead of only logging them.
func (h *ErrorHandler) ConvertErrorsToExceptions() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.convertFatalErrors = true
	h.initErrorHandler()
}

func (h *ErrorHandler) initErrorHandler() {
	if h.errorHandlerSet {
		return
	}
	h.chainedHandler = h.hooks.SetErrorHandler(h.HandleError)
	h.errorHandlerSet = true
}

func (h *ErrorHandler) initShutdownFunction() {
	if h.shutdownFunctionSet {
		return
	}
	h.reserveMemory()
	h.hooks.RegisterShutdownFunction(h.ShutdownFunction)
	h.shutdownFunctionSet = true
}

// HandleError is the SignalHandler installed into the process. Signals
// outside the process reporting level are ignored. In conversion mode a
// convertible signal comes back as a *StructuredError after logging.
func (h *ErrorHandler) HandleError(code severity.Code, message, file string, line int, extra map[string]any) (bool, error) {
	if !h.hooks.ErrorReporting().Has(code) {
		return false, nil
	}

	h.mu.RLock()
	logged := h.loggedTypes.Has(code)
	convert := h.convertFatalErrors && severity.Convertible.Has(code)
	h.mu.RUnlock()

	signal := NewStructuredError(code, message, file, line)
	if logged {
		h.Log(signal, extra)
	}
	if convert {
		return true, signal
	}
	return logged, nil
}

// ShutdownFunction runs once when the process terminates. It gives back
// the reserved memory first and then logs the fatal error that ended the
// process, if there is one and its severity is logged.
func (h *ErrorHandler) ShutdownFunction() {
	h.mu.Lock()
	h.reservedMemory = nil
	mask := h.loggedTypes
	h.mu.Unlock()

	last := h.hooks.ErrorGetLast()
	if last == nil {
		return
	}
	if !mask.Has(last.Code) || !severity.Unhandled.Has(last.Code) {
		return
	}

	h.Log(NewStructuredError(last.Code, last.Message, last.File, last.Line))
}
