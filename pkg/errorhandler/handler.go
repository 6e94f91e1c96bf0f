// Package errorhandler captures runtime error signals, panics and errors
// escaping request handlers and reports them to a Logger.
//
// A single ErrorHandler plays three roles: a direct logging entry point
// (Log), a process wide signal sink armed through AlsoLog and
// ConvertErrorsToExceptions, and a request middleware (Handle). Only one
// handler should be armed per process because the hooks it installs are
// process wide.
package errorhandler

import (
	"bytes"
	"sync"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/severity"
)

const defaultReservedMemory = 10 * 1024

type ErrorHandler struct {
	mu sync.RWMutex

	logger contracts.Logger
	hooks  Hooks

	loggedTypes         severity.Mask
	convertFatalErrors  bool
	errorHandlerSet     bool
	shutdownFunctionSet bool
	chainedHandler      SignalHandler

	reservedMemorySize int
	reservedMemory     []byte

	lastError error
}

type Option func(*ErrorHandler)

func WithLogger(logger contracts.Logger) Option {
	return func(h *ErrorHandler) {
		h.logger = logger
	}
}

func WithHooks(hooks Hooks) Option {
	return func(h *ErrorHandler) {
		if hooks == nil {
			hooks = noopHooks{}
		}
		h.hooks = hooks
	}
}

// WithReservedMemory sets the size of the block released right before
// shutdown logging. Zero disables the reservation.
func WithReservedMemory(size int) Option {
	return func(h *ErrorHandler) {
		if size < 0 {
			size = 0
		}
		h.reservedMemorySize = size
	}
}

func New(opts ...Option) *ErrorHandler {
	h := &ErrorHandler{
		hooks:              noopHooks{},
		reservedMemorySize: defaultReservedMemory,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetLogger swaps the logger. A nil logger turns logging into a no-op.
func (h *ErrorHandler) SetLogger(logger contracts.Logger) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logger = logger
}

func (h *ErrorHandler) Logger() contracts.Logger {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.logger
}

func (h *ErrorHandler) LoggedErrorTypes() severity.Mask {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loggedTypes
}

// ChainedErrorHandler returns the handler that was installed before this
// one took over, or nil.
func (h *ErrorHandler) ChainedErrorHandler() SignalHandler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.chainedHandler
}

func (h *ErrorHandler) reserveMemory() {
	if h.reservedMemory != nil || h.reservedMemorySize == 0 {
		return
	}
	h.reservedMemory = bytes.Repeat([]byte{' '}, h.reservedMemorySize)
}
