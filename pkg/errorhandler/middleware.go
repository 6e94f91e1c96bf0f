package errorhandler

import (
	"io"
	"net/http"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

const fallbackBody = "Unexpected error"

// Handle calls next and turns any error it returns, or panic it raises,
// into a 500 response with a generic body. The failure is logged as
// uncaught whatever the logged severities are. http.ErrAbortHandler
// panics are passed on.
func (h *ErrorHandler) Handle(req *http.Request, resp contracts.Response, next contracts.Next) (contracts.Response, error) {
	if next == nil {
		return nil, ErrInvalidNext
	}

	result, err := invoke(req, resp, next)
	if err == nil {
		return result, nil
	}

	h.mu.Lock()
	h.lastError = err
	h.mu.Unlock()

	h.logUncaught(err)

	fallback := resp.WithStatus(http.StatusInternalServerError)
	_, _ = io.WriteString(fallback.Body(), fallbackBody)
	return fallback, nil
}

func invoke(req *http.Request, resp contracts.Response, next contracts.Next) (result contracts.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == http.ErrAbortHandler {
				panic(r)
			}
			result, err = nil, newPanicError(r)
		}
	}()
	return next(req, resp)
}

// LastError returns the error captured by the last failed Handle call.
func (h *ErrorHandler) LastError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastError
}
