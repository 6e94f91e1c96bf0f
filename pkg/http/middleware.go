package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errorhandler"
)

const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// HandlerFunc is an http handler that can fail with an error instead of
// writing an error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to http.Handler. Errors it returns and panics it
// raises go through h.Handle and end up as a 500 response.
func Handler(h *errorhandler.ErrorHandler, fn HandlerFunc) (http.Handler, error) {
	if h == nil {
		return nil, ErrInvalidErrorHandler
	}
	if fn == nil {
		return nil, ErrInvalidHandler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next := func(req *http.Request, _ contracts.Response) (contracts.Response, error) {
			out := NewResponse()
			if err := fn(out, req); err != nil {
				return nil, err
			}
			return out, nil
		}
		serve(h, w, r, next)
	}), nil
}

// Middleware wraps plain http handlers with h. Output is buffered so a
// panic halfway through a response never reaches the client.
func Middleware(h *errorhandler.ErrorHandler) func(http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next := func(req *http.Request, _ contracts.Response) (contracts.Response, error) {
				out := NewResponse()
				inner.ServeHTTP(out, req)
				return out, nil
			}
			serve(h, w, r, next)
		})
	}
}

func serve(h *errorhandler.ErrorHandler, w http.ResponseWriter, r *http.Request, next contracts.Next) {
	result, err := h.Handle(r, NewResponse(), next)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	out, ok := result.(*Response)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	_ = out.Flush(w)
}

// RequestIDMiddleware makes sure every request carries an X-Request-ID,
// generating one when the client sent none. The id is echoed in the
// response and available through RequestIDFromContext.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(RequestIDHeader, id)
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
