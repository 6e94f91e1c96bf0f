package contracts

import (
	"io"
	"net/http"
)

// Response is the response value threaded through a request pipeline.
// WithStatus may return the receiver or a new value; callers must use
// the returned one.
type Response interface {
	WithStatus(code int) Response
	Body() io.Writer
}

// Next is the downstream step of a request pipeline.
type Next func(req *http.Request, resp Response) (Response, error)
