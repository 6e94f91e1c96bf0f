package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

// Response buffers what a handler writes so a failure can still be
// turned into a clean 500. It is both an http.ResponseWriter and a
// contracts.Response.
type Response struct {
	status      int
	header      http.Header
	body        bytes.Buffer
	wroteHeader bool
}

var (
	_ http.ResponseWriter = (*Response)(nil)
	_ contracts.Response  = (*Response)(nil)
)

func NewResponse() *Response {
	return &Response{header: make(http.Header)}
}

func (r *Response) WithStatus(code int) contracts.Response {
	r.status = code
	r.wroteHeader = true
	return r
}

func (r *Response) Body() io.Writer {
	return r
}

func (r *Response) Header() http.Header {
	return r.header
}

func (r *Response) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
}

func (r *Response) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(p)
}

func (r *Response) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *Response) Bytes() []byte {
	return r.body.Bytes()
}

// Flush copies the buffered headers, status and body to w.
func (r *Response) Flush(w http.ResponseWriter) error {
	dst := w.Header()
	for key, values := range r.header {
		dst[key] = append([]string(nil), values...)
	}
	w.WriteHeader(r.StatusCode())
	_, err := w.Write(r.body.Bytes())
	return err
}
