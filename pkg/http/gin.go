package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errorhandler"
)

// ginResponse writes straight through the gin context. Gin streams its
// responses, so a failure after the handler wrote headers only gets
// logged.
type ginResponse struct {
	c *gin.Context
}

func (r ginResponse) WithStatus(code int) contracts.Response {
	if !r.c.Writer.Written() {
		r.c.Status(code)
	}
	return r
}

func (r ginResponse) Body() io.Writer {
	if r.c.Writer.Written() {
		return io.Discard
	}
	return r.c.Writer
}

// GinMiddleware is Middleware for gin routers. Private errors attached
// with c.Error count as errors returned by the handler chain.
func GinMiddleware(h *errorhandler.ErrorHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := func(req *http.Request, resp contracts.Response) (contracts.Response, error) {
			c.Request = req
			c.Next()
			if last := c.Errors.ByType(gin.ErrorTypePrivate).Last(); last != nil {
				return nil, last.Err
			}
			return resp, nil
		}

		// A panic leaves the chain index mid way, so stop gin from resuming it.
		defer c.Abort()
		if _, err := h.Handle(c.Request, ginResponse{c: c}, next); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}
