package http

import "github.com/shuldan/errorhandler/pkg/errors"

var newHTTPCode = errors.WithPrefix("HTTP")

var (
	ErrServerStart          = newHTTPCode().New("failed to start server")
	ErrServerStop           = newHTTPCode().New("failed to stop server")
	ErrServerAlreadyRunning = newHTTPCode().New("server already running")
	ErrInvalidHandler       = newHTTPCode().New("handler cannot be nil")
	ErrInvalidErrorHandler  = newHTTPCode().New("error handler cannot be nil")
)
