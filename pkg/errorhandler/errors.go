package errorhandler

import "github.com/shuldan/errorhandler/pkg/errors"

var newHandlerCode = errors.WithPrefix("ERRHANDLER")

var (
	// ErrInvalidNext matches errors.ErrInvalidArgument.
	ErrInvalidNext = errors.ErrInvalidArgument.WithDetail("argument", "next")

	ErrInvalidConfig = newHandlerCode().New("invalid error handler configuration: {{.reason}}")
)
