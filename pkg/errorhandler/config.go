package errorhandler

import (
	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/severity"
)

const configKey = "error_handler"

// NewFromConfig builds a handler from the error_handler section:
//
//	error_handler:
//	  also_log: [warning, notice, error]
//	  convert_errors_to_exceptions: true
//	  reserved_memory: 10240
//
// Options are applied before the section, so hooks and logger passed in
// are already in place when the section arms them.
func NewFromConfig(cfg contracts.Config, opts ...Option) (*ErrorHandler, error) {
	h := New(opts...)

	sub, ok := cfg.GetSub(configKey)
	if !ok {
		return h, nil
	}

	if sub.Has("reserved_memory") {
		size := sub.GetInt("reserved_memory", -1)
		if size < 0 {
			return nil, ErrInvalidConfig.WithDetail("reason", "reserved_memory must be a non-negative integer")
		}
		WithReservedMemory(size)(h)
	}

	mask, err := severity.ParseMask(sub.GetStringSlice("also_log")...)
	if err != nil {
		return nil, ErrInvalidConfig.WithDetail("reason", "also_log").WithCause(err)
	}
	if mask != severity.None {
		h.AlsoLog(mask)
	}

	if sub.GetBool("convert_errors_to_exceptions", false) {
		h.ConvertErrorsToExceptions()
	}

	return h, nil
}
