package logger

import (
	"io"
	"strings"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

// NewFromConfig builds the slog logger from the logger section:
//
//	logger:
//	  level: info        # debug .. emergency
//	  format: text       # or json
//	  color: true
//	  source: false
func NewFromConfig(cfg contracts.Config, w io.Writer) (contracts.Logger, error) {
	opts := []Option{WithWriter(w)}

	level, err := ParseLevel(cfg.GetString("logger.level", string(contracts.LevelInfo)))
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithLevel(level))

	switch format := strings.ToLower(cfg.GetString("logger.format", "text")); format {
	case "text":
		opts = append(opts, WithText())
	case "json":
		opts = append(opts, WithJSON())
	default:
		return nil, ErrUnknownFormat.WithDetail("format", format)
	}

	if cfg.GetBool("logger.color", false) {
		opts = append(opts, WithColor())
	}
	if cfg.GetBool("logger.source", false) {
		opts = append(opts, WithSource())
	}

	return NewLogger(opts...), nil
}
