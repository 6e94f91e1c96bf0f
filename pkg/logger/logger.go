// Package logger provides contracts.Logger implementations: a log/slog
// backed logger with a coloured text format, and adapters for zap and
// hclog.
package logger

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

type sLogger struct {
	*slog.Logger
}

var _ contracts.Logger = (*sLogger)(nil)

func NewLogger(opts ...Option) contracts.Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &sLogger{Logger: slog.New(o.handler())}
}

// FromSlog wraps an existing slog logger.
func FromSlog(l *slog.Logger) contracts.Logger {
	return &sLogger{Logger: l}
}

func (l *sLogger) Log(level contracts.LogLevel, message string, fields map[string]any) {
	l.LogAttrs(context.Background(), toSlogLevel(level), message, contextAttrs(fields)...)
}

// contextAttrs turns a log context into attributes sorted by key so the
// output is stable.
func contextAttrs(fields map[string]any) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}
