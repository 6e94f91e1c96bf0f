package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

type format int

const (
	formatText format = iota
	formatJSON
)

type Option func(*options)

// options collects what NewLogger needs to build the slog handler.
type options struct {
	level       slog.Level
	format      format
	source      bool
	color       bool
	writer      io.Writer
	replaceAttr func(groups []string, a slog.Attr) slog.Attr
}

func defaultOptions() *options {
	return &options{
		level:  slog.LevelInfo,
		format: formatText,
		writer: os.Stdout,
	}
}

// handler builds the slog handler. Level names are rewritten to the
// eight log levels unless a custom ReplaceAttr was given.
func (o *options) handler() slog.Handler {
	replace := o.replaceAttr
	if replace == nil {
		replace = replaceLevelName
	}

	if o.format == formatJSON {
		return slog.NewJSONHandler(o.writer, &slog.HandlerOptions{
			Level:       o.level,
			AddSource:   o.source,
			ReplaceAttr: replace,
		})
	}
	return newTextHandler(o.writer, o.color && isTerminal(o.writer), replace, o.level)
}

func WithReplaceAttr(f func(groups []string, a slog.Attr) slog.Attr) Option {
	return func(o *options) {
		o.replaceAttr = f
	}
}

// WithLevel sets the minimum level written.
func WithLevel(level contracts.LogLevel) Option {
	return func(o *options) {
		o.level = toSlogLevel(level)
	}
}

func WithJSON() Option {
	return func(o *options) {
		o.format = formatJSON
	}
}

func WithText() Option {
	return func(o *options) {
		o.format = formatText
	}
}

// WithSource adds the caller location. Only the JSON format writes it.
func WithSource() Option {
	return func(o *options) {
		o.source = true
	}
}

// WithWriter sets the output. A nil writer discards everything.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.writer = w
	}
}

// WithColor colours level names in the text format when the writer is a
// terminal.
func WithColor() Option {
	return func(o *options) {
		o.color = true
	}
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		return slog.String(slog.LevelKey, getLevelName(level))
	}
	return a
}
