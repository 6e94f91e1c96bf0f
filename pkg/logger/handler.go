package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

type replaceFunc func(groups []string, a slog.Attr) slog.Attr

// textHandler writes "LEVEL message key="value" ..." lines. Record
// attributes come first, then those added through WithAttrs.
type textHandler struct {
	writer    io.Writer
	attrs     []slog.Attr
	groups    []string
	isColored bool
	replace   replaceFunc
	level     slog.Level
}

func newTextHandler(writer io.Writer, isColored bool, replace replaceFunc, level slog.Level) slog.Handler {
	return &textHandler{
		writer:    writer,
		isColored: isColored,
		replace:   replace,
		level:     level,
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	levelName := h.apply(slog.String(slog.LevelKey, getLevelName(r.Level))).Value.String()
	if h.isColored {
		levelName = colorize(levelName, r.Level)
	}

	_, _ = fmt.Fprintf(h.writer, "%s %s", levelName, r.Message)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(a)
		return true
	})
	for _, a := range h.attrs {
		h.writeAttr(a)
	}
	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *textHandler) apply(a slog.Attr) slog.Attr {
	if h.replace == nil {
		return a
	}
	return h.replace(h.groups, a)
}

func (h *textHandler) writeAttr(a slog.Attr) {
	a = h.apply(a)
	if a.Key == "" || a.Equal(slog.Attr{}) {
		return
	}
	_, _ = fmt.Fprintf(h.writer, " %s=%q", a.Key, a.Value)
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)
	return &cp
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.groups = append(append(make([]string, 0, len(h.groups)+1), h.groups...), name)
	return &cp
}

const colorReset = "\033[0m"

// levelColors is ordered from the most to the least severe threshold.
var levelColors = []struct {
	min   slog.Level
	color string
}{
	{levelCritical, "\033[41m\033[37m"},
	{slog.LevelError, "\033[31m"},
	{slog.LevelWarn, "\033[33m"},
	{levelNotice, "\033[36m"},
	{slog.LevelInfo, "\033[32m"},
}

func colorize(levelName string, level slog.Level) string {
	for _, c := range levelColors {
		if level >= c.min {
			return c.color + levelName + colorReset
		}
	}
	return "\033[34m" + levelName + colorReset
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
