package errorhandler

import (
	"fmt"
	"maps"
	"strings"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/severity"
)

// Log reports value to the configured logger. Structured errors are
// logged with their classified level, other errors as uncaught, and
// anything else as a warning that the value could not be logged. Extra
// context is merged in without overriding the keys set here.
func (h *ErrorHandler) Log(value any, extra ...map[string]any) {
	defer recoverLogging()
	level, message, context := describe(value)
	h.emit(level, message, mergeContext(context, extra))
}

func (h *ErrorHandler) logUncaught(err error) {
	defer recoverLogging()
	level, message, context := describeUncaught(err)
	h.emit(level, message, context)
}

func (h *ErrorHandler) emit(level contracts.LogLevel, message string, context map[string]any) {
	logger := h.Logger()
	if logger == nil {
		return
	}
	logger.Log(level, message, context)
}

// recoverLogging swallows panics raised by a broken logger or by an
// Error method, so reporting never takes the error path down with it.
func recoverLogging() {
	_ = recover()
}

func describe(value any) (contracts.LogLevel, string, map[string]any) {
	switch v := value.(type) {
	case *StructuredError:
		if v == nil {
			break
		}
		return describeStructured(v)
	case error:
		return describeUncaught(v)
	case string:
		return contracts.LevelWarning, "Unable to log a string", nil
	}
	return contracts.LevelWarning, fmt.Sprintf("Unable to log a %s object", typeName(value)), nil
}

func describeStructured(e *StructuredError) (contracts.LogLevel, string, map[string]any) {
	level, label := severity.Classify(e.Severity)
	message := fmt.Sprintf("%s: %s at %s line %d", label, e.Message, e.File, e.Line)
	context := map[string]any{
		"error":   e,
		"code":    e.Severity,
		"message": e.Message,
		"file":    e.File,
		"line":    e.Line,
	}
	return level, message, context
}

func describeUncaught(err error) (contracts.LogLevel, string, map[string]any) {
	message := "Uncaught " + typeName(err)
	if text := errorText(err); text != "" {
		message += ": " + text
	}
	return contracts.LevelError, message, map[string]any{"exception": err}
}

// errorText returns err.Error(), or an empty string when the method
// panics, as it does on a typed nil pointer.
func errorText(err error) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return err.Error()
}

func typeName(value any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", value), "*")
}

// mergeContext adds extra to a non-nil context. Values logged without
// context stay without one.
func mergeContext(context map[string]any, extra []map[string]any) map[string]any {
	if context == nil || len(extra) == 0 {
		return context
	}

	merged := make(map[string]any)
	for _, e := range extra {
		maps.Copy(merged, e)
	}
	maps.Copy(merged, context)
	return merged
}
