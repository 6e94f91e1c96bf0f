package errorhandler

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/severity"
)

func TestSetLogger(t *testing.T) {
	logger := &recordingLogger{}
	h := New()

	assert.Nil(t, h.Logger())
	h.SetLogger(logger)
	assert.Same(t, logger, h.Logger())
	h.SetLogger(nil)
	assert.Nil(t, h.Logger())
}

func TestLog_StructuredError(t *testing.T) {
	testCases := []struct {
		code  severity.Code
		level contracts.LogLevel
		label string
	}{
		{severity.Error, contracts.LevelError, "Fatal error"},
		{severity.UserError, contracts.LevelError, "Fatal error"},
		{severity.RecoverableError, contracts.LevelError, "Fatal error"},
		{severity.Warning, contracts.LevelWarning, "Warning"},
		{severity.UserWarning, contracts.LevelWarning, "Warning"},
		{severity.Parse, contracts.LevelCritical, "Parse error"},
		{severity.Notice, contracts.LevelNotice, "Notice"},
		{severity.UserNotice, contracts.LevelNotice, "Notice"},
		{severity.CoreError, contracts.LevelCritical, "Core error"},
		{severity.CoreWarning, contracts.LevelWarning, "Core warning"},
		{severity.CompileError, contracts.LevelCritical, "Compile error"},
		{severity.CompileWarning, contracts.LevelWarning, "Compile warning"},
		{severity.Strict, contracts.LevelInfo, "Strict standards"},
		{severity.Deprecated, contracts.LevelInfo, "Deprecated"},
		{severity.UserDeprecated, contracts.LevelInfo, "Deprecated"},
		{99999999, contracts.LevelError, "Unknown error"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.code), func(t *testing.T) {
			logger := &recordingLogger{}
			h := New(WithLogger(logger))
			signal := NewStructuredError(tc.code, "no good", "foo.php", 42)

			h.Log(signal)

			require.Len(t, logger.entries, 1)
			assert.Equal(t, logEntry{
				level:   tc.level,
				message: tc.label + ": no good at foo.php line 42",
				context: map[string]any{
					"error":   signal,
					"code":    tc.code,
					"message": "no good",
					"file":    "foo.php",
					"line":    42,
				},
			}, logger.entries[0])
		})
	}
}

func TestLog_Error(t *testing.T) {
	logger := &recordingLogger{}
	h := New(WithLogger(logger))
	failure := stderrors.New("it broke")

	h.Log(failure)

	require.Len(t, logger.entries, 1)
	assert.Equal(t, contracts.LevelError, logger.entries[0].level)
	assert.Equal(t, "Uncaught errors.errorString: it broke", logger.entries[0].message)
	assert.Equal(t, map[string]any{"exception": failure}, logger.entries[0].context)
}

func TestLog_ErrorWithoutMessage(t *testing.T) {
	logger := &recordingLogger{}
	h := New(WithLogger(logger))

	h.Log(customError{})

	require.Len(t, logger.entries, 1)
	assert.Equal(t, "Uncaught errorhandler.customError", logger.entries[0].message)
}

func TestLog_String(t *testing.T) {
	logger := &recordingLogger{}
	h := New(WithLogger(logger))

	h.Log("foo")
	h.Log("foo", map[string]any{"request_id": "abc"})

	want := logEntry{level: contracts.LevelWarning, message: "Unable to log a string"}
	assert.Equal(t, []logEntry{want, want}, logger.entries)
}

func TestLog_Object(t *testing.T) {
	logger := &recordingLogger{}
	h := New(WithLogger(logger))

	h.Log(struct{ Name string }{"x"})
	h.Log(&fakeResponse{})
	h.Log((*StructuredError)(nil))
	h.Log(42, map[string]any{"request_id": "abc"})

	require.Len(t, logger.entries, 4)
	assert.Equal(t, "Unable to log a struct { Name string } object", logger.entries[0].message)
	assert.Equal(t, "Unable to log a errorhandler.fakeResponse object", logger.entries[1].message)
	assert.Equal(t, "Unable to log a errorhandler.StructuredError object", logger.entries[2].message)
	assert.Equal(t, "Unable to log a int object", logger.entries[3].message)
	for _, entry := range logger.entries {
		assert.Equal(t, contracts.LevelWarning, entry.level)
		assert.Nil(t, entry.context)
	}
}

func TestLog_ExtraContext(t *testing.T) {
	logger := &recordingLogger{}
	h := New(WithLogger(logger))
	failure := stderrors.New("it broke")

	h.Log(failure, map[string]any{"request_id": "abc", "exception": "ignored"})

	require.Len(t, logger.entries, 1)
	assert.Equal(t, map[string]any{"exception": failure, "request_id": "abc"}, logger.entries[0].context)
}

func TestLog_ErrorWithPanickingMessage(t *testing.T) {
	logger := &recordingLogger{}
	h := New(WithLogger(logger))
	var failure *nilDerefError

	h.Log(failure)

	require.Len(t, logger.entries, 1)
	assert.Equal(t, contracts.LevelError, logger.entries[0].level)
	assert.Equal(t, "Uncaught errorhandler.nilDerefError", logger.entries[0].message)
	assert.Equal(t, map[string]any{"exception": failure}, logger.entries[0].context)
}

func TestLog_WithoutLogger(t *testing.T) {
	h := New()

	assert.NotPanics(t, func() {
		h.Log(stderrors.New("nobody listens"))
		h.Log("foo")
	})
}

func TestLog_PanickingLogger(t *testing.T) {
	h := New(WithLogger(contracts.LoggerFunc(func(contracts.LogLevel, string, map[string]any) {
		panic("logger down")
	})))

	assert.NotPanics(t, func() {
		h.Log(stderrors.New("it broke"))
	})
}
