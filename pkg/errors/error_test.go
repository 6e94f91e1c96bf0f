package errors

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_New(t *testing.T) {
	code := Code("TEST_001")
	before := time.Now()
	err := code.New("something went wrong")

	assert.Equal(t, code, err.Code)
	assert.Equal(t, "something went wrong", err.Message)
	assert.NotNil(t, err.Details)
	assert.Contains(t, err.Stack, "TestCode_New")
	assert.False(t, err.Timestamp.Before(before))
}

func TestWithPrefix(t *testing.T) {
	gen := WithPrefix("API")

	assert.Equal(t, Code("API_0001"), gen())
	assert.Equal(t, Code("API_0002"), gen())
	assert.Equal(t, Code("API_0003"), gen())
}

func TestError_Error(t *testing.T) {
	cause := errors.New("cause error")

	testCases := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"simple", Code("T").New("simple error"), "T: simple error"},
		{"template", Code("T").New("hello {{.name}}").WithDetail("name", "world"), "T: hello world"},
		{"invalid template", Code("T").New("hello {{.name"), "T: hello {{.name"},
		{"cause", Code("T").New("wrapped").WithCause(cause), "T: wrapped (caused by: cause error)"},
		{"empty", Code("T").New(""), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestError_Error_PanicRecovery(t *testing.T) {
	err := Code("TEST_001").New("hello {{.Name.Func}}").WithDetail("Name", "world")

	assert.True(t, strings.HasPrefix(err.Error(), "TEST_001:"))
}

func TestError_WithDetail_LeavesSentinelUntouched(t *testing.T) {
	sentinel := Code("TEST_001").New("value {{.v}}")

	derived := sentinel.WithDetail("v", 1).WithDetail("w", 2)

	assert.Empty(t, sentinel.Details)
	assert.Equal(t, 1, derived.Details["v"])
	assert.Equal(t, 2, derived.Details["w"])
	assert.True(t, errors.Is(derived, sentinel))
}

func TestError_WithCause_Unwrap(t *testing.T) {
	cause := errors.New("cause error")
	sentinel := Code("TEST_001").New("wrapped")

	err := sentinel.WithCause(cause)

	require.NoError(t, sentinel.Unwrap())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, sentinel)
}

func TestError_Is_DifferentCode(t *testing.T) {
	a := Code("A").New("a")
	b := Code("B").New("a")

	assert.False(t, errors.Is(a, b))
	assert.False(t, a.Is(nil))
}
