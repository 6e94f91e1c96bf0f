package errorhandler

import (
	"fmt"
	"runtime/debug"

	"github.com/shuldan/errorhandler/pkg/severity"
)

// StructuredError is a runtime error signal turned into an error value.
type StructuredError struct {
	Message  string
	Severity severity.Code
	File     string
	Line     int
}

func NewStructuredError(code severity.Code, message, file string, line int) *StructuredError {
	return &StructuredError{
		Message:  message,
		Severity: code,
		File:     file,
		Line:     line,
	}
}

func (e *StructuredError) Error() string {
	return e.Message
}

// PanicError carries a value recovered from a panic in a wrapped handler.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(value any) *PanicError {
	return &PanicError{Value: value, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
