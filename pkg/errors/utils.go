package errors

import (
	"errors"
)

// Is reports whether err matches target. Coded errors match on their
// code, so a sentinel carrying extra details still matches the sentinel.
func Is(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}

func As[T error](err error, target *T) bool {
	if err == nil {
		return false
	}
	return errors.As(err, target)
}

// GetErrorCode returns the code of the first coded error in err's chain,
// or an empty code.
func GetErrorCode(err error) Code {
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return ""
}
