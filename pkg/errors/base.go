package errors

var newCoreCode = WithPrefix("CORE")

var (
	ErrInvalidArgument = newCoreCode().New("invalid argument: {{.argument}}")
	ErrInternal        = newCoreCode().New("internal error")
	ErrUnavailable     = newCoreCode().New("service unavailable")
)
