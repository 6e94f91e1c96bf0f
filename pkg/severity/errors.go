package severity

import "github.com/shuldan/errorhandler/pkg/errors"

var newSeverityCode = errors.WithPrefix("SEVERITY")

var (
	ErrUnknownSeverity = newSeverityCode().New("unknown severity {{.name}}")
)
