package severity

import (
	"strings"
)

// Mask is a set of severity codes.
type Mask int

const (
	None Mask = 0
	All  Mask = 32767

	// NonFatal holds the codes a process error hook is able to receive.
	NonFatal = Mask(Warning | Notice | UserWarning | UserNotice | Strict | Deprecated | UserDeprecated)

	// Unhandled holds the codes that terminate the process before any
	// error hook runs. Only a shutdown hook can still observe them. The
	// user variants are left out: they reach the error hook.
	Unhandled = Mask(Error | Parse | CoreError | CompileError)

	// Convertible holds the codes promoted to errors in conversion mode.
	Convertible = Mask(RecoverableError | UserError)
)

func (m Mask) Has(code Code) bool {
	return int(m)&int(code) != 0
}

func (m Mask) Intersects(other Mask) bool {
	return m&other != 0
}

func (m Mask) With(other Mask) Mask {
	return m | other
}

// ParseMask builds a mask from code names as returned by Code.String.
// "all" selects every code and "none" is accepted as a no-op.
func ParseMask(values ...string) (Mask, error) {
	var mask Mask
	for _, value := range values {
		name := strings.ToLower(strings.TrimSpace(value))
		switch name {
		case "":
			continue
		case "all":
			mask |= All
			continue
		case "none":
			continue
		}

		code, ok := lookup(name)
		if !ok {
			return None, ErrUnknownSeverity.WithDetail("name", value)
		}
		mask |= Mask(code)
	}
	return mask, nil
}

func lookup(name string) (Code, bool) {
	for code, n := range names {
		if n == name {
			return code, true
		}
	}
	return 0, false
}
