package contracts

// LogLevel is one of the eight syslog style levels understood by Logger.
type LogLevel string

const (
	LevelEmergency LogLevel = "emergency"
	LevelAlert     LogLevel = "alert"
	LevelCritical  LogLevel = "critical"
	LevelError     LogLevel = "error"
	LevelWarning   LogLevel = "warning"
	LevelNotice    LogLevel = "notice"
	LevelInfo      LogLevel = "info"
	LevelDebug     LogLevel = "debug"
)

// Logger is the capability error reports are written to. Implementations
// must accept a nil context.
type Logger interface {
	Log(level LogLevel, message string, context map[string]any)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(level LogLevel, message string, context map[string]any)

func (f LoggerFunc) Log(level LogLevel, message string, context map[string]any) {
	f(level, message, context)
}
