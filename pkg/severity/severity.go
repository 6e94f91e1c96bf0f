// Package severity holds the runtime error severity codes, the bit masks
// built from them and the fixed table that turns a code into a log level
// and a human readable label.
package severity

import "github.com/shuldan/errorhandler/pkg/contracts"

// Code identifies the severity of a single runtime error signal. Every
// code is a distinct bit so codes can be combined into a Mask.
type Code int

const (
	Error            Code = 1
	Warning          Code = 2
	Parse            Code = 4
	Notice           Code = 8
	CoreError        Code = 16
	CoreWarning      Code = 32
	CompileError     Code = 64
	CompileWarning   Code = 128
	UserError        Code = 256
	UserWarning      Code = 512
	UserNotice       Code = 1024
	Strict           Code = 2048
	RecoverableError Code = 4096
	Deprecated       Code = 8192
	UserDeprecated   Code = 16384
)

type classification struct {
	level contracts.LogLevel
	label string
}

var table = map[Code]classification{
	Error:            {contracts.LevelError, "Fatal error"},
	UserError:        {contracts.LevelError, "Fatal error"},
	RecoverableError: {contracts.LevelError, "Fatal error"},
	Parse:            {contracts.LevelCritical, "Parse error"},
	CoreError:        {contracts.LevelCritical, "Core error"},
	CompileError:     {contracts.LevelCritical, "Compile error"},
	Warning:          {contracts.LevelWarning, "Warning"},
	UserWarning:      {contracts.LevelWarning, "Warning"},
	CoreWarning:      {contracts.LevelWarning, "Core warning"},
	CompileWarning:   {contracts.LevelWarning, "Compile warning"},
	Notice:           {contracts.LevelNotice, "Notice"},
	UserNotice:       {contracts.LevelNotice, "Notice"},
	Strict:           {contracts.LevelInfo, "Strict standards"},
	Deprecated:       {contracts.LevelInfo, "Deprecated"},
	UserDeprecated:   {contracts.LevelInfo, "Deprecated"},
}

var unknown = classification{contracts.LevelError, "Unknown error"}

// Classify returns the log level and label for code. Codes outside the
// table, including combined masks, classify as "Unknown error".
func Classify(code Code) (contracts.LogLevel, string) {
	c, ok := table[code]
	if !ok {
		c = unknown
	}
	return c.level, c.label
}

var names = map[Code]string{
	Error:            "error",
	Warning:          "warning",
	Parse:            "parse",
	Notice:           "notice",
	CoreError:        "core_error",
	CoreWarning:      "core_warning",
	CompileError:     "compile_error",
	CompileWarning:   "compile_warning",
	UserError:        "user_error",
	UserWarning:      "user_warning",
	UserNotice:       "user_notice",
	Strict:           "strict",
	RecoverableError: "recoverable_error",
	Deprecated:       "deprecated",
	UserDeprecated:   "user_deprecated",
}

func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}
