package process

import "github.com/shuldan/errorhandler/pkg/contracts"

func loggerFunc(fn func(message string)) contracts.Logger {
	return contracts.LoggerFunc(func(_ contracts.LogLevel, message string, _ map[string]any) {
		fn(message)
	})
}
