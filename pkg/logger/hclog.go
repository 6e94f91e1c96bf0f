package logger

import (
	"github.com/hashicorp/go-hclog"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

var hclogLevels = map[contracts.LogLevel]hclog.Level{
	contracts.LevelDebug:     hclog.Debug,
	contracts.LevelInfo:      hclog.Info,
	contracts.LevelNotice:    hclog.Info,
	contracts.LevelWarning:   hclog.Warn,
	contracts.LevelError:     hclog.Error,
	contracts.LevelCritical:  hclog.Error,
	contracts.LevelAlert:     hclog.Error,
	contracts.LevelEmergency: hclog.Error,
}

type hcLogger struct {
	logger hclog.Logger
}

func NewHCLogger(l hclog.Logger) contracts.Logger {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	return &hcLogger{logger: l}
}

func (h *hcLogger) Log(level contracts.LogLevel, message string, fields map[string]any) {
	hl, ok := hclogLevels[level]
	if !ok {
		hl = hclog.Error
	}

	attrs := contextAttrs(fields)
	args := make([]any, 0, 2*len(attrs)+2)
	args = append(args, "severity", string(level))
	for _, a := range attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	h.logger.Log(hl, message, args...)
}
