package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

var zapLevels = map[contracts.LogLevel]zapcore.Level{
	contracts.LevelDebug:     zapcore.DebugLevel,
	contracts.LevelInfo:      zapcore.InfoLevel,
	contracts.LevelNotice:    zapcore.InfoLevel,
	contracts.LevelWarning:   zapcore.WarnLevel,
	contracts.LevelError:     zapcore.ErrorLevel,
	contracts.LevelCritical:  zapcore.ErrorLevel,
	contracts.LevelAlert:     zapcore.ErrorLevel,
	contracts.LevelEmergency: zapcore.ErrorLevel,
}

type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger adapts a zap logger. Levels zap lacks are folded into the
// nearest one; the original name is kept in the "severity" field.
func NewZapLogger(l *zap.Logger) contracts.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{logger: l}
}

func (z *zapLogger) Log(level contracts.LogLevel, message string, fields map[string]any) {
	zl, ok := zapLevels[level]
	if !ok {
		zl = zapcore.ErrorLevel
	}

	ce := z.logger.Check(zl, message)
	if ce == nil {
		return
	}

	attrs := contextAttrs(fields)
	zf := make([]zap.Field, 0, len(attrs)+1)
	zf = append(zf, zap.String("severity", string(level)))
	for _, a := range attrs {
		zf = append(zf, zap.Any(a.Key, a.Value.Any()))
	}
	ce.Write(zf...)
}
