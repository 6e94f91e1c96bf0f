package logger

import (
	"log/slog"
	"strings"

	"github.com/shuldan/errorhandler/pkg/contracts"
)

const (
	levelNotice    = slog.LevelInfo + 2
	levelCritical  = slog.LevelError + 4
	levelAlert     = slog.LevelError + 8
	levelEmergency = slog.LevelError + 12
)

var slogLevels = map[contracts.LogLevel]slog.Level{
	contracts.LevelDebug:     slog.LevelDebug,
	contracts.LevelInfo:      slog.LevelInfo,
	contracts.LevelNotice:    levelNotice,
	contracts.LevelWarning:   slog.LevelWarn,
	contracts.LevelError:     slog.LevelError,
	contracts.LevelCritical:  levelCritical,
	contracts.LevelAlert:     levelAlert,
	contracts.LevelEmergency: levelEmergency,
}

// toSlogLevel maps a log level onto slog. Unknown levels log as errors.
func toSlogLevel(level contracts.LogLevel) slog.Level {
	if l, ok := slogLevels[level]; ok {
		return l
	}
	return slog.LevelError
}

// ParseLevel accepts the contracts level names plus the "warn" spelling.
func ParseLevel(name string) (contracts.LogLevel, error) {
	level := contracts.LogLevel(strings.ToLower(strings.TrimSpace(name)))
	if level == "warn" {
		level = contracts.LevelWarning
	}
	if _, ok := slogLevels[level]; !ok {
		return "", ErrUnknownLevel.WithDetail("level", name)
	}
	return level, nil
}

func getLevelName(level slog.Leveler) string {
	var levelNames = map[slog.Leveler]string{
		levelNotice:    "NOTICE",
		levelCritical:  "CRITICAL",
		levelAlert:     "ALERT",
		levelEmergency: "EMERGENCY",
	}

	if name, ok := levelNames[level.Level()]; ok {
		return name
	}
	return level.Level().String()
}
