package http

import (
	"sync"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errorhandler"
)

type logEntry struct {
	level   contracts.LogLevel
	message string
	context map[string]any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) Log(level contracts.LogLevel, message string, context map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, context: context})
}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.message)
	}
	return out
}

func newTestHandler() (*errorhandler.ErrorHandler, *recordingLogger) {
	logger := &recordingLogger{}
	return errorhandler.New(errorhandler.WithLogger(logger)), logger
}
