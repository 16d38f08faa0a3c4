package tracker

import (
	"log/slog"
	"sort"
)

// Log writes every event to a structured logger at info level
type Log struct {
	logger *slog.Logger
}

// NewLog creates a logging tracker. A nil logger means slog.Default().
func NewLog(l *slog.Logger) *Log {
	return &Log{logger: l}
}

// Track logs the event name and its properties in key order
func (t *Log) Track(name string, props map[string]any) {
	l := t.logger
	if l == nil {
		l = slog.Default()
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, 2+len(keys)*2)
	args = append(args, AttrKeyEvent, name)
	for _, k := range keys {
		args = append(args, k, props[k])
	}
	l.Info(LogMsgEventTracked, args...)
}
