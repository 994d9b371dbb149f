package logger

import (
	"fmt"
	"sync"
)

// Entry is a single message captured by NoopLogger
type Entry struct {
	Level   string
	Message string
}

// NoopLogger prints nothing but keeps every message so tests can inspect them.
type NoopLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (n *NoopLogger) Title(msg string, args ...any) { n.record("title", msg, args...) }
func (n *NoopLogger) Info(msg string, args ...any)  { n.record("info", msg, args...) }
func (n *NoopLogger) Warn(msg string, args ...any)  { n.record("warn", msg, args...) }
func (n *NoopLogger) Error(msg string, args ...any) { n.record("error", msg, args...) }
func (n *NoopLogger) Debug(msg string, args ...any) { n.record("debug", msg, args...) }

func (n *NoopLogger) record(level, msg string, args ...any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, Entry{Level: level, Message: fmt.Sprintf(msg, args...)})
}

// Entries returns a copy of the captured messages.
func (n *NoopLogger) Entries() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Entry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Messages returns captured messages at the given level.
func (n *NoopLogger) Messages(level string) []string {
	var out []string
	for _, e := range n.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
