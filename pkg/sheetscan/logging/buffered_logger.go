package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// BufferedLogHandler records log lines in memory so tests can check which
// scan decisions were logged. Each record becomes one line of the form
// "LEVEL message key=value ...". Groups are flattened.
type BufferedLogHandler struct {
	level slog.Leveler
	attrs []slog.Attr
	store *lineStore
}

type lineStore struct {
	mu    sync.Mutex
	lines []string
}

// NewBufferedLogHandler returns a handler recording records at or above
// level. A nil level records everything.
func NewBufferedLogHandler(level slog.Leveler) *BufferedLogHandler {
	return &BufferedLogHandler{level: level, store: &lineStore{}}
}

// Enabled implements slog.Handler.
func (h *BufferedLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *BufferedLogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(a.String())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.lines = append(h.store.lines, b.String())
	return nil
}

// WithAttrs implements slog.Handler.
func (h *BufferedLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &BufferedLogHandler{
		level: h.level,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
		store: h.store,
	}
}

// WithGroup implements slog.Handler.
func (h *BufferedLogHandler) WithGroup(string) slog.Handler {
	return h
}

// Lines returns a copy of the recorded lines.
func (h *BufferedLogHandler) Lines() []string {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return append([]string(nil), h.store.lines...)
}

// String returns the recorded lines joined by newlines.
func (h *BufferedLogHandler) String() string {
	return strings.Join(h.Lines(), "\n")
}

// Reset drops every recorded line.
func (h *BufferedLogHandler) Reset() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.lines = nil
}

// Contains reports whether any recorded line contains s.
func (h *BufferedLogHandler) Contains(s string) bool {
	for _, line := range h.Lines() {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}
