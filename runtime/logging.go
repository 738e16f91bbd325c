package runtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// LogEntry is one captured slog record, retained so a running
// application can surface its own recent diagnostics (e.g. a debug
// overlay) without re-parsing formatted log lines.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// RingLogHandler is a slog.Handler that keeps the most recent maxSize
// records in memory instead of writing them anywhere, ported from the
// teacher's TUILogHandler: a TUI owns the screen, so log output cannot
// simply go to stderr without corrupting the frame — it has to be
// buffered and surfaced deliberately (a debug pane, a println queue) by
// the application instead.
type RingLogHandler struct {
	mu      sync.RWMutex
	entries []LogEntry
	maxSize int

	// root and attrs are set only on handlers derived through WithAttrs:
	// such a handler adds attrs to each record and stores it in root.
	root  *RingLogHandler
	attrs []slog.Attr
}

// NewRingLogger builds a *slog.Logger backed by a RingLogHandler holding
// at most maxEntries records (a non-positive value defaults to 1000).
func NewRingLogger(maxEntries int) (*slog.Logger, *RingLogHandler) {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	h := &RingLogHandler{maxSize: maxEntries}
	return slog.New(h), h
}

func (h *RingLogHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *RingLogHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.root != nil {
		record = record.Clone()
		record.AddAttrs(h.attrs...)
		return h.root.Handle(ctx, record)
	}
	attrs := make(map[string]string, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, LogEntry{
		Time:    record.Time,
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
	return nil
}

// WithAttrs returns a handler that adds as (after any attrs h already
// adds) to every record and stores it in the same buffer as h. WithGroup
// returns h unchanged: records are captured flat, without group names.
func (h *RingLogHandler) WithAttrs(as []slog.Attr) slog.Handler {
	root := h
	if h.root != nil {
		root = h.root
	}
	attrs := append(append([]slog.Attr{}, h.attrs...), as...)
	return &RingLogHandler{maxSize: h.maxSize, root: root, attrs: attrs}
}
func (h *RingLogHandler) WithGroup(string) slog.Handler { return h }

// Recent returns the last n captured entries (all of them if n <= 0 or
// n exceeds the buffer).
func (h *RingLogHandler) Recent(n int) []LogEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]LogEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Search returns every captured entry whose message or attribute
// values contain query, case-insensitively.
func (h *RingLogHandler) Search(query string) []LogEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	query = strings.ToLower(query)
	var matches []LogEntry
	for _, e := range h.entries {
		if strings.Contains(strings.ToLower(e.Message), query) {
			matches = append(matches, e)
			continue
		}
		for _, v := range e.Attrs {
			if strings.Contains(strings.ToLower(v), query) {
				matches = append(matches, e)
				break
			}
		}
	}
	return matches
}

// Clear discards every captured entry.
func (h *RingLogHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
}
