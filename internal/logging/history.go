// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package logging

import (
	"context"
	"log/slog"
	"sync"
)

var _ slog.Handler = (*History)(nil)

// historyStore is shared between a [History] and every handler derived from it
// through WithAttrs or WithGroup, so records are collected in one place.
type historyStore struct {
	mu      sync.RWMutex
	max     int
	entries []slog.Record
}

// History keeps the most recent log records in memory while passing every
// record on to a wrapped handler. The interactive viewer uses it to show the
// latest message in its status line.
type History struct {
	handler  slog.Handler
	minLevel slog.Level
	store    *historyStore
}

// NewHistory creates a new [History] which keeps the last maxEntries records at
// or above minLevel. Records below minLevel are still passed to handler.
func NewHistory(maxEntries int, minLevel slog.Level, handler slog.Handler) *History {
	maxEntries = max(1, maxEntries)
	return &History{
		handler:  handler,
		minLevel: minLevel,
		store: &historyStore{
			max:     maxEntries,
			entries: make([]slog.Record, 0, maxEntries),
		},
	}
}

// Enabled reports whether either the wrapped handler wants records at level l,
// or the history would store them.
func (h *History) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.minLevel || h.handler.Enabled(ctx, l)
}

// Handle stores r if its level is at or above the minimum level, then passes it
// to the wrapped handler when that handler is enabled for it.
func (h *History) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel {
		cloned := r.Clone()

		h.store.mu.Lock()
		h.store.entries = append(h.store.entries, cloned)
		if len(h.store.entries) > h.store.max {
			h.store.entries = h.store.entries[len(h.store.entries)-h.store.max:]
		}
		h.store.mu.Unlock()
	}

	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a handler which adds attrs to records passed to the wrapped
// handler. Records are still stored in the same history.
func (h *History) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &History{handler: h.handler.WithAttrs(attrs), minLevel: h.minLevel, store: h.store}
}

// WithGroup returns a handler which groups the attributes of records passed to
// the wrapped handler. Records are still stored in the same history.
func (h *History) WithGroup(name string) slog.Handler {
	return &History{handler: h.handler.WithGroup(name), minLevel: h.minLevel, store: h.store}
}

// Entries returns a copy of the stored records, oldest first.
func (h *History) Entries() []slog.Record {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()

	out := make([]slog.Record, len(h.store.entries))
	copy(out, h.store.entries)
	return out
}

// Last returns the most recently stored record, if any.
func (h *History) Last() (slog.Record, bool) {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()

	if len(h.store.entries) == 0 {
		return slog.Record{}, false
	}
	return h.store.entries[len(h.store.entries)-1], true
}

// Count returns the number of stored records.
func (h *History) Count() int {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return len(h.store.entries)
}
