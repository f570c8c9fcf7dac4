// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package logging

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*Discard)(nil)

// Discard discards all log records. It's used when no logger has been
// configured, and when running quietly.
type Discard struct{}

// NewDiscard creates a new discard handler.
func NewDiscard() slog.Handler {
	return Discard{}
}

// Enabled implements the [log/slog.Handler] interface.
func (Discard) Enabled(context.Context, slog.Level) bool {
	return false
}

// Handle implements the [log/slog.Handler] interface.
func (Discard) Handle(context.Context, slog.Record) error {
	return nil
}

// WithAttrs implements the [log/slog.Handler] interface.
func (h Discard) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

// WithGroup implements the [log/slog.Handler] interface.
func (h Discard) WithGroup(string) slog.Handler {
	return h
}
