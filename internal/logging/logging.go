// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package logging provides the [log/slog] handlers and context helpers used by
// flowcloud.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// TimeFormat is the timestamp format used for terminal log output.
const TimeFormat = "15:04:05.00"

// NewHandler returns a [log/slog.Handler] which writes human-readable records to
// w. Debug records are only written when verbose is set.
func NewHandler(w io.Writer, verbose bool) slog.Handler {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           level,
	})
}

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx by [WithLogger], or a logger
// which discards everything if there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.New(NewDiscard())
}
