// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/lrstanley/x/charm/flow"
	"github.com/lrstanley/x/charm/flow/internal/testui"
)

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "config",
			expected: []string{" a   bb", " ccc"},
		},
		{
			name:     "align override",
			args:     []string{"--align", "right"},
			expected: []string{" a   bb", "    ccc"},
		},
		{
			name:     "width override",
			args:     []string{"--width", "14"},
			expected: []string{" a   bb   ccc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--config", writeConfig(t, plainConfig)}, tt.args...)
			out, _, err := run(t, append(args, "render")...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testui.ExpectLines(t, out, tt.expected...)
		})
	}
}

func TestRenderCommandDefaults(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "render")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testui.ExpectSnapshotNonANSI(t, out)
}

func TestRectsCommandYAML(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--config", writeConfig(t, plainConfig), "rects")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testui.SnapConfig.MatchSnapshot(t, out)
}

func TestRectsCommandJSON(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--config", writeConfig(t, plainConfig), "rects", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected JSON object, got %q", out)
	}

	var report rectsReport
	if err = yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}

	expected := rectsReport{
		Align:   flow.Left,
		Metrics: flow.Metrics{Width: 8, Height: 2, LineHeight: 1, Rows: 2},
		Chips: []chipRect{
			{Index: 0, Row: 0, Label: "a", X: 0, Y: 0, Width: 3, Height: 1},
			{Index: 1, Row: 0, Label: "bb", X: 4, Y: 0, Width: 4, Height: 1},
			{Index: 2, Row: 1, Label: "ccc", X: 0, Y: 1, Width: 5, Height: 1},
		},
	}

	if report.Align != expected.Align || report.Metrics != expected.Metrics {
		t.Errorf("expected %+v, got %+v", expected, report)
	}
	if len(report.Chips) != len(expected.Chips) {
		t.Fatalf("expected %d chips, got %d", len(expected.Chips), len(report.Chips))
	}
	for i := range expected.Chips {
		if report.Chips[i] != expected.Chips[i] {
			t.Errorf("chip %d: expected %+v, got %+v", i, expected.Chips[i], report.Chips[i])
		}
	}
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "unknown format", args: []string{"rects", "--format", "xml"}, contains: "unsupported format"},
		{name: "unknown alignment", args: []string{"--align", "justify", "render"}, contains: "unknown alignment"},
		{name: "bad width", args: []string{"--width", "0", "render"}, contains: "width must be positive"},
		{name: "missing config", args: []string{"--config", "missing.toml", "render"}, contains: "failed to decode"},
		{name: "watch without config", args: []string{"view", "--watch"}, contains: "--watch requires --config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestVerboseLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "--verbose", "--config", writeConfig(t, plainConfig), "render")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "rendered chip cloud") {
		t.Errorf("expected debug output, got %q", stderr)
	}

	_, stderr, err = run(t, "--config", writeConfig(t, plainConfig), "render")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stderr, "rendered chip cloud") {
		t.Errorf("expected no debug output, got %q", stderr)
	}
}
