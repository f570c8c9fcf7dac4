// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package testui provides helpers for testing rendered terminal output.
package testui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/gkampitakis/go-snaps/snaps"
)

var SnapConfig = snaps.WithConfig(
	snaps.Dir("testdata"),
)

// ExpectSnapshotNonANSI snapshots out with ANSI escape codes and trailing
// whitespace removed, so snapshots stay readable and independent of the color
// profile.
func ExpectSnapshotNonANSI(tb testing.TB, out string) {
	tb.Helper()
	SnapConfig.MatchSnapshot(tb, strings.Join(Lines(out), "\n"))
}

// Lines strips ANSI escape codes and trailing whitespace from out, and drops
// trailing empty lines.
func Lines(out string) []string {
	lines := strings.Split(ansi.Strip(out), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ExpectLines checks that out renders exactly the expected lines, ignoring
// styling and trailing whitespace.
func ExpectLines(tb testing.TB, out string, expected ...string) {
	tb.Helper()

	got := Lines(out)
	if len(got) != len(expected) {
		tb.Fatalf("expected %d lines %q, got %d lines %q", len(expected), expected, len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			tb.Errorf("line %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

// ExpectPrefixLines is like [ExpectLines], but allows out to have additional
// lines after the expected ones.
func ExpectPrefixLines(tb testing.TB, out string, expected ...string) {
	tb.Helper()

	got := Lines(out)
	if len(got) < len(expected) {
		tb.Fatalf("expected at least %d lines %q, got %q", len(expected), expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			tb.Errorf("line %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}
