// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

import (
	"fmt"
	"strings"
)

// Alignment is the horizontal placement policy applied to every row.
type Alignment uint8

const (
	// Left packs items against the left padding.
	Left Alignment = iota
	// Right packs items against the right padding, keeping insertion order.
	Right
	// Center packs items in the middle of the available width.
	Center
	// Staggered spreads items so the gaps before, between and after them are
	// equal.
	Staggered
)

var alignmentNames = [...]string{
	Left:      "left",
	Right:     "right",
	Center:    "center",
	Staggered: "staggered",
}

// Alignments returns every supported alignment, in declaration order.
func Alignments() []Alignment {
	return []Alignment{Left, Right, Center, Staggered}
}

func (a Alignment) valid() bool {
	return a <= Staggered
}

// String implements [fmt.Stringer].
func (a Alignment) String() string {
	if !a.valid() {
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
	return alignmentNames[a]
}

// Next returns the alignment following a, wrapping back to [Left].
func (a Alignment) Next() Alignment {
	if !a.valid() || a == Staggered {
		return Left
	}
	return a + 1
}

// ParseAlignment parses the case-insensitive name of an alignment.
func ParseAlignment(name string) (Alignment, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range alignmentNames {
		if s == n {
			return Alignment(i), nil //nolint:gosec
		}
	}
	return 0, &InvalidPolicyError{Alignment: Alignment(len(alignmentNames)), Name: name}
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, &InvalidPolicyError{Alignment: a}
	}
	return []byte(alignmentNames[a]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
