// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

import (
	"fmt"
	"image"
	"strings"
)

// Spacing is the gap an item leaves after itself, horizontally within its row
// and vertically below its row.
type Spacing struct {
	Horizontal int `toml:"horizontal" yaml:"horizontal" json:"horizontal"`
	Vertical   int `toml:"vertical" yaml:"vertical" json:"vertical"`
}

// Padding is the space reserved on each side of the container.
type Padding struct {
	Top    int `toml:"top" yaml:"top" json:"top"`
	Right  int `toml:"right" yaml:"right" json:"right"`
	Bottom int `toml:"bottom" yaml:"bottom" json:"bottom"`
	Left   int `toml:"left" yaml:"left" json:"left"`
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Item is a pre-measured element to be laid out. Handle is opaque to the
// layout and is carried through to the resulting [Placement].
type Item struct {
	Handle  any
	Width   int
	Height  int
	Spacing Spacing

	// Gone items take no space and receive no placement.
	Gone bool
}

// Mode describes how a [Constraint] bounds a dimension.
type Mode uint8

const (
	// Unbounded places no limit on the dimension. It is not accepted for width.
	Unbounded Mode = iota
	// Exact requires the dimension to be exactly the constraint size.
	Exact
	// AtMost allows the dimension to grow up to the constraint size.
	AtMost
)

var modeNames = [...]string{
	Unbounded: "unbounded",
	Exact:     "exact",
	AtMost:    "at-most",
}

func (m Mode) valid() bool {
	return m <= AtMost
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("flow: invalid mode %d", uint8(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range modeNames {
		if s == name {
			*m = Mode(i) //nolint:gosec
			return nil
		}
	}
	return fmt.Errorf("flow: unknown mode %q", s)
}

// Constraint bounds a single dimension of the container.
type Constraint struct {
	Size int
	Mode Mode
}

// ExactSize returns a constraint requiring exactly size.
func ExactSize(size int) Constraint {
	return Constraint{Size: size, Mode: Exact}
}

// AtMostSize returns a constraint allowing up to size.
func AtMostSize(size int) Constraint {
	return Constraint{Size: size, Mode: AtMost}
}

// UnboundedSize returns a constraint with no upper limit.
func UnboundedSize() Constraint {
	return Constraint{Mode: Unbounded}
}

// Constraints are the width and height bounds supplied by the host for a
// single measure pass.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

func (cs Constraints) validate() error {
	if cs.Width.Mode == Unbounded || !cs.Width.Mode.valid() {
		return &ConstraintError{Axis: "width", Mode: cs.Width.Mode}
	}
	if !cs.Height.Mode.valid() {
		return &ConstraintError{Axis: "height", Mode: cs.Height.Mode}
	}
	return nil
}

// Metrics are the results of a measure pass.
type Metrics struct {
	// Width is the resolved container width, including padding.
	Width int `yaml:"width" json:"width"`
	// Height is the resolved container height, including padding.
	Height int `yaml:"height" json:"height"`
	// LineHeight is the tallest item height plus vertical spacing seen by the
	// pass.
	LineHeight int `yaml:"line_height" json:"line_height"`
	// Rows is the number of rows the items wrapped into.
	Rows int `yaml:"rows" json:"rows"`
}

// Placement is the final position of a single item.
type Placement struct {
	// Index is the position of the item in the input slice.
	Index int
	// Row is the zero-based row the item was placed in.
	Row    int
	Handle any
	Bounds image.Rectangle
}
