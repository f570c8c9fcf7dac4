// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

// Measure simulates wrapping items into rows no wider than the width
// constraint and resolves the dimensions the container needs.
//
// The width constraint must be [Exact] or [AtMost]; anything else returns a
// [*ConstraintError] before any work is done. The resolved width is always the
// width constraint size. The resolved height depends on the height mode:
//
//   - [Exact]: the constraint size.
//   - [AtMost]: the natural height, unless it is not smaller than the
//     constraint size, in which case the constraint size.
//   - [Unbounded]: the natural height.
//
// The natural height is the top padding, plus each row's advance, plus the
// final line height, plus the bottom padding.
func Measure(items []Item, cs Constraints, pad Padding) (Metrics, error) {
	if err := cs.validate(); err != nil {
		return Metrics{}, err
	}

	c := newCursor(cs.Width.Size, pad)
	for i := range items {
		if items[i].Gone {
			continue
		}
		c.advance(&items[i])
	}

	height := c.y + c.lineHeight + pad.Bottom

	switch cs.Height.Mode {
	case Exact:
		height = cs.Height.Size
	case AtMost:
		if height >= cs.Height.Size {
			height = cs.Height.Size
		}
	}

	return Metrics{
		Width:      cs.Width.Size,
		Height:     height,
		LineHeight: c.lineHeight,
		Rows:       c.rows(),
	}, nil
}
