// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

// cursor walks items the way both passes see them. Measure and Place share it,
// which is what keeps their row partitions identical for the same width.
type cursor struct {
	left  int // x a new row starts at.
	limit int // wrap edge, compared against x + width.

	x, y       int
	lineHeight int

	row   int // current row number.
	count int // items in the current row.
}

// newCursor starts a pass over a container of the given width. Rows wrap once
// x, which starts at the left padding, would pass the content width
// (width minus both paddings). The left padding is therefore counted twice
// against the wrap edge, matching long-standing flow layout behavior.
func newCursor(width int, pad Padding) cursor {
	return cursor{
		left:  pad.Left,
		limit: width - pad.Horizontal(),
		x:     pad.Left,
		y:     pad.Top,
	}
}

// advance moves the cursor past item and reports whether item opened a new
// row. On a break, y and row already refer to the new row when it returns.
func (c *cursor) advance(item *Item) bool {
	// The line height is raised before the wrap test, so the advance for the
	// row being closed already includes the item that opens the next one.
	// Known quirk, kept for compatibility.
	c.lineHeight = max(c.lineHeight, item.Height+item.Spacing.Vertical)

	wrapped := c.count > 0 && c.x+item.Width > c.limit
	if wrapped {
		c.x = c.left
		c.y += c.lineHeight
		c.row++
		c.count = 0
	}

	c.x += item.Width + item.Spacing.Horizontal
	c.count++
	return wrapped
}

// rows returns the number of rows seen so far.
func (c *cursor) rows() int {
	if c.count == 0 {
		return 0
	}
	return c.row + 1
}
