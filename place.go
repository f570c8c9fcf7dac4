// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

import (
	"image"

	"github.com/lrstanley/x/charm/flow/internal/pool"
)

var rowPool pool.Pool[row, *row]

type rowEntry struct {
	index         int
	handle        any
	width, height int
}

// row buffers the items of the row currently being accumulated. A row adopts
// the horizontal spacing of its first item.
type row struct {
	number  int
	y       int
	spacing int
	entries []rowEntry
}

func (r *row) add(index int, c *cursor, item *Item) {
	if len(r.entries) == 0 {
		r.number = c.row
		r.y = c.y
		r.spacing = item.Spacing.Horizontal
	}
	r.entries = append(r.entries, rowEntry{
		index:  index,
		handle: item.Handle,
		width:  item.Width,
		height: item.Height,
	})
}

// contentWidth returns the summed item widths plus gap between each pair.
func (r *row) contentWidth(gap int) int {
	var w int
	for _, e := range r.entries {
		w += e.width
	}
	return w + gap*(len(r.entries)-1)
}

// Reset implements [pool.Resetter].
func (r *row) Reset() {
	clear(r.entries)
	r.entries = r.entries[:0]
	r.number, r.y, r.spacing = 0, 0, 0
}

type placer struct {
	width int
	pad   Padding
	align Alignment
	out   []Placement
}

// flush positions every buffered item according to the alignment, then
// empties the row.
func (p *placer) flush(r *row) error {
	if len(r.entries) == 0 {
		return nil
	}

	available := p.width - p.pad.Horizontal()

	var x, gap int
	switch p.align {
	case Left:
		x, gap = p.pad.Left, r.spacing
	case Right:
		// Filling right-to-left from the right edge lands the first item
		// exactly one content width away from it.
		x, gap = p.width-p.pad.Right-r.contentWidth(r.spacing), r.spacing
	case Center:
		x, gap = p.pad.Left+(available-r.contentWidth(r.spacing))/2, r.spacing
	case Staggered:
		gap = (available - r.contentWidth(0)) / (len(r.entries) + 1)
		x = p.pad.Left + gap
	default:
		return &InvalidPolicyError{Alignment: p.align}
	}

	for _, e := range r.entries {
		p.out = append(p.out, Placement{
			Index:  e.index,
			Row:    r.number,
			Handle: e.handle,
			Bounds: image.Rectangle{
				Min: image.Pt(x, r.y),
				Max: image.Pt(x+e.width, r.y+e.height),
			},
		})
		x += e.width + gap
	}

	r.Reset()
	return nil
}

// Place positions items into rows no wider than width, aligning each row
// according to align. The returned placements are in input order; gone items
// are omitted.
//
// Rows break exactly where [Measure] breaks them for the same width and
// padding, and each row's y is the one Measure accumulated. Width should be
// the container's final width, usually [Metrics.Width].
//
// An alignment outside the known set returns a [*InvalidPolicyError] and no
// placements.
func Place(items []Item, width int, pad Padding, align Alignment) ([]Placement, error) {
	if !align.valid() {
		return nil, &InvalidPolicyError{Alignment: align}
	}

	r := rowPool.Get()
	defer rowPool.Put(r)

	p := &placer{
		width: width,
		pad:   pad,
		align: align,
		out:   make([]Placement, 0, len(items)),
	}

	c := newCursor(width, pad)
	for i := range items {
		item := &items[i]
		if item.Gone {
			continue
		}
		if c.advance(item) {
			if err := p.flush(r); err != nil {
				return nil, err
			}
		}
		r.add(i, &c, item)
	}

	if err := p.flush(r); err != nil {
		return nil, err
	}
	return p.out, nil
}
