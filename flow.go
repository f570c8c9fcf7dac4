// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package flow wraps pre-measured items into rows that fit a bounded width,
// then aligns each row horizontally.
//
// A layout pass is two steps run in sequence: [Measure] simulates the wrapping
// and resolves the container dimensions, then [Place] re-walks the items with
// the final width and returns a rectangle per item. Both steps use the same
// row-break rule, so they always agree on which items share a row.
//
// A row breaks before an item when the cursor, which starts at the left
// padding, plus the item width would exceed the content width (the container
// width minus both paddings). A row always holds at least one item, so an item wider
// than the container gets a row of its own rather than being split or dropped.
//
// Passes are synchronous and keep all working state local to the call, so a
// [Flow] may be shared freely.
package flow

// Flow is a container configuration: an alignment policy and the padding
// around the content area. It holds no per-pass state.
type Flow struct {
	align   Alignment
	padding Padding
}

// Option configures a [Flow].
type Option func(*Flow)

// WithPadding sets the padding around the content area.
func WithPadding(pad Padding) Option {
	return func(f *Flow) {
		f.padding = pad
	}
}

// New returns a new [Flow] which aligns rows using align.
func New(align Alignment, opts ...Option) *Flow {
	f := &Flow{align: align}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Alignment returns the alignment policy of the Flow.
func (f *Flow) Alignment() Alignment {
	return f.align
}

// Padding returns the padding of the Flow.
func (f *Flow) Padding() Padding {
	return f.padding
}

// Measure runs [Measure] with the Flow's padding.
func (f *Flow) Measure(items []Item, cs Constraints) (Metrics, error) {
	return Measure(items, cs, f.padding)
}

// Place runs [Place] with the Flow's padding and alignment.
func (f *Flow) Place(items []Item, width int) ([]Placement, error) {
	return Place(items, width, f.padding, f.align)
}

// Layout measures items against cs, then places them using the resolved
// width. If either step fails, the zero [Metrics] and no placements are
// returned.
func (f *Flow) Layout(items []Item, cs Constraints) (Metrics, []Placement, error) {
	m, err := f.Measure(items, cs)
	if err != nil {
		return Metrics{}, nil, err
	}

	placements, err := f.Place(items, m.Width)
	if err != nil {
		return Metrics{}, nil, err
	}
	return m, placements, nil
}
