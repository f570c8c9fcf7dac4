// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package layout

import "github.com/lrstanley/x/charm/flow"

// Item wraps a child of a [FlowLayout] with per-item settings. Children which
// aren't wrapped in an Item use the defaults of the layout they belong to.
type Item struct {
	child   any
	id      string
	spacing *flow.Spacing
	hidden  bool
}

// NewItem creates a new Item wrapping child.
func NewItem(child any) *Item {
	return &Item{child: child}
}

// ID sets the layer ID of the item, which is reported by hit testing (see
// [RenderView]). It overrides any ID resolved from the child itself.
func (i *Item) ID(id string) *Item {
	i.id = id
	return i
}

// Spacing sets the horizontal and vertical spacing reserved after this item,
// overriding the spacing of the layout. Negative values are treated as 0.
func (i *Item) Spacing(horizontal, vertical int) *Item {
	i.spacing = &flow.Spacing{
		Horizontal: max(0, horizontal),
		Vertical:   max(0, vertical),
	}
	return i
}

// Hide marks the item as hidden. Hidden items take up no space and don't
// affect wrapping.
func (i *Item) Hide(hidden bool) *Item {
	i.hidden = hidden
	return i
}
