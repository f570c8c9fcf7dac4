// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package layout

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/lrstanley/x/charm/flow"
)

// DefaultSpacing is the spacing used by a [FlowLayout] unless changed with
// [FlowLayout.Spacing]. Terminal cells are much taller than they are wide, so
// rows are packed without a vertical gap.
var DefaultSpacing = flow.Spacing{Horizontal: 1}

var _ Layout = (*FlowLayout)(nil)

// FlowLayout arranges its children left to right, wrapping onto a new row
// whenever the next child would extend past the available width, and aligns
// each row using a [flow.Alignment].
type FlowLayout struct {
	align      flow.Alignment
	spacing    flow.Spacing
	padding    flow.Padding
	heightMode flow.Mode
	children   []any
}

// Flow creates a new flow layout with the provided children. Children can be
// anything supported by [Layout] rendering (strings, layers, layouts, models),
// optionally wrapped in an [Item] for per-child settings. Nil children are
// ignored.
func Flow(align flow.Alignment, children ...any) *FlowLayout {
	return &FlowLayout{
		align:      align,
		spacing:    DefaultSpacing,
		heightMode: flow.AtMost,
		children:   filterNil(children),
	}
}

// Spacing sets the default horizontal and vertical spacing reserved after each
// child. Negative values are treated as 0.
func (r *FlowLayout) Spacing(horizontal, vertical int) *FlowLayout {
	r.spacing = flow.Spacing{Horizontal: max(0, horizontal), Vertical: max(0, vertical)}
	return r
}

// Padding sets the padding between the edges of the layout and its content.
// Negative values are treated as 0.
func (r *FlowLayout) Padding(top, right, bottom, left int) *FlowLayout {
	r.padding = flow.Padding{
		Top:    max(0, top),
		Right:  max(0, right),
		Bottom: max(0, bottom),
		Left:   max(0, left),
	}
	return r
}

// HeightMode sets how the available height constrains the layout. The default
// is [flow.AtMost], which shrinks to fit the content. [flow.Exact] always
// fills the available height, and [flow.Unbounded] ignores it.
func (r *FlowLayout) HeightMode(mode flow.Mode) *FlowLayout {
	r.heightMode = mode
	return r
}

// constraints maps the available space onto flow constraints. A non-positive
// height is treated as unbounded unless the layout requires an exact height.
func (r *FlowLayout) constraints(availableWidth, availableHeight int) flow.Constraints {
	cs := flow.Constraints{
		Width:  flow.ExactSize(max(0, availableWidth)),
		Height: flow.Constraint{Size: availableHeight, Mode: r.heightMode},
	}
	if availableHeight <= 0 && r.heightMode != flow.Exact {
		cs.Height = flow.UnboundedSize()
	}
	return cs
}

// items resolves every child into a layer and describes it as a [flow.Item],
// with a copy of the layer as its handle. Hidden children, and children which resolve
// to nothing, are marked as gone.
func (r *FlowLayout) items(availableWidth, availableHeight int) []flow.Item {
	contentWidth := max(0, availableWidth-r.padding.Horizontal())

	items := make([]flow.Item, 0, len(r.children))
	for _, child := range r.children {
		item := flow.Item{Spacing: r.spacing}

		var id string
		if v, ok := child.(*Item); ok {
			if v.spacing != nil {
				item.Spacing = *v.spacing
			}
			item.Gone = v.hidden
			id = v.id
			child = v.child
		}

		if !item.Gone {
			if layer := resolveLayer(child, contentWidth, availableHeight); layer != nil {
				// Positioned and tagged on a copy, so a layer passed in more than
				// once (or reused by the caller) is never moved from under it.
				cp := *layer
				layer = &cp
				if id != "" {
					layer.ID(id)
				}
				item.Handle = layer
				item.Width = layer.Width()
				item.Height = layer.Height()
			} else {
				item.Gone = true
			}
		}

		items = append(items, item)
	}
	return items
}

// Placements resolves the children and returns the computed container metrics
// along with the placement of each visible child. The handle of each placement
// is the child's [lipgloss.Layer].
func (r *FlowLayout) Placements(availableWidth, availableHeight int) (flow.Metrics, []flow.Placement, error) {
	return flow.New(r.align, flow.WithPadding(r.padding)).Layout(
		r.items(availableWidth, availableHeight),
		r.constraints(availableWidth, availableHeight),
	)
}

// Render renders the children at their placements. It panics if the layout
// can't be resolved, such as when the height mode is invalid or the alignment
// is unknown.
func (r *FlowLayout) Render(availableWidth, availableHeight int) *lipgloss.Layer {
	m, placements, err := r.Placements(availableWidth, availableHeight)
	if err != nil {
		panic(fmt.Sprintf("flow layout: %v", err))
	}

	if len(placements) == 0 {
		return nil
	}

	layers := make([]*lipgloss.Layer, 0, len(placements))
	for _, p := range placements {
		layer, ok := p.Handle.(*lipgloss.Layer)
		if !ok {
			continue
		}
		layers = append(layers, layer.X(p.Bounds.Min.X).Y(p.Bounds.Min.Y))
	}

	// The parent carries the flattened rows as its own content, padded out to
	// the resolved size, so that it measures correctly when nested. Children
	// stay attached for hit testing.
	content := lipgloss.NewCanvas(m.Width, m.Height).
		Compose(lipgloss.NewCompositor(layers...)).
		Render()

	return lipgloss.NewLayer(
		lipgloss.Place(m.Width, m.Height, lipgloss.Left, lipgloss.Top, content),
		layers...,
	)
}
