// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

import (
	"errors"
	"image"
	"math/rand/v2"
	"reflect"
	"testing"
)

func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

func bounds(placements []Placement) []image.Rectangle {
	out := make([]image.Rectangle, len(placements))
	for i, p := range placements {
		out[i] = p.Bounds
	}
	return out
}

func TestPlaceAlignments(t *testing.T) {
	t.Parallel()

	single := uniform(10, Spacing{Horizontal: 5}, 20, 20)
	multi := uniform(10, Spacing{Horizontal: 5, Vertical: 1}, 15, 15, 15)
	multiPad := Padding{Top: 2, Right: 5, Left: 5}

	tests := []struct {
		name     string
		items    []Item
		width    int
		pad      Padding
		align    Alignment
		expected []image.Rectangle
	}{
		{
			name:     "left",
			items:    single,
			width:    100,
			align:    Left,
			expected: []image.Rectangle{rect(0, 0, 20, 10), rect(25, 0, 45, 10)},
		},
		{
			name:     "right",
			items:    single,
			width:    100,
			align:    Right,
			expected: []image.Rectangle{rect(55, 0, 75, 10), rect(80, 0, 100, 10)},
		},
		{
			name:     "center",
			items:    single,
			width:    100,
			align:    Center,
			expected: []image.Rectangle{rect(27, 0, 47, 10), rect(52, 0, 72, 10)},
		},
		{
			name:     "staggered",
			items:    single,
			width:    100,
			align:    Staggered,
			expected: []image.Rectangle{rect(20, 0, 40, 10), rect(60, 0, 80, 10)},
		},
		{
			name:  "left multi row with padding",
			items: multi,
			width: 50,
			pad:   multiPad,
			align: Left,
			expected: []image.Rectangle{
				rect(5, 2, 20, 12), rect(25, 2, 40, 12),
				rect(5, 13, 20, 23),
			},
		},
		{
			name:  "right multi row with padding",
			items: multi,
			width: 50,
			pad:   multiPad,
			align: Right,
			expected: []image.Rectangle{
				rect(10, 2, 25, 12), rect(30, 2, 45, 12),
				rect(30, 13, 45, 23),
			},
		},
		{
			name:  "center multi row with padding",
			items: multi,
			width: 50,
			pad:   multiPad,
			align: Center,
			expected: []image.Rectangle{
				rect(7, 2, 22, 12), rect(27, 2, 42, 12),
				rect(17, 13, 32, 23),
			},
		},
		{
			name:  "staggered multi row with padding",
			items: multi,
			width: 50,
			pad:   multiPad,
			align: Staggered,
			expected: []image.Rectangle{
				rect(8, 2, 23, 12), rect(26, 2, 41, 12),
				rect(17, 13, 32, 23),
			},
		},
		{
			name:  "padding counts against the wrap edge",
			items: uniform(10, Spacing{}, 20, 20),
			width: 50,
			pad:   Padding{Right: 5, Left: 5},
			align: Left,
			expected: []image.Rectangle{
				rect(5, 0, 25, 10),
				rect(5, 10, 25, 20),
			},
		},
		{
			name:     "center truncates odd remainder",
			items:    uniform(10, Spacing{Horizontal: 5}, 30, 30),
			width:    101,
			align:    Center,
			expected: []image.Rectangle{rect(18, 0, 48, 10), rect(53, 0, 83, 10)},
		},
		{
			name:  "staggered even gaps",
			items: uniform(10, Spacing{}, 20, 20, 20),
			width: 100,
			align: Staggered,
			expected: []image.Rectangle{
				rect(10, 0, 30, 10), rect(40, 0, 60, 10), rect(70, 0, 90, 10),
			},
		},
		{
			name: "row uses first item spacing",
			items: []Item{
				item(10, 10, Spacing{Horizontal: 5}),
				item(10, 10, Spacing{Horizontal: 1}),
				item(10, 10, Spacing{Horizontal: 1}),
			},
			width: 100,
			align: Left,
			expected: []image.Rectangle{
				rect(0, 0, 10, 10), rect(15, 0, 25, 10), rect(30, 0, 40, 10),
			},
		},
		{
			name:  "oversize items get their own rows",
			items: uniform(10, Spacing{}, 30, 5, 30),
			width: 10,
			align: Left,
			expected: []image.Rectangle{
				rect(0, 0, 30, 10), rect(0, 10, 5, 20), rect(0, 20, 30, 30),
			},
		},
		{
			name:     "no items",
			width:    10,
			align:    Center,
			expected: []image.Rectangle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Place(tt.items, tt.width, tt.pad, tt.align)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(bounds(got), tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, bounds(got))
			}
		})
	}
}

func TestPlaceGoneItems(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Handle: "a", Width: 20, Height: 10},
		{Handle: "b", Width: 20, Height: 10, Gone: true},
		{Handle: "c", Width: 20, Height: 10},
	}

	got, err := Place(items, 100, Padding{}, Left)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Placement{
		{Index: 0, Row: 0, Handle: "a", Bounds: rect(0, 0, 20, 10)},
		{Index: 2, Row: 0, Handle: "c", Bounds: rect(20, 0, 40, 10)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestPlaceInvalidPolicy(t *testing.T) {
	t.Parallel()

	for _, items := range [][]Item{nil, uniform(10, Spacing{}, 5, 5, 5)} {
		got, err := Place(items, 100, Padding{}, Alignment(9))
		if got != nil {
			t.Errorf("expected no placements, got %v", got)
		}

		var perr *InvalidPolicyError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *InvalidPolicyError, got %v", err)
		}
		if perr.Alignment != Alignment(9) {
			t.Errorf("expected alignment 9, got %d", perr.Alignment)
		}
	}
}

func TestPlaceFlushRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	r := &row{}
	c := newCursor(100, Padding{})
	it := item(10, 10, Spacing{})
	c.advance(&it)
	r.add(0, &c, &it)

	p := &placer{width: 100, align: Alignment(200)}

	var perr *InvalidPolicyError
	if err := p.flush(r); !errors.As(err, &perr) {
		t.Fatalf("expected *InvalidPolicyError, got %v", err)
	}
	if len(p.out) != 0 {
		t.Errorf("expected no output, got %v", p.out)
	}
}

func TestPlaceIdempotent(t *testing.T) {
	t.Parallel()

	items := uniform(3, Spacing{Horizontal: 2, Vertical: 1}, 7, 13, 4, 22, 9, 1, 18)

	for _, align := range Alignments() {
		first, err := Place(items, 31, Padding{Left: 1, Right: 2, Top: 3}, align)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Place(items, 31, Padding{Left: 1, Right: 2, Top: 3}, align)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: placements differ between passes:\n%v\n%v", align, first, second)
		}
	}
}

func randomItems(r *rand.Rand) []Item {
	items := make([]Item, r.IntN(30))
	for i := range items {
		items[i] = Item{
			Handle: i,
			Width:  r.IntN(60),
			Height: r.IntN(20),
			Spacing: Spacing{
				Horizontal: r.IntN(6),
				Vertical:   r.IntN(6),
			},
			Gone: r.IntN(10) == 0,
		}
	}
	return items
}

func randomPadding(r *rand.Rand) Padding {
	return Padding{Top: r.IntN(6), Right: r.IntN(6), Bottom: r.IntN(6), Left: r.IntN(6)}
}

func TestPlaceMatchesMeasure(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	for range 500 {
		items := randomItems(r)
		pad := randomPadding(r)
		width := 1 + r.IntN(120)
		align := Alignments()[r.IntN(4)]

		m, err := Measure(items, Constraints{Width: ExactSize(width)}, pad)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		placements, err := Place(items, m.Width, pad, align)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows := rowIndexes(items, width, pad)

		var visible int
		for _, row := range rows {
			if row >= 0 {
				visible++
			}
		}
		if len(placements) != visible {
			t.Fatalf("expected %d placements, got %d", visible, len(placements))
		}

		lastRow := -1
		var rowY, trailing int
		for i, p := range placements {
			if i > 0 && p.Index <= placements[i-1].Index {
				t.Fatalf("placements out of input order: %v", placements)
			}
			if rows[p.Index] != p.Row {
				t.Fatalf("item %d: measure row %d, place row %d", p.Index, rows[p.Index], p.Row)
			}
			if p.Handle != items[p.Index].Handle {
				t.Fatalf("item %d: handle mismatch", p.Index)
			}
			if p.Bounds.Dx() != items[p.Index].Width || p.Bounds.Dy() != items[p.Index].Height {
				t.Fatalf("item %d: size changed to %v", p.Index, p.Bounds)
			}

			h := items[p.Index].Height + items[p.Index].Spacing.Vertical
			if p.Row != lastRow {
				if p.Row != lastRow+1 {
					t.Fatalf("row numbers skipped from %d to %d", lastRow, p.Row)
				}
				if lastRow >= 0 && p.Bounds.Min.Y < rowY {
					t.Fatalf("row %d starts above row %d", p.Row, lastRow)
				}
				lastRow, rowY, trailing = p.Row, p.Bounds.Min.Y, h
				continue
			}
			if p.Bounds.Min.Y != rowY {
				t.Fatalf("row %d: items at different y", p.Row)
			}
			trailing = max(trailing, h)
		}

		if m.Rows != lastRow+1 {
			t.Fatalf("expected %d rows from measure, got %d", lastRow+1, m.Rows)
		}
		if lastRow >= 0 && m.Height < rowY+trailing+pad.Bottom {
			t.Fatalf("height %d below last row %d + %d + %d", m.Height, rowY, trailing, pad.Bottom)
		}
	}
}

func TestPlaceLeftRightSymmetry(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4)) //nolint:gosec

	for range 200 {
		n := 1 + r.IntN(8)
		w := 1 + r.IntN(15)
		sp := Spacing{Horizontal: r.IntN(5)}
		pad := randomPadding(r)
		width := pad.Left + pad.Horizontal() + n*w + (n-1)*sp.Horizontal + r.IntN(40)

		widths := make([]int, n)
		for i := range widths {
			widths[i] = w
		}
		items := uniform(5, sp, widths...)

		left, err := Place(items, width, pad, Left)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		right, err := Place(items, width, pad, Right)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		axis := pad.Left + width - pad.Right
		for i := range right {
			mirrored := left[n-1-i].Bounds
			x := axis - mirrored.Max.X
			if d := right[i].Bounds.Min.X - x; d < -1 || d > 1 {
				t.Fatalf("item %d: right x %d, mirrored left x %d", i, right[i].Bounds.Min.X, x)
			}
		}
	}
}
