// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

// DefaultSpacingDp is the default horizontal and vertical item spacing, in
// density-independent pixels.
const DefaultSpacingDp = 7

// DpToPx converts density-independent pixels to device pixels for the given
// display density, rounding to the nearest pixel.
func DpToPx(dp int, density float64) int {
	return int(float64(dp)*density + 0.5)
}

// DefaultSpacing returns the default spacing converted with conv. A nil conv
// leaves the value unconverted, which suits hosts already working in cells.
func DefaultSpacing(conv func(dp int) int) Spacing {
	v := DefaultSpacingDp
	if conv != nil {
		v = conv(v)
	}
	return Spacing{Horizontal: v, Vertical: v}
}
