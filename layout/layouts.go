// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package layout renders flow layouts of terminal content using lipgloss
// layers, so that wrapped rows of chips, tags, or any other rendered blocks can
// be composed, drawn onto an ultraviolet screen, or hit-tested from a bubbletea
// program.
package layout

import "charm.land/lipgloss/v2"

// Layout is a generic layout interface. All layouts must implement this interface.
type Layout interface {
	// Render renders the layout into a [lipgloss.Layer]. The child can use the
	// provided availableWidth and availableHeight to calculate the size of the
	// layout it can consume.
	Render(availableWidth, availableHeight int) *lipgloss.Layer
}
