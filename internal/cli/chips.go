// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lrstanley/x/charm/flow"
	"github.com/lrstanley/x/charm/flow/layout"
)

const chipIDPrefix = "chip-"

// chipID returns the layer ID of the chip at index i.
func chipID(i int) string {
	return chipIDPrefix + strconv.Itoa(i)
}

// chipIndex returns the chip index encoded in a layer ID by [chipID].
func chipIndex(id string) (int, bool) {
	v, ok := strings.CutPrefix(id, chipIDPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	return i, err == nil
}

// chipStyle returns the style chips are rendered with. Selected chips have
// their colors reversed.
func (s Style) chipStyle(selected bool) lipgloss.Style {
	fg, bg := s.Foreground, s.Background
	if selected {
		fg, bg = bg, fg
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if s.Border {
		style = style.Border(lipgloss.RoundedBorder())
		if bg != "" {
			style = style.BorderForeground(lipgloss.Color(bg))
		}
	}
	return style
}

// Layout builds the chip cloud. selected is the index of a chip to highlight,
// or -1 for none.
func (c *Config) Layout(selected int) *layout.FlowLayout {
	children := make([]any, len(c.Chips))
	for i, chip := range c.Chips {
		children[i] = layout.NewItem(c.Style.chipStyle(i == selected).Render(chip)).ID(chipID(i))
	}

	return layout.Flow(c.Align, children...).
		Spacing(c.Spacing.Horizontal, c.Spacing.Vertical).
		Padding(c.Padding.Top, c.Padding.Right, c.Padding.Bottom, c.Padding.Left).
		HeightMode(c.HeightMode)
}

// resolve lays out the chip cloud within the configured bounds.
func (c *Config) resolve() (flow.Metrics, []flow.Placement, error) {
	m, placements, err := c.Layout(-1).Placements(c.Width, c.Height)
	if err != nil {
		return flow.Metrics{}, nil, fmt.Errorf("failed to lay out chips: %w", err)
	}
	return m, placements, nil
}

// Render renders the chip cloud, sized to its resolved dimensions.
func (c *Config) Render(selected int) (string, error) {
	m, _, err := c.resolve()
	if err != nil {
		return "", err
	}
	return layout.RenderString(m.Width, m.Height, c.Layout(selected)), nil
}
