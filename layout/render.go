// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package layout

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// LayerMouseMsg is sent to the model when a mouse event lands on a layer with
// an ID. See [RenderView].
type LayerMouseMsg struct {
	LayerID string
	Mouse   tea.MouseMsg
}

// compose resolves child and wraps it in a compositor, or returns nil if there
// is nothing to render.
func compose(width, height int, child any) *lipgloss.Compositor {
	if child == nil || width <= 0 || height <= 0 {
		return nil
	}

	layer := resolveLayer(child, width, height)
	if layer == nil {
		return nil
	}
	return lipgloss.NewCompositor(layer)
}

// RenderString renders the provided child/layout/etc into a string.
func RenderString(width, height int, child any) string {
	comp := compose(width, height, child)
	if comp == nil {
		return ""
	}
	return lipgloss.NewCanvas(width, height).Compose(comp).Render()
}

// Draw renders the provided child/layout/etc onto scr, within area.
func Draw(scr uv.Screen, area uv.Rectangle, child any) {
	if child == nil || area.Empty() {
		return
	}

	layer := resolveLayer(child, area.Dx(), area.Dy())
	if layer == nil {
		return
	}

	layer.X(area.Min.X).Y(area.Min.Y)
	lipgloss.NewCompositor(layer).Draw(scr, area)
}

// RenderView renders the provided child/layout/etc onto an existing [tea.View].
// If the view has mouse support enabled, mouse events are hit tested against
// the rendered layers, and events landing on a layer with an ID are sent to the
// model as a [LayerMouseMsg].
func RenderView(view *tea.View, width, height int, child any) {
	comp := compose(width, height, child)
	if comp == nil {
		return
	}

	if view.MouseMode != tea.MouseModeNone {
		view.OnMouse = func(msg tea.MouseMsg) tea.Cmd {
			mouse := msg.Mouse()
			hit := comp.Hit(mouse.X, mouse.Y)
			if hit.Empty() {
				return nil
			}

			return func() tea.Msg {
				return LayerMouseMsg{
					LayerID: hit.ID(),
					Mouse:   msg,
				}
			}
		}
	}
	view.SetContent(lipgloss.NewCanvas(width, height).Compose(comp).Render())
}
