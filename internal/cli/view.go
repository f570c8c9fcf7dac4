// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/lrstanley/x/charm/flow"
	"github.com/lrstanley/x/charm/flow/internal/logging"
	"github.com/lrstanley/x/charm/flow/layout"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const historySize = 50

var statusStyle = lipgloss.NewStyle().Foreground(charmtone.Oyster).Faint(true)

// viewModel is the interactive chip cloud. The cloud is laid out against the
// window, minus a status line at the bottom.
type viewModel struct {
	cfg     *Config
	logger  *slog.Logger
	history *logging.History

	// align overrides the configured alignment once it's been cycled, and
	// survives config reloads. cfg itself is never modified.
	align *flow.Alignment

	width    int
	height   int
	selected int
}

func newViewModel(cfg *Config, logger *slog.Logger, history *logging.History) *viewModel {
	return &viewModel{
		cfg:      cfg,
		logger:   logger,
		history:  history,
		selected: -1,
	}
}

// config returns the configuration to render with, including any alignment
// override.
func (m *viewModel) config() *Config {
	if m.align == nil {
		return m.cfg
	}
	cfg := *m.cfg
	cfg.Align = *m.align
	return &cfg
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			align := m.config().Align.Next()
			m.align = &align
			m.logger.Info("alignment changed", "align", align)
		}
	case layout.LayerMouseMsg:
		if _, ok := msg.Mouse.(tea.MouseClickMsg); !ok {
			return m, nil
		}
		if i, ok := chipIndex(msg.LayerID); ok && i < len(m.cfg.Chips) {
			m.selected = i
			m.logger.Info("chip selected", "chip", m.cfg.Chips[i])
		}
	case configMsg:
		m.cfg = msg.cfg
		if m.selected >= len(m.cfg.Chips) {
			m.selected = -1
		}
		m.logger.Info("config reloaded", "chips", len(m.cfg.Chips), "align", m.config().Align)
	}
	return m, nil
}

// status returns the status line: the current alignment, the key bindings, and
// the most recent log message.
func (m *viewModel) status() string {
	s := fmt.Sprintf("%s · tab: align · click: select · q: quit", m.config().Align)
	if r, ok := m.history.Last(); ok {
		s += " · " + r.Message
	}
	return statusStyle.Render(ansi.Truncate(s, m.width, "…"))
}

func (m *viewModel) View() tea.View {
	view := tea.View{
		AltScreen: true,
		MouseMode: tea.MouseModeCellMotion,
	}

	if m.width <= 0 || m.height <= 1 {
		return view
	}

	root := lipgloss.NewLayer("", lipgloss.NewLayer(m.status()).Y(m.height-1))
	if cloud := m.config().Layout(m.selected).Render(m.width, m.height-1); cloud != nil {
		root.AddLayers(cloud)
	}

	layout.RenderView(&view, m.width, m.height, root)
	return view
}

func newViewCmd(opts *rootOpts) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the chip cloud interactively",
		Long: "Explore the chip cloud interactively. The cloud is laid out against the " +
			"terminal window, tab cycles the alignment, and clicking a chip selects it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch && opts.configPath == "" {
				return errors.New("--watch requires --config")
			}

			// Terminal logging would draw over the program, so records are only
			// kept for the status line.
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			history := logging.NewHistory(historySize, level, logging.NewDiscard())
			logger := slog.New(history)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			p := tea.NewProgram(
				newViewModel(opts.cfg, logger, history),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			g.Go(func() error {
				defer cancel()
				_, err := p.Run()
				return err
			})

			if watch {
				g.Go(func() error {
					return watchConfig(ctx, logger, opts.configPath, func() (*Config, error) {
						return opts.load(cmd, logger)
					}, p.Send)
				})
			}

			return g.Wait()
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the configuration when it changes")
	return cmd
}
