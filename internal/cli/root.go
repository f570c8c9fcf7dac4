// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package cli implements the flowcloud command-line interface, which lays out
// a cloud of chips using flow layouts.
//
// All commands share a configuration loaded from an optional TOML file, which
// can be overridden with flags:
//
//	flowcloud --config chips.toml --align staggered render
//	flowcloud --width 40 rects --format json
//	flowcloud view --watch --config chips.toml
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lrstanley/x/charm/flow"
	"github.com/lrstanley/x/charm/flow/internal/logging"
	"github.com/spf13/cobra"
)

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose    bool
	configPath string
	width      int
	height     int
	align      string

	cfg *Config
}

// apply overrides values in cfg with any flags that were explicitly set.
func (o *rootOpts) apply(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()

	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("align") {
		align, err := flow.ParseAlignment(o.align)
		if err != nil {
			return err
		}
		cfg.Align = align
	}
	return cfg.Validate()
}

// load reads the configuration and applies flag overrides.
func (o *rootOpts) load(cmd *cobra.Command, logger *slog.Logger) (*Config, error) {
	cfg, err := LoadConfig(logger, o.configPath)
	if err != nil {
		return nil, err
	}

	if err = o.apply(cmd, cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// NewRootCommand creates the flowcloud command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "flowcloud",
		Short:        "Lay out a cloud of chips in wrapping, aligned rows",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(logging.NewHandler(cmd.ErrOrStderr(), opts.verbose))
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			cfg, err := opts.load(cmd, logger)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML chip cloud configuration")
	flags.IntVar(&opts.width, "width", defaultWidth, "width of the chip cloud, in cells")
	flags.IntVar(&opts.height, "height", 0, "height of the chip cloud, in cells (0 is unbounded)")
	flags.StringVar(&opts.align, "align", flow.Center.String(), "row alignment (left, right, center, staggered)")

	root.AddCommand(
		newRenderCmd(opts),
		newRectsCmd(opts),
		newViewCmd(opts),
	)
	return root
}

// Execute runs the flowcloud command tree.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
