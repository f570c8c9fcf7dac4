// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/lrstanley/x/charm/flow"
)

const (
	defaultWidth      = 60
	defaultForeground = "#FFFFFF"
	defaultBackground = "#5A56E0"
)

var defaultChips = []string{
	"go", "rust", "zig", "typescript", "python", "c", "haskell",
	"ocaml", "lua", "elixir", "kotlin", "swift", "ruby", "nim",
}

// Style controls how each chip is drawn.
type Style struct {
	Border     bool   `toml:"border"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Config describes a chip cloud. It's loaded from a TOML file, with defaults
// for anything the file leaves out.
type Config struct {
	Align      flow.Alignment `toml:"align"`
	Width      int            `toml:"width"`
	Height     int            `toml:"height"` // 0 is unbounded.
	HeightMode flow.Mode      `toml:"height_mode"`
	Spacing    flow.Spacing   `toml:"spacing"`
	Padding    flow.Padding   `toml:"padding"`
	Chips      []string       `toml:"chips"`
	Style      Style          `toml:"style"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Align:      flow.Center,
		Width:      defaultWidth,
		HeightMode: flow.AtMost,
		Spacing:    flow.Spacing{Horizontal: 1},
		Padding:    flow.Padding{Right: 1, Left: 1},
		Chips:      append([]string(nil), defaultChips...),
		Style: Style{
			Border:     true,
			Foreground: defaultForeground,
			Background: defaultBackground,
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults. Unknown keys are logged and ignored.
func LoadConfig(logger *slog.Logger, path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		logger.Warn("ignoring unknown config key", "path", path, "key", key.String())
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	logger.Debug("loaded config", "path", path, "chips", len(cfg.Chips), "align", cfg.Align)
	return cfg, nil
}

// Validate checks that the configuration describes a layout which can be
// resolved.
func (c *Config) Validate() error {
	var errs []error

	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height < 0 {
		errs = append(errs, fmt.Errorf("height must not be negative, got %d", c.Height))
	}
	if c.HeightMode == flow.Exact && c.Height == 0 {
		errs = append(errs, errors.New("height_mode exact requires a height"))
	}
	if c.Spacing.Horizontal < 0 || c.Spacing.Vertical < 0 {
		errs = append(errs, fmt.Errorf("spacing must not be negative, got %+v", c.Spacing))
	}
	if c.Padding.Top < 0 || c.Padding.Right < 0 || c.Padding.Bottom < 0 || c.Padding.Left < 0 {
		errs = append(errs, fmt.Errorf("padding must not be negative, got %+v", c.Padding))
	}
	if c.Padding.Horizontal() >= c.Width && c.Width > 0 {
		errs = append(errs, fmt.Errorf("padding %d leaves no room within width %d", c.Padding.Horizontal(), c.Width))
	}

	return errors.Join(errs...)
}
