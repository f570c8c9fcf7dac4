// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/lrstanley/x/charm/flow"
	"github.com/lrstanley/x/charm/flow/internal/logging"
	"github.com/spf13/cobra"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// chipRect is the position of a single chip within the cloud.
type chipRect struct {
	Index  int    `yaml:"index"`
	Row    int    `yaml:"row"`
	Label  string `yaml:"label"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// rectsReport is the output of the rects command.
type rectsReport struct {
	Align   flow.Alignment `yaml:"align"`
	Metrics flow.Metrics   `yaml:"metrics"`
	Chips   []chipRect     `yaml:"chips"`
}

// newRectsReport lays out the chip cloud described by cfg.
func newRectsReport(cfg *Config) (*rectsReport, error) {
	m, placements, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	report := &rectsReport{
		Align:   cfg.Align,
		Metrics: m,
		Chips:   make([]chipRect, 0, len(placements)),
	}
	for _, p := range placements {
		report.Chips = append(report.Chips, chipRect{
			Index:  p.Index,
			Row:    p.Row,
			Label:  cfg.Chips[p.Index],
			X:      p.Bounds.Min.X,
			Y:      p.Bounds.Min.Y,
			Width:  p.Bounds.Dx(),
			Height: p.Bounds.Dy(),
		})
	}
	return report, nil
}

// write encodes the report to w in the given format.
func (r *rectsReport) write(w io.Writer, format string) error {
	var opts []yaml.EncodeOption

	switch format {
	case formatYAML:
		opts = append(opts, yaml.Indent(2), yaml.IndentSequence(true))
	case formatJSON:
		opts = append(opts, yaml.JSON())
	default:
		return fmt.Errorf("unsupported format %q (expected %q or %q)", format, formatYAML, formatJSON)
	}

	out, err := yaml.MarshalWithOptions(r, opts...)
	if err != nil {
		return fmt.Errorf("failed to encode placements: %w", err)
	}

	_, err = w.Write(out)
	return err
}

func newRectsCmd(opts *rootOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rects",
		Short: "Print the computed chip placements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())

			report, err := newRectsReport(opts.cfg)
			if err != nil {
				return err
			}

			logger.Debug("computed placements", "rows", report.Metrics.Rows, "height", report.Metrics.Height)
			return report.write(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format (yaml, json)")
	return cmd
}
