// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package cli

import (
	"fmt"

	"github.com/lrstanley/x/charm/flow/internal/logging"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the chip cloud to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())

			out, err := opts.cfg.Render(-1)
			if err != nil {
				return err
			}

			logger.Debug("rendered chip cloud", "chips", len(opts.cfg.Chips), "align", opts.cfg.Align)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
