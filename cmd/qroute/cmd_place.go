// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qubitmap/placement"
)

func newPlaceCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Print the initial mapping chosen for a job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.job(input)
			if err != nil {
				return err
			}
			cm, err := doc.Device.Build()
			if err != nil {
				return err
			}
			c, err := doc.Circuit.Build()
			if err != nil {
				return err
			}

			opts := append(a.cfg.PlacementOptions(),
				placement.WithContext(cmd.Context()),
				placement.WithLogger(a.logger))
			res, err := placement.Place(cm, c, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# score %d, %d candidates, %d pruned\n", res.Score, res.Candidates, res.Pruned)
			for _, p := range res.Pairs {
				fmt.Fprintf(out, "%d %d\n", p.Logical, p.Physical)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "job file (YAML)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
