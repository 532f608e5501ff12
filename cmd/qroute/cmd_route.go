// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qubitmap/transpile"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		input   string
		output  string
		verify  bool
		trivial bool
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Place and route a job, writing OpenQASM",
		Long: `Place the job's circuit on its device, insert swaps so every two-qubit
gate acts on neighbouring qubits, and write the result as OpenQASM 2.0.

The summary goes to stdout; the circuit goes to --output, or to stdout
after the summary when --output is empty.

Examples:
  qroute route -i job.yaml
  qroute route -i job.yaml -c qroute.yaml -o out.qasm --verify`,
		Args: cobra.NoArgs,
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
			ropts, err := a.cfg.RouterOptions()
			if err != nil {
				return err
			}

			res, err := transpile.Run(cmd.Context(), cm, c, transpile.Options{
				Placement: a.cfg.PlacementOptions(),
				Router:    ropts,
				Trivial:   trivial,
				Verify:    verify || a.cfg.Router.Verify,
				Logger:    a.logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(input, c, cm, res))
			if output == "" {
				return res.Circuit().WriteQASM(out)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err = res.Circuit().WriteQASM(f); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "job file (YAML)")
	f.StringVarP(&output, "output", "o", "", "OpenQASM output file")
	f.BoolVar(&verify, "verify", false, "check adjacency and per-qubit order of the result")
	f.BoolVar(&trivial, "trivial", false, "skip placement and start from the identity mapping")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
