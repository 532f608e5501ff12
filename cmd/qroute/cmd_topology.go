// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qubitmap/internal/document"
)

func newTopologyCmd() *cobra.Command {
	var d document.Device
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Print the edges of a generated device",
		Long: `Build a device from a named layout and print one edge per line.

Kinds: line, ring, full, star (--qubits), grid (--rows, --cols), tshape.
With --groups > 1 the layout is repeated and consecutive copies are bridged
--link sites apart.

Examples:
  qroute topology --kind ring --qubits 5 --groups 2
  qroute topology --kind tshape --groups 3 --link 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cm, err := d.Build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %d qubits, %d edges\n", cm.Size(), cm.EdgeCount())
			for _, e := range cm.Edges() {
				fmt.Fprintf(out, "%d %d\n", e.A, e.B)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&d.Kind, "kind", document.KindLine, "layout kind")
	f.IntVar(&d.Qubits, "qubits", 0, "qubits per copy for line, ring, full and star")
	f.IntVar(&d.Rows, "rows", 0, "grid rows")
	f.IntVar(&d.Cols, "cols", 0, "grid columns")
	f.IntVar(&d.Groups, "groups", 1, "number of chained copies")
	f.IntVar(&d.Link, "link", 1, "bridge offset between copies")

	return cmd
}
