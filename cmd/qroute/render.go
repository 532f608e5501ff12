// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/transpile"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// renderSummary returns a boxed report of one routing run.
func renderSummary(name string, in *circuit.Circuit, cm *coupling.Map, res *transpile.Result) string {
	rows := [][2]string{
		{"device", fmt.Sprintf("%d qubits, %d edges", cm.Size(), cm.EdgeCount())},
		{"circuit", fmt.Sprintf("%d qubits, %d ops, %d two-qubit", in.NumQubits(), in.Len(), in.CountKind(circuit.KindTwo))},
		{"initial", res.Routed.Initial.String()},
		{"final", res.Routed.Final.String()},
		{"layers", fmt.Sprint(res.Routed.Layers)},
		{"swaps", fmt.Sprint(res.Routed.Swaps)},
	}
	if res.Placement != nil {
		rows = append(rows, [2]string{"placement", fmt.Sprintf("score %d, %d pruned", res.Placement.Score, res.Placement.Pruned)})
	}

	lines := []string{titleStyle.Render(name)}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}
