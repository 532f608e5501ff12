// SPDX-License-Identifier: MIT
// Package: qubitmap/circuit
//
// layers.go — as-soon-as-possible layer decomposition.
//
// Each operation is placed at one plus the deepest layer already holding an
// operation on any of its wires (qubits and classical bits), so:
//   • operations touching a common wire keep their relative order across layers;
//   • no two operations in one layer share a wire;
//   • inside a layer, operations appear in ascending Ops index.
//
// Complexity: O(Σ|operands|) time, O(NumQubits+NumClbits+len(Ops)) space.

package circuit

// Layers returns the ASAP decomposition of c as lists of Ops indices.
// An empty circuit has no layers.
func (c *Circuit) Layers() [][]int {
	next := make([]int, c.NumQubits()+c.NumClbits())
	clOff := c.NumQubits()

	var layers [][]int
	for i := range c.Ops {
		op := &c.Ops[i]
		depth := 0
		for _, q := range op.Qubits {
			depth = max(depth, next[q])
		}
		for _, cl := range op.Clbits {
			depth = max(depth, next[clOff+cl])
		}

		for _, q := range op.Qubits {
			next[q] = depth + 1
		}
		for _, cl := range op.Clbits {
			next[clOff+cl] = depth + 1
		}

		for len(layers) <= depth {
			layers = append(layers, nil)
		}
		layers[depth] = append(layers[depth], i)
	}

	return layers
}

// Order returns every Ops index, layer by layer.
func (c *Circuit) Order() []int {
	out := make([]int, 0, len(c.Ops))
	for _, layer := range c.Layers() {
		out = append(out, layer...)
	}

	return out
}

// TwoQubitOps returns the indices of KindTwo operations in Order.
func (c *Circuit) TwoQubitOps() []int {
	var out []int
	for _, idx := range c.Order() {
		if c.Ops[idx].Kind == KindTwo {
			out = append(out, idx)
		}
	}

	return out
}
