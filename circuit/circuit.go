// SPDX-License-Identifier: MIT
// Package: qubitmap/circuit
//
// circuit.go — construction, validation and simple queries.
//
// Contract:
//   • Append validates an Operation completely before storing a deep copy of it.
//   • Helpers (Gate1, CX, Measure, ...) fill Kind and delegate to Append.
//   • Nothing here reorders operations; ordering is Layers/Order's job.

package circuit

import "fmt"

// New returns an empty circuit with a single qubit register "q" of size
// numQubits and, when numClbits > 0, a single classical register "c".
func New(numQubits, numClbits int) (*Circuit, error) {
	if numQubits < 0 || numClbits < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", numQubits, numClbits, ErrBadRegister)
	}
	c := &Circuit{QRegs: []Register{{Name: DefaultQReg, Size: numQubits}}}
	if numClbits > 0 {
		c.CRegs = []Register{{Name: DefaultCReg, Size: numClbits}}
	}

	return c, nil
}

// EmptyLike returns a circuit with no operations, a single qubit register of
// size numQubits and a copy of c's classical registers.
func (c *Circuit) EmptyLike(numQubits int) *Circuit {
	return &Circuit{
		QRegs: []Register{{Name: DefaultQReg, Size: numQubits}},
		CRegs: append([]Register(nil), c.CRegs...),
	}
}

// NumQubits returns the total size of all qubit registers.
func (c *Circuit) NumQubits() int { return sumSizes(c.QRegs) }

// NumClbits returns the total size of all classical registers.
func (c *Circuit) NumClbits() int { return sumSizes(c.CRegs) }

// Len returns the number of operations.
func (c *Circuit) Len() int { return len(c.Ops) }

// CountKind returns how many operations have kind k.
func (c *Circuit) CountKind(k Kind) int {
	n := 0
	for i := range c.Ops {
		if c.Ops[i].Kind == k {
			n++
		}
	}

	return n
}

// CountInserted returns how many operations were added by routing.
func (c *Circuit) CountInserted() int {
	n := 0
	for i := range c.Ops {
		if c.Ops[i].Inserted {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of c.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{
		QRegs: append([]Register(nil), c.QRegs...),
		CRegs: append([]Register(nil), c.CRegs...),
		Ops:   make([]Operation, len(c.Ops)),
	}
	for i := range c.Ops {
		out.Ops[i] = c.Ops[i].Clone()
	}

	return out
}

// Append validates op against c's registers and appends a copy of it.
//
// Errors: ErrArity, ErrQubitOutOfRange, ErrClbitOutOfRange, ErrDuplicateQubit.
func (c *Circuit) Append(op Operation) error {
	if err := c.check(op); err != nil {
		return fmt.Errorf("Append(%s): %w", op.Name, err)
	}
	c.Ops = append(c.Ops, op.Clone())

	return nil
}

// Gate1 appends a single-qubit gate.
func (c *Circuit) Gate1(name string, q int, params ...float64) error {
	return c.Append(Operation{Name: name, Kind: KindSingle, Qubits: []int{q}, Params: params})
}

// Gate2 appends a two-qubit gate.
func (c *Circuit) Gate2(name string, a, b int, params ...float64) error {
	return c.Append(Operation{Name: name, Kind: KindTwo, Qubits: []int{a, b}, Params: params})
}

// CX appends a controlled-X with control a and target b.
func (c *Circuit) CX(a, b int) error { return c.Gate2(NameCX, a, b) }

// Swap appends a swap of a and b.
func (c *Circuit) Swap(a, b int) error { return c.Gate2(NameSwap, a, b) }

// Measure appends a measurement of qubit q into classical bit cl.
func (c *Circuit) Measure(q, cl int) error {
	return c.Append(Operation{Name: NameMeasure, Kind: KindMeasure, Qubits: []int{q}, Clbits: []int{cl}})
}

// Barrier appends a barrier over qs; with no arguments it spans every qubit.
func (c *Circuit) Barrier(qs ...int) error {
	if len(qs) == 0 {
		qs = make([]int, c.NumQubits())
		for i := range qs {
			qs[i] = i
		}
	}

	return c.Append(Operation{Name: NameBarrier, Kind: KindBarrier, Qubits: qs})
}

// Validate checks registers and every operation.
func (c *Circuit) Validate() error {
	for _, regs := range [][]Register{c.QRegs, c.CRegs} {
		for _, r := range regs {
			if r.Name == "" || r.Size < 0 {
				return fmt.Errorf("Validate: register %q size=%d: %w", r.Name, r.Size, ErrBadRegister)
			}
		}
	}
	for i := range c.Ops {
		if err := c.check(c.Ops[i]); err != nil {
			return fmt.Errorf("Validate: op %d (%s): %w", i, c.Ops[i].Name, err)
		}
	}

	return nil
}

// check validates a single operation.
func (c *Circuit) check(op Operation) error {
	nq, nc := len(op.Qubits), len(op.Clbits)
	switch op.Kind {
	case KindSingle:
		if nq != 1 || nc != 0 {
			return fmt.Errorf("%s wants 1 qubit, got %d(+%d clbits): %w", op.Kind, nq, nc, ErrArity)
		}
	case KindTwo:
		if nq != 2 || nc != 0 {
			return fmt.Errorf("%s wants 2 qubits, got %d(+%d clbits): %w", op.Kind, nq, nc, ErrArity)
		}
	case KindBarrier:
		if nq < 1 || nc != 0 {
			return fmt.Errorf("%s wants ≥1 qubit, got %d(+%d clbits): %w", op.Kind, nq, nc, ErrArity)
		}
	case KindMeasure:
		if nq != 1 || nc != 1 {
			return fmt.Errorf("%s wants 1 qubit and 1 clbit, got %d/%d: %w", op.Kind, nq, nc, ErrArity)
		}
	default:
		return fmt.Errorf("unknown %s: %w", op.Kind, ErrArity)
	}

	numQ, numC := c.NumQubits(), c.NumClbits()
	seen := make(map[int]struct{}, nq)
	for _, q := range op.Qubits {
		if q < 0 || q >= numQ {
			return fmt.Errorf("qubit %d not in [0,%d): %w", q, numQ, ErrQubitOutOfRange)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("qubit %d: %w", q, ErrDuplicateQubit)
		}
		seen[q] = struct{}{}
	}
	for _, cl := range op.Clbits {
		if cl < 0 || cl >= numC {
			return fmt.Errorf("clbit %d not in [0,%d): %w", cl, numC, ErrClbitOutOfRange)
		}
	}

	return nil
}

func sumSizes(regs []Register) int {
	n := 0
	for _, r := range regs {
		n += r.Size
	}

	return n
}
