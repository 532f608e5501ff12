// SPDX-License-Identifier: MIT
// Package: qubitmap/circuit
//
// types.go — Kind, Operation, Register, Circuit and sentinel errors.

package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction and validation.
var (
	// ErrQubitOutOfRange indicates an operand outside [0, NumQubits()).
	ErrQubitOutOfRange = errors.New("circuit: qubit out of range")

	// ErrClbitOutOfRange indicates a classical operand outside [0, NumClbits()).
	ErrClbitOutOfRange = errors.New("circuit: classical bit out of range")

	// ErrArity indicates an operand count that does not fit the operation kind.
	ErrArity = errors.New("circuit: operand count does not match kind")

	// ErrDuplicateQubit indicates the same qubit appears twice in one operation.
	ErrDuplicateQubit = errors.New("circuit: duplicate qubit operand")

	// ErrBadRegister indicates a negative or unnamed register.
	ErrBadRegister = errors.New("circuit: invalid register")
)

// Kind discriminates operations by how routing must treat them.
type Kind uint8

const (
	KindSingle Kind = iota
	KindTwo
	KindBarrier
	KindMeasure
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindTwo:
		return "two"
	case KindBarrier:
		return "barrier"
	case KindMeasure:
		return "measure"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Operation names that carry meaning beyond their Kind.
const (
	NameSwap    = "swap"
	NameMeasure = "measure"
	NameBarrier = "barrier"
	NameCX      = "cx"
)

// Operation is one instruction of a circuit.
type Operation struct {
	// Name is the gate mnemonic, e.g. "h", "cx", "rz".
	Name string

	// Kind selects routing behaviour.
	Kind Kind

	// Qubits are flat qubit indices; order is significant (control first for cx).
	Qubits []int

	// Clbits are flat classical-bit indices; used by KindMeasure only.
	Clbits []int

	// Params are gate angles, written verbatim by WriteQASM.
	Params []float64

	// Inserted is true for swaps added by routing.
	Inserted bool
}

// Clone returns a deep copy of op.
func (op Operation) Clone() Operation {
	out := op
	out.Qubits = append([]int(nil), op.Qubits...)
	out.Clbits = append([]int(nil), op.Clbits...)
	out.Params = append([]float64(nil), op.Params...)

	return out
}

// Register is a named, contiguous block of flat indices.
type Register struct {
	Name string
	Size int
}

// Circuit is a register layout plus an ordered list of operations.
//
// Qubit i belongs to the register whose cumulative range contains i, in
// QRegs order; the same holds for classical bits and CRegs.
type Circuit struct {
	QRegs []Register
	CRegs []Register
	Ops   []Operation
}

// Default register names used by New and EmptyLike.
const (
	DefaultQReg = "q"
	DefaultCReg = "c"
)
