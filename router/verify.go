// SPDX-License-Identifier: MIT
// Package: qubitmap/router
//
// verify.go — postcondition check of a routed circuit.
//
// Verify replays res.Circuit from res.Initial, applying every inserted swap
// to a scratch layout, and checks:
//   • every two-qubit operation acts on adjacent sites;
//   • mapped back to logical qubits, each qubit sees the same operations in
//     the same order as in the input;
//   • the replayed layout equals res.Final;
//   • under ClbitDeclared every measurement keeps its logical qubit and its
//     classical bit, as part of the per-qubit sequence;
//   • under ClbitByLayout every measurement writes the classical bit of the
//     logical qubit on the measured site, unless that qubit is an ancilla or
//     lies outside the classical register (the fallback path).

package router

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
)

// Verify checks res against the input circuit in and the device cm.
//
// Errors: ErrPrecondition for nil or mismatched arguments, ErrVerification
// for a violated postcondition.
func Verify(cm *coupling.Map, in *circuit.Circuit, res *Result) error {
	if cm == nil || in == nil || res == nil || res.Circuit == nil || res.Initial == nil || res.Final == nil {
		return fmt.Errorf("Verify: nil input: %w", ErrPrecondition)
	}
	if res.Circuit.NumQubits() != cm.Size() || res.Initial.NumPhysical() != cm.Size() {
		return fmt.Errorf("Verify: output over %d qubits, device %d: %w",
			res.Circuit.NumQubits(), cm.Size(), ErrPrecondition)
	}

	byLayout := res.Clbits == ClbitByLayout
	want := make([][]string, in.NumQubits())
	measures := 0
	for i := range in.Ops {
		op := &in.Ops[i]
		if byLayout && op.Kind == circuit.KindMeasure {
			measures++
			continue
		}
		sig := signature(op, op.Qubits)
		for _, q := range op.Qubits {
			want[q] = append(want[q], sig)
		}
	}

	cur := res.Initial.Clone()
	got := make([][]string, in.NumQubits())
	for i := range res.Circuit.Ops {
		op := &res.Circuit.Ops[i]
		if op.Kind == circuit.KindTwo && !cm.Adjacent(op.Qubits[0], op.Qubits[1]) {
			return fmt.Errorf("Verify: op %d %s on sites %v not adjacent: %w", i, op.Name, op.Qubits, ErrVerification)
		}
		if op.Inserted {
			if err := cur.Swap(op.Qubits[0], op.Qubits[1]); err != nil {
				return fmt.Errorf("Verify: op %d: %v: %w", i, err, ErrVerification)
			}
			continue
		}
		if byLayout && op.Kind == circuit.KindMeasure {
			if len(op.Qubits) != 1 || len(op.Clbits) != 1 {
				return fmt.Errorf("Verify: op %d malformed measurement: %w", i, ErrVerification)
			}
			q := cur.Logical(op.Qubits[0])
			if q >= 0 && !cur.IsAncilla(q) && q < in.NumClbits() && op.Clbits[0] != q {
				return fmt.Errorf("Verify: op %d measures logical %d on site %d into clbit %d: %w",
					i, q, op.Qubits[0], op.Clbits[0], ErrVerification)
			}
			measures--
			continue
		}

		logical := make([]int, len(op.Qubits))
		for k, p := range op.Qubits {
			q := cur.Logical(p)
			if q < 0 || cur.IsAncilla(q) {
				return fmt.Errorf("Verify: op %d %s touches site %d holding ancilla %d: %w", i, op.Name, p, q, ErrVerification)
			}
			logical[k] = q
		}
		sig := signature(op, logical)
		for _, q := range logical {
			got[q] = append(got[q], sig)
		}
	}

	if measures != 0 {
		return fmt.Errorf("Verify: measurement count off by %d: %w", measures, ErrVerification)
	}
	for q := range want {
		if !slices.Equal(want[q], got[q]) {
			return fmt.Errorf("Verify: qubit %d order differs: want %v, got %v: %w", q, want[q], got[q], ErrVerification)
		}
	}
	if !cur.Equal(res.Final) {
		return fmt.Errorf("Verify: replayed %v, final %v: %w", cur, res.Final, ErrVerification)
	}

	return nil
}

// signature renders an operation on the given qubits, e.g. "cx(0,2)",
// "rz[0.5](1)" or "measure(1)->0".
func signature(op *circuit.Operation, qubits []int) string {
	var b strings.Builder
	b.WriteString(op.Name)
	if len(op.Params) > 0 {
		b.WriteByte('[')
		for i, v := range op.Params {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte(']')
	}
	b.WriteByte('(')
	for i, q := range qubits {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(q))
	}
	b.WriteByte(')')
	for _, c := range op.Clbits {
		b.WriteString("->")
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}
