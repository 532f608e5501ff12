// SPDX-License-Identifier: MIT
// Package: qubitmap/circuit
//
// qasm.go — OpenQASM 2.0 export.
//
// Output shape:
//
//	OPENQASM 2.0;
//	include "qelib1.inc";
//	qreg q[4];
//	creg c[2];
//	cx q[0],q[1];
//	measure q[1] -> c[0];

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	qasmHeader  = "OPENQASM 2.0;"
	qasmInclude = `include "qelib1.inc";`
)

// WriteQASM writes c as OpenQASM 2.0 to w.
func (c *Circuit) WriteQASM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, qasmHeader)
	fmt.Fprintln(bw, qasmInclude)
	for _, r := range c.QRegs {
		fmt.Fprintf(bw, "qreg %s[%d];\n", r.Name, r.Size)
	}
	for _, r := range c.CRegs {
		fmt.Fprintf(bw, "creg %s[%d];\n", r.Name, r.Size)
	}

	for i := range c.Ops {
		line, err := c.qasmLine(&c.Ops[i])
		if err != nil {
			return fmt.Errorf("WriteQASM: op %d: %w", i, err)
		}
		fmt.Fprintln(bw, line)
	}

	return bw.Flush()
}

// QASM returns c as an OpenQASM 2.0 string.
func (c *Circuit) QASM() (string, error) {
	var sb strings.Builder
	if err := c.WriteQASM(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (c *Circuit) qasmLine(op *Operation) (string, error) {
	var sb strings.Builder
	sb.WriteString(op.Name)
	if len(op.Params) > 0 {
		sb.WriteByte('(')
		for i, p := range op.Params {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(' ')

	for i, q := range op.Qubits {
		qref, err := ref(c.QRegs, q)
		if err != nil {
			return "", fmt.Errorf("qubit %d: %w", q, ErrQubitOutOfRange)
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(qref)
	}

	if op.Kind == KindMeasure {
		cref, err := ref(c.CRegs, op.Clbits[0])
		if err != nil {
			return "", fmt.Errorf("clbit %d: %w", op.Clbits[0], ErrClbitOutOfRange)
		}
		sb.WriteString(" -> ")
		sb.WriteString(cref)
	}
	sb.WriteByte(';')

	return sb.String(), nil
}

// ref resolves a flat index into "reg[i]".
func ref(regs []Register, flat int) (string, error) {
	if flat < 0 {
		return "", ErrQubitOutOfRange
	}
	for _, r := range regs {
		if flat < r.Size {
			return fmt.Sprintf("%s[%d]", r.Name, flat), nil
		}
		flat -= r.Size
	}

	return "", ErrQubitOutOfRange
}
