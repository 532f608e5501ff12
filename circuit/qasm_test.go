package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubitmap/circuit"
)

func TestQASM(t *testing.T) {
	c, err := circuit.New(3, 1)
	require.NoError(t, err)
	require.NoError(t, c.Gate1("rz", 0, 0.5))
	require.NoError(t, c.CX(0, 2))
	require.NoError(t, c.Barrier(0, 1))
	require.NoError(t, c.Measure(2, 0))

	got, err := c.QASM()
	require.NoError(t, err)
	want := `OPENQASM 2.0;
include "qelib1.inc";
qreg q[3];
creg c[1];
rz(0.5) q[0];
cx q[0],q[2];
barrier q[0],q[1];
measure q[2] -> c[0];
`
	assert.Equal(t, want, got)
}

func TestQASM_MultipleRegisters(t *testing.T) {
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "a", Size: 1}, {Name: "b", Size: 2}},
		Ops:   []circuit.Operation{{Name: "cz", Kind: circuit.KindTwo, Qubits: []int{0, 2}}},
	}
	got, err := c.QASM()
	require.NoError(t, err)
	assert.Contains(t, got, "cz a[0],b[1];")
}
