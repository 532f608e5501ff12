// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ringJob = `
device: {kind: ring, qubits: 4}
circuit:
  qubits: 4
  clbits: 4
  ops:
    - {gate: cx, qubits: [0, 2]}
    - {gate: cx, qubits: [1, 3]}
    - {gate: measure, qubits: [0], clbits: [0]}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestTopologyCmd(t *testing.T) {
	out, err := execute(t, "topology", "--kind", "ring", "--qubits", "4")
	require.NoError(t, err)
	assert.Equal(t, "# 4 qubits, 4 edges\n0 1\n0 3\n1 2\n2 3\n", out)

	out, err = execute(t, "topology", "--kind", "ring", "--qubits", "3", "--groups", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "# 6 qubits, 7 edges\n")
	assert.Contains(t, out, "\n2 3\n")

	_, err = execute(t, "topology", "--kind", "torus", "--qubits", "3")
	assert.Error(t, err)
}

func TestPlaceCmd(t *testing.T) {
	job := writeFile(t, "job.yaml", ringJob)

	out, err := execute(t, "place", "-i", job)
	require.NoError(t, err)
	assert.Equal(t, "# score 3, 1 candidates, 0 pruned\n0 0\n1 1\n2 3\n3 2\n", out)
}

func TestRouteCmd(t *testing.T) {
	job := writeFile(t, "job.yaml", ringJob)
	qasm := filepath.Join(t.TempDir(), "out.qasm")

	out, err := execute(t, "route", "-i", job, "-o", qasm, "--verify", "--trivial")
	require.NoError(t, err)
	assert.Contains(t, out, "swaps")

	data, err := os.ReadFile(qasm)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "OPENQASM 2.0;\n"))
	assert.Contains(t, text, "qreg q[4];")
	assert.Contains(t, text, "swap q[0],q[1];")
	assert.Contains(t, text, "measure q[1] -> c[0];")
}

func TestRouteCmd_ConfigAndStdout(t *testing.T) {
	job := writeFile(t, "job.yaml", ringJob)
	cfg := writeFile(t, "qroute.yaml", "router:\n  clbit_policy: layout\n  verify: true\nlog:\n  level: error\n")

	out, err := execute(t, "route", "-i", job, "-c", cfg, "--trivial")
	require.NoError(t, err)
	assert.Contains(t, out, "OPENQASM 2.0;")
	assert.Contains(t, out, "measure q[0] -> c[1];")

	bad := writeFile(t, "bad.yaml", "router:\n  max_attempts: 0\n")
	_, err = execute(t, "route", "-i", job, "-c", bad)
	assert.Error(t, err)
}

func TestRouteCmd_MissingInput(t *testing.T) {
	_, err := execute(t, "route")
	assert.Error(t, err)

	_, err = execute(t, "route", "-i", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
