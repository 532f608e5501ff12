// SPDX-License-Identifier: MIT

package placement_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/layout"
	"github.com/katalvlaran/qubitmap/placement"
	"github.com/katalvlaran/qubitmap/topology"
)

// chain returns cx(0,1), cx(1,2), ..., cx(n-2,n-1).
func chain(t *testing.T, n int) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(n, 0)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, c.CX(i, i+1))
	}

	return c
}

// randomCircuit returns ops two-qubit gates between random distinct qubits.
func randomCircuit(t *testing.T, rng *rand.Rand, n, ops int) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(n, 0)
	require.NoError(t, err)
	for i := 0; i < ops; i++ {
		a := rng.Intn(n)
		b := (a + 1 + rng.Intn(n-1)) % n
		require.NoError(t, c.CX(a, b))
		if rng.Intn(3) == 0 {
			require.NoError(t, c.Gate1("h", a))
		}
	}

	return c
}

func build(t *testing.T, cons ...topology.Constructor) *coupling.Map {
	t.Helper()
	cm, err := topology.Build(cons...)
	require.NoError(t, err)

	return cm
}

func TestPlace_Errors(t *testing.T) {
	cm := build(t, topology.Line(3))

	_, err := placement.Place(nil, chain(t, 2))
	assert.ErrorIs(t, err, placement.ErrNilInput)

	_, err = placement.Place(cm, chain(t, 4))
	assert.ErrorIs(t, err, placement.ErrCapacity)

	_, err = placement.Place(cm, chain(t, 2), placement.WithBeamWidth(0))
	assert.ErrorIs(t, err, placement.ErrOptionViolation)
}

func TestPlace_CompleteDeviceShortcut(t *testing.T) {
	cm := build(t, topology.Full(3))
	c, err := circuit.New(3, 0)
	require.NoError(t, err)
	require.NoError(t, c.CX(2, 0))
	require.NoError(t, c.CX(1, 2))
	require.NoError(t, c.CX(0, 1))

	res, err := placement.Place(cm, c)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, 1, res.Candidates)
	assert.Zero(t, res.Pruned)
	assert.Equal(t, []layout.Pair{{Logical: 0, Physical: 0}, {Logical: 1, Physical: 1}, {Logical: 2, Physical: 2}}, res.Pairs)
}

func TestPlace_CompleteDeviceLargerThanCircuit(t *testing.T) {
	res, err := placement.Place(build(t, topology.Full(5)), chain(t, 3))
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, []layout.Pair{{Logical: 0, Physical: 0}, {Logical: 1, Physical: 1}, {Logical: 2, Physical: 2}}, res.Pairs)
}

// TestPlace_LineChain walks the branching search by hand:
// seed 1→1; q2 ties on sites 0 and 2; the branch 2→2 later scores 6 vs 5.
func TestPlace_LineChain(t *testing.T) {
	res, err := placement.Place(build(t, topology.Line(4)), chain(t, 4))
	require.NoError(t, err)

	want := []layout.Pair{{Logical: 1, Physical: 1}, {Logical: 2, Physical: 2}, {Logical: 0, Physical: 0}, {Logical: 3, Physical: 3}}
	if diff := cmp.Diff(want, res.Pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(6), res.Score)
	assert.Equal(t, 2, res.Candidates)
	assert.Zero(t, res.Pruned)
}

func TestPlace_BeamWidthOne(t *testing.T) {
	res, err := placement.Place(build(t, topology.Line(4)), chain(t, 4), placement.WithBeamWidth(1))
	require.NoError(t, err)

	assert.Equal(t, []layout.Pair{{Logical: 1, Physical: 1}, {Logical: 2, Physical: 0}, {Logical: 0, Physical: 2}, {Logical: 3, Physical: 3}}, res.Pairs)
	assert.Equal(t, int64(5), res.Score)
	assert.Equal(t, 1, res.Candidates)
	assert.Equal(t, 1, res.Pruned)
}

func TestPlace_RingCrossPairs(t *testing.T) {
	c, err := circuit.New(4, 0)
	require.NoError(t, err)
	require.NoError(t, c.CX(0, 2))
	require.NoError(t, c.CX(1, 3))

	cm := build(t, topology.Ring(4))
	res, err := placement.Place(cm, c)
	require.NoError(t, err)
	assert.Equal(t, []layout.Pair{{Logical: 0, Physical: 0}, {Logical: 1, Physical: 1}, {Logical: 2, Physical: 3}, {Logical: 3, Physical: 2}}, res.Pairs)
	assert.Equal(t, int64(3), res.Score)

	l, err := res.Layout(cm.Size())
	require.NoError(t, err)
	assert.True(t, cm.Adjacent(l.Physical(0), l.Physical(2)))
	assert.True(t, cm.Adjacent(l.Physical(1), l.Physical(3)))
}

func TestPlace_NoTwoQubitOps(t *testing.T) {
	c, err := circuit.New(3, 0)
	require.NoError(t, err)
	require.NoError(t, c.Gate1("h", 2))

	// star hub 0 has the highest degree; the rest fill leaves in id order
	res, err := placement.Place(build(t, topology.Star(4)), c)
	require.NoError(t, err)
	assert.Equal(t, []layout.Pair{{Logical: 0, Physical: 0}, {Logical: 1, Physical: 1}, {Logical: 2, Physical: 2}}, res.Pairs)
	assert.Zero(t, res.Score)
}

func TestPlace_EmptyCircuit(t *testing.T) {
	c, err := circuit.New(0, 0)
	require.NoError(t, err)
	res, err := placement.Place(build(t, topology.Line(2)), c)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
}

// TestPlace_Bijection checks the output contract on assorted devices and circuits.
func TestPlace_Bijection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	devices := map[string]*coupling.Map{
		"line10":   build(t, topology.Line(10)),
		"grid3x3":  build(t, topology.Grid(3, 3)),
		"rings3x4": build(t, topology.Distributed(3, 1, topology.Ring(4))),
		"tvert2":   build(t, topology.Distributed(2, 3, topology.TShape())),
	}
	for name, cm := range devices {
		for trial := 0; trial < 5; trial++ {
			n := 2 + rng.Intn(cm.Size()-1)
			c := randomCircuit(t, rng, n, 3*n)

			res, err := placement.Place(cm, c, placement.WithBeamWidth(8))
			require.NoError(t, err, name)
			require.Len(t, res.Pairs, n, name)

			_, err = res.Layout(cm.Size())
			require.NoError(t, err, "%s trial %d: %v", name, trial, res.Pairs)
			assert.LessOrEqual(t, res.Candidates, 8)
		}
	}
}

func TestPlace_Deterministic(t *testing.T) {
	cm := build(t, topology.Grid(3, 3))
	c := randomCircuit(t, rand.New(rand.NewSource(1)), 7, 20)

	first, err := placement.Place(cm, c)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := placement.Place(cm, c)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPlace_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := placement.Place(build(t, topology.Line(4)), chain(t, 4), placement.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
