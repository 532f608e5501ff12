// SPDX-License-Identifier: MIT

package transpile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/layout"
	"github.com/katalvlaran/qubitmap/placement"
	"github.com/katalvlaran/qubitmap/router"
	"github.com/katalvlaran/qubitmap/topology"
	"github.com/katalvlaran/qubitmap/transpile"
)

func ring4(t *testing.T) *coupling.Map {
	t.Helper()
	cm, err := topology.Build(topology.Ring(4))
	require.NoError(t, err)

	return cm
}

func crossPairs(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(4, 0)
	require.NoError(t, err)
	require.NoError(t, c.CX(0, 2))
	require.NoError(t, c.CX(1, 3))

	return c
}

func TestRun_PlacementAvoidsSwaps(t *testing.T) {
	cm, c := ring4(t), crossPairs(t)

	res, err := transpile.Run(context.Background(), cm, c, transpile.Options{Verify: true})
	require.NoError(t, err)
	require.NotNil(t, res.Placement)
	assert.Equal(t, []layout.Pair{{Logical: 0, Physical: 0}, {Logical: 1, Physical: 1}, {Logical: 2, Physical: 3}, {Logical: 3, Physical: 2}}, res.Placement.Pairs)
	assert.Zero(t, res.Routed.Swaps)
	assert.Equal(t, 2, res.Circuit().Len())
}

func TestRun_TrivialNeedsSwap(t *testing.T) {
	cm, c := ring4(t), crossPairs(t)

	res, err := transpile.Run(context.Background(), cm, c, transpile.Options{Trivial: true, Verify: true})
	require.NoError(t, err)
	assert.Nil(t, res.Placement)
	assert.Equal(t, 1, res.Routed.Swaps)
	assert.Equal(t, []layout.Pair{{Logical: 0, Physical: 0}, {Logical: 1, Physical: 1}, {Logical: 2, Physical: 2}, {Logical: 3, Physical: 3}}, res.Routed.Initial.Pairs())
}

func TestRun_Errors(t *testing.T) {
	cm := ring4(t)

	_, err := transpile.Run(context.Background(), nil, crossPairs(t), transpile.Options{})
	assert.ErrorIs(t, err, transpile.ErrNilInput)

	big, err := circuit.New(5, 0)
	require.NoError(t, err)
	_, err = transpile.Run(context.Background(), cm, big, transpile.Options{})
	assert.ErrorIs(t, err, transpile.ErrCapacity)

	_, err = transpile.Run(context.Background(), cm, crossPairs(t), transpile.Options{
		Placement: []placement.Option{placement.WithBeamWidth(0)},
	})
	assert.ErrorIs(t, err, placement.ErrOptionViolation)

	_, err = transpile.Run(context.Background(), cm, crossPairs(t), transpile.Options{
		Trivial: true,
		Router:  []router.Option{router.WithMaxAttempts(0)},
	})
	assert.ErrorIs(t, err, router.ErrOptionViolation)
}

func TestApplyLayout(t *testing.T) {
	cm := ring4(t)
	c, err := circuit.New(2, 0)
	require.NoError(t, err)

	l, err := transpile.ApplyLayout(cm, c, []layout.Pair{{Logical: 0, Physical: 3}, {Logical: 1, Physical: 1}})
	require.NoError(t, err)
	assert.Equal(t, 4, l.NumPhysical())
	assert.Equal(t, 3, l.Physical(0))
	assert.True(t, l.IsAncilla(l.Logical(0)))

	_, err = transpile.ApplyLayout(cm, c, []layout.Pair{{Logical: 0, Physical: 3}, {Logical: 1, Physical: 3}})
	assert.ErrorIs(t, err, layout.ErrNotBijection)

	big, err := circuit.New(6, 0)
	require.NoError(t, err)
	_, err = transpile.ApplyLayout(cm, big, nil)
	assert.ErrorIs(t, err, transpile.ErrCapacity)
}

func TestRun_GridEndToEnd(t *testing.T) {
	cm, err := topology.Build(topology.Grid(3, 3))
	require.NoError(t, err)
	c, err := circuit.New(9, 9)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		require.NoError(t, c.Gate1("h", i))
	}
	for i := 0; i < 9; i++ {
		require.NoError(t, c.CX(i, (i+4)%9))
	}
	require.NoError(t, c.Barrier())
	for i := 0; i < 9; i++ {
		require.NoError(t, c.Measure(i, i))
	}

	res, err := transpile.Run(context.Background(), cm, c, transpile.Options{
		Verify: true,
		Router: []router.Option{router.WithClbitPolicy(router.ClbitDeclared)},
	})
	require.NoError(t, err)
	assert.Equal(t, c.Len(), res.Circuit().Len()-res.Routed.Swaps)
	require.NoError(t, res.Routed.Final.Validate())
}
