package coupling_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubitmap/coupling"
)

// ring4 builds the 4-qubit ring 0-1-2-3-0.
func ring4(t *testing.T) *coupling.Map {
	t.Helper()
	cm, err := coupling.FromEdges(4, []coupling.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	return cm
}

func TestNew_Errors(t *testing.T) {
	_, err := coupling.New(0)
	assert.ErrorIs(t, err, coupling.ErrEmptyMap)

	cm, err := coupling.New(3)
	require.NoError(t, err)
	assert.ErrorIs(t, cm.AddEdge(1, 1), coupling.ErrLoopNotAllowed)
	assert.ErrorIs(t, cm.AddEdge(0, 3), coupling.ErrQubitOutOfRange)
	assert.ErrorIs(t, cm.AddEdge(-1, 0), coupling.ErrQubitOutOfRange)

	_, err = coupling.FromEdges(2, []coupling.Edge{{0, 1}, {1, 5}})
	assert.ErrorIs(t, err, coupling.ErrQubitOutOfRange)
}

func TestAddEdge_SymmetricAndDeduplicated(t *testing.T) {
	cm, err := coupling.New(3)
	require.NoError(t, err)
	require.NoError(t, cm.AddEdge(2, 0))
	require.NoError(t, cm.AddEdge(0, 2))
	require.NoError(t, cm.AddEdge(0, 1))

	assert.Equal(t, 2, cm.EdgeCount())
	assert.Equal(t, []int{1, 2}, cm.Neighbors(0))
	assert.Equal(t, []int{0}, cm.Neighbors(2))
	assert.True(t, cm.Adjacent(2, 0))
	assert.True(t, cm.Adjacent(0, 2))
	assert.False(t, cm.Adjacent(1, 2))
	assert.Equal(t, []coupling.Edge{{0, 1}, {0, 2}}, cm.Edges())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	cm := ring4(t)
	nb := cm.Neighbors(0)
	nb[0] = 99
	assert.Equal(t, []int{1, 3}, cm.Neighbors(0))
	assert.Nil(t, cm.Neighbors(7))
	assert.Equal(t, 0, cm.Degree(7))
}

func TestDistance_Ring(t *testing.T) {
	cm := ring4(t)
	cases := []struct{ a, b, want int }{
		{0, 0, 0}, {0, 1, 1}, {0, 2, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 1},
	}
	for _, tc := range cases {
		got, err := cm.Distance(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "Distance(%d,%d)", tc.a, tc.b)
	}

	d, err := cm.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestDistance_CacheInvalidatedByAddEdge(t *testing.T) {
	cm, err := coupling.FromEdges(3, []coupling.Edge{{0, 1}, {1, 2}})
	require.NoError(t, err)

	d, err := cm.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	require.NoError(t, cm.AddEdge(0, 2))
	d, err = cm.Distance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestDistance_Disconnected(t *testing.T) {
	cm, err := coupling.FromEdges(4, []coupling.Edge{{0, 1}, {2, 3}})
	require.NoError(t, err)

	_, err = cm.Distance(0, 3)
	assert.ErrorIs(t, err, coupling.ErrDisconnected)
	_, err = cm.Distance(0, 9)
	assert.ErrorIs(t, err, coupling.ErrQubitOutOfRange)
	assert.False(t, cm.IsConnected())
	_, err = cm.Diameter()
	assert.ErrorIs(t, err, coupling.ErrDisconnected)

	table := cm.DistanceTable()
	assert.Equal(t, coupling.Unreachable, table[1][2])
	assert.Equal(t, 1, table[2][3])
}

func TestIsComplete(t *testing.T) {
	single, err := coupling.New(1)
	require.NoError(t, err)
	assert.True(t, single.IsComplete())

	assert.False(t, ring4(t).IsComplete())

	k3, err := coupling.FromEdges(3, []coupling.Edge{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	assert.True(t, k3.IsComplete())
}

func TestString(t *testing.T) {
	assert.Equal(t, "coupling.Map{n=4 [0-1 0-3 1-2 2-3]}", ring4(t).String())
}

// TestConcurrentReaders exercises the cache fill under parallel readers.
func TestConcurrentReaders(t *testing.T) {
	cm := ring4(t)
	const readers = 32

	var wg sync.WaitGroup
	results := make([]int, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, _ := cm.Distance(0, 2)
			results[i] = d
		}(i)
	}
	wg.Wait()

	for _, d := range results {
		assert.Equal(t, 2, d)
	}
}
