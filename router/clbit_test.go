// SPDX-License-Identifier: MIT

package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubitmap/layout"
	"github.com/katalvlaran/qubitmap/router"
)

func TestResolveClbit(t *testing.T) {
	swapped := func(n, m int, swaps ...[2]int) *layout.Layout {
		l := trivial(t, n, m)
		for _, s := range swaps {
			require.NoError(t, l.Swap(s[0], s[1]))
		}
		return l
	}

	tests := []struct {
		name      string
		q         int
		initial   *layout.Layout
		current   *layout.Layout
		numClbits int
		want      int
		fallback  bool
		err       error
	}{
		{"untouched", 2, trivial(t, 3, 3), trivial(t, 3, 3), 3, 2, false, nil},
		{"swapped neighbour", 0, trivial(t, 3, 3), swapped(3, 3, [2]int{0, 1}), 3, 1, false, nil},
		// ancilla 3 sits on site 0, so the second step reads site 3
		{"ancilla fallback", 0, trivial(t, 3, 4), swapped(3, 4, [2]int{0, 3}), 3, 0, true, nil},
		{"both steps out of range", 2, trivial(t, 3, 3), trivial(t, 3, 3), 1, -1, true, router.ErrClbitUnresolved},
		{"qubit outside layout", 5, trivial(t, 3, 3), trivial(t, 3, 3), 3, -1, false, router.ErrPrecondition},
		{"nil layout", 0, nil, trivial(t, 3, 3), 3, -1, false, router.ErrPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fallback, err := router.ResolveClbit(tt.q, tt.initial, tt.current, tt.numClbits)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fallback, fallback)
		})
	}
}

func TestParseClbitPolicy(t *testing.T) {
	for in, want := range map[string]router.ClbitPolicy{
		"":         router.ClbitDeclared,
		"layout":   router.ClbitByLayout,
		"declared": router.ClbitDeclared,
	} {
		got, err := router.ParseClbitPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := router.ParseClbitPolicy("physical")
	assert.ErrorIs(t, err, router.ErrOptionViolation)
	assert.Equal(t, "declared", router.ClbitDeclared.String())
	assert.Equal(t, router.ClbitDeclared, router.DefaultOptions().Clbits)
}
