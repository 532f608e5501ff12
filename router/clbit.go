// SPDX-License-Identifier: MIT
// Package: qubitmap/router
//
// clbit.go — classical-bit resolution for measurements.

package router

import (
	"fmt"

	"github.com/katalvlaran/qubitmap/layout"
)

// ResolveClbit returns the classical bit a measurement of logical qubit q
// writes under ClbitByLayout. The measurement itself is emitted on q's
// initial site, so in the first step the site and the classical bit refer
// to the same logical qubit.
//
// The first step reads the logical qubit now sitting on q's initial site:
//
//	naive = current.Logical(initial.Physical(q))
//
// If naive is a valid classical bit it is returned with fallback=false.
// Otherwise naive is taken as a site and resolved once more:
//
//	second = current.Logical(naive)
//
// which is returned with fallback=true when valid. If both steps fall outside
// [0, numClbits) the result is ErrClbitUnresolved.
//
// With no swaps applied both layouts agree and the result is q itself.
func ResolveClbit(q int, initial, current *layout.Layout, numClbits int) (clbit int, fallback bool, err error) {
	if initial == nil || current == nil {
		return -1, false, fmt.Errorf("ResolveClbit: nil layout: %w", ErrPrecondition)
	}
	site := initial.Physical(q)
	if site < 0 {
		return -1, false, fmt.Errorf("ResolveClbit: qubit %d not in layout: %w", q, ErrPrecondition)
	}

	naive := current.Logical(site)
	if naive >= 0 && naive < numClbits {
		return naive, false, nil
	}

	second := current.Logical(naive)
	if second >= 0 && second < numClbits {
		return second, true, nil
	}

	return -1, true, fmt.Errorf("ResolveClbit: qubit %d: steps gave %d then %d, %d clbits: %w",
		q, naive, second, numClbits, ErrClbitUnresolved)
}
