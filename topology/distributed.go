// SPDX-License-Identifier: MIT
// Package: qubitmap/topology
//
// distributed.go — chains of identical device blocks.
//
// A distributed device is `groups` copies of one unit layout laid out
// back to back. Copy k (k ≥ 1) starts at base+k·s and is joined to copy k-1
// by a single bridge edge (base+k·s, base+k·s−link). With link=1 the bridge
// joins the first qubit of a copy to the last qubit of its predecessor; the
// vertical T chain uses link=3 to attach below the predecessor's stem.

package topology

import "fmt"

const minGroups = 1

// Distributed returns a Constructor that chains groups copies of unit.
func Distributed(groups, link int, unit Constructor) Constructor {
	return func(b *Builder) error {
		if unit == nil {
			return fmt.Errorf("Distributed: %w", ErrNilConstructor)
		}
		if groups < minGroups {
			return fmt.Errorf("Distributed: groups=%d < min=%d: %w", groups, minGroups, ErrTooFewQubits)
		}

		base := b.Size()
		unitSize := 0
		for k := 0; k < groups; k++ {
			start := b.Size()
			if err := unit(b); err != nil {
				return fmt.Errorf("Distributed: group %d: %w", k, err)
			}
			if k == 0 {
				unitSize = b.Size() - start
				if link < 1 || link > unitSize {
					return fmt.Errorf("Distributed: link=%d not in [1,%d]: %w", link, unitSize, ErrBadLink)
				}
			}
		}

		for k := 1; k < groups; k++ {
			u := base + k*unitSize
			if err := b.Connect(u, u-link); err != nil {
				return fmt.Errorf("Distributed: bridge %d: %w", k, err)
			}
		}

		return nil
	}
}
