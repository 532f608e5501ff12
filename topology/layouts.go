// SPDX-License-Identifier: MIT
// Package: qubitmap/topology
//
// layouts.go — single-block layouts.
//
// Edge emission order (stable):
//   • Line:  i → i+1 for ascending i.
//   • Ring:  Line, then the closing edge (n-1) → 0.
//   • Grid:  for each (r,c) row-major, Right then Bottom.
//   • Full:  (i,j) for i<j, lexicographic.
//   • Star:  0 → i for ascending i.

package topology

import "fmt"

const (
	minLine = 1
	minRing = 3
	minGrid = 1
	minFull = 1
	minStar = 2
)

// tShapeEdges is the 5-qubit T layout used by several early devices.
var tShapeEdges = [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}}

// Line returns a path over n qubits.
func Line(n int) Constructor {
	return func(b *Builder) error {
		if n < minLine {
			return fmt.Errorf("Line: n=%d < min=%d: %w", n, minLine, ErrTooFewQubits)
		}
		off := b.Grow(n)
		for i := 0; i+1 < n; i++ {
			if err := b.Connect(off+i, off+i+1); err != nil {
				return fmt.Errorf("Line: %w", err)
			}
		}

		return nil
	}
}

// Ring returns a cycle over n qubits.
func Ring(n int) Constructor {
	return func(b *Builder) error {
		if n < minRing {
			return fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRing, ErrTooFewQubits)
		}
		off := b.Grow(n)
		for i := 0; i < n; i++ {
			if err := b.Connect(off+i, off+(i+1)%n); err != nil {
				return fmt.Errorf("Ring: %w", err)
			}
		}

		return nil
	}
}

// Grid returns a rows×cols grid; qubit (r,c) has id r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(b *Builder) error {
		if rows < minGrid || cols < minGrid {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGrid, ErrTooFewQubits)
		}
		off := b.Grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := off + r*cols + c
				if c+1 < cols {
					if err := b.Connect(u, u+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := b.Connect(u, u+cols); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// Full returns the complete graph over n qubits.
func Full(n int) Constructor {
	return func(b *Builder) error {
		if n < minFull {
			return fmt.Errorf("Full: n=%d < min=%d: %w", n, minFull, ErrTooFewQubits)
		}
		off := b.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.Connect(off+i, off+j); err != nil {
					return fmt.Errorf("Full: %w", err)
				}
			}
		}

		return nil
	}
}

// Star returns a hub (the block's first id) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(b *Builder) error {
		if n < minStar {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStar, ErrTooFewQubits)
		}
		off := b.Grow(n)
		for i := 1; i < n; i++ {
			if err := b.Connect(off, off+i); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// TShape returns the fixed 5-qubit T layout.
func TShape() Constructor {
	return func(b *Builder) error {
		off := b.Grow(5)
		for _, e := range tShapeEdges {
			if err := b.Connect(off+e[0], off+e[1]); err != nil {
				return fmt.Errorf("TShape: %w", err)
			}
		}

		return nil
	}
}
