// SPDX-License-Identifier: MIT
// Package: qubitmap/interaction
//
// matrix.go — dense square int64 matrix, row-major flat storage.
//
// Contract:
//   • Size n ≥ 0; element (i,j) lives at data[i*n+j].
//   • AddSymmetric keeps the matrix symmetric; Set is not exposed.
//   • At on an out-of-range index reads as 0; writes validate and return errors.

package interaction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfBounds indicates a row or column outside [0, Size()).
var ErrIndexOutOfBounds = errors.New("interaction: index out of bounds")

// ErrBadSize indicates a negative matrix order.
var ErrBadSize = errors.New("interaction: invalid matrix size")

// Matrix is a square matrix of int64 weights.
type Matrix struct {
	n    int
	data []int64
}

// NewMatrix returns an n×n zero matrix.
func NewMatrix(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewMatrix(%d): %w", n, ErrBadSize)
	}

	return &Matrix{n: n, data: make([]int64, n*n)}, nil
}

// Size returns the matrix order.
func (m *Matrix) Size() int { return m.n }

// At returns element (i,j), or 0 when either index is out of range.
func (m *Matrix) At(i, j int) int64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}

	return m.data[i*m.n+j]
}

// AddSymmetric adds w to (i,j) and, when i≠j, to (j,i).
func (m *Matrix) AddSymmetric(i, j int, w int64) error {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return fmt.Errorf("AddSymmetric(%d,%d): n=%d: %w", i, j, m.n, ErrIndexOutOfBounds)
	}
	m.data[i*m.n+j] += w
	if i != j {
		m.data[j*m.n+i] += w
	}

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) []int64 {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]int64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// String renders one row per line, space separated.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
