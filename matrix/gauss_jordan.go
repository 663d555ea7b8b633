// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan pivot.
//
// Purpose:
//   - The single arithmetic primitive of the simplex family: given pivot
//     (r, c), divide row r by a[r][c] and eliminate column c from every
//     other row: row_i -= (a[i][c]/a[r][c]) * row_r.
//
// Contract:
//   - |a[r][c]| <= eps → ErrDegeneratePivot (nothing is modified).
//   - r or c outside bounds → ErrOutOfRange.
//   - After the pivot, column c is the unit vector e_r (set exactly, not computed).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for GaussJordan, O(1) extra for GaussJordanInPlace.

package matrix

import (
	"fmt"
	"math"
)

const ctxPivot = "GaussJordan"

// GaussJordan returns a NEW Dense equal to m pivoted on (r, c).
// The input is never modified.
//
// Implementation:
//   - Stage 1: nil/bounds checks; materialize a Dense copy (fast path for *Dense).
//   - Stage 2: delegate to GaussJordanInPlace on the copy.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDegeneratePivot (wrapped).
func GaussJordan(m Matrix, r, c int, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxPivot, err)
	}

	var (
		out *Dense
		err error
	)
	if d, ok := m.(*Dense); ok {
		out = d.clone()
	} else {
		if out, err = toDense(m); err != nil {
			return nil, err
		}
	}
	if err = GaussJordanInPlace(out, r, c, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// GaussJordanInPlace pivots d on (r, c) without allocating.
// With WithWorkers(k>1) and a large enough matrix, the elimination of the
// non-pivot rows is split over k goroutines (rows are disjoint).
func GaussJordanInPlace(d *Dense, r, c int, opts ...Option) error {
	if d == nil {
		return fmt.Errorf("%s: %w", ctxPivot, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	if r < 0 || r >= d.r || c < 0 || c >= d.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxPivot, r, c, ErrOutOfRange)
	}

	cols := d.c
	pivotRow := d.data[r*cols : (r+1)*cols]
	p := pivotRow[c]
	if math.Abs(p) <= o.eps || math.IsNaN(p) {
		return fmt.Errorf("%s(%d,%d): |%g| <= %g: %w", ctxPivot, r, c, p, o.eps, ErrDegeneratePivot)
	}

	// Stage 1: normalize pivot row.
	var j int
	for j = 0; j < cols; j++ {
		pivotRow[j] /= p
	}
	pivotRow[c] = 1

	// Stage 2: eliminate column c from every other row.
	eliminate := func(from, to int) {
		var i, k int
		var f float64
		var row []float64
		for i = from; i < to; i++ {
			if i == r {
				continue
			}
			row = d.data[i*cols : (i+1)*cols]
			f = row[c]
			if f == 0 {
				continue
			}
			for k = 0; k < cols; k++ {
				row[k] -= f * pivotRow[k]
			}
			row[c] = 0
		}
	}
	forRowBands(d.r, d.r*cols, o.workers, eliminate)

	return nil
}

// toDense copies any Matrix into a Dense.
func toDense(m Matrix) (*Dense, error) {
	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
