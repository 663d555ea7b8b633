// SPDX-License-Identifier: MIT

// Package matrix - row/column surgery on Dense.
//
// Purpose:
//   - Let solver-owned tableaux grow (cutting-plane rows, auxiliary columns)
//     and shrink (redundant rows, artificial columns) without rebuilding.
//   - Keep row-major layout: row operations are slice appends/copies,
//     column operations rebuild the buffer in a single pass.
//
// All methods mutate the receiver; RowView slices taken earlier are invalid afterwards.

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxAppendRow = "AppendRow"
	ctxAppendCol = "AppendCol"
	ctxRemoveRow = "RemoveRow"
	ctxRemoveCol = "RemoveCol"
)

// matrixErrorf wraps an error with a method tag (no coordinates).
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// finiteAll reports the first non-finite position in vals, or -1.
func finiteAll(vals []float64) int {
	for k, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return k
		}
	}

	return -1
}

// AppendRow adds row as the new last row.
//
// Implementation:
//   - Stage 1: len(row) must equal Cols() (any length accepted on a 0-col matrix with 0 rows).
//   - Stage 2: numeric policy check.
//   - Stage 3: append to the flat buffer.
//
// Errors: ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: amortized O(c).
func (m *Dense) AppendRow(row []float64) error {
	if m.r == 0 && m.c == 0 {
		m.c = len(row)
	}
	if len(row) != m.c {
		return fmt.Errorf("Dense.%s: got %d values, want %d: %w", ctxAppendRow, len(row), m.c, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		if k := finiteAll(row); k >= 0 {
			return denseErrorf(ctxAppendRow, m.r, k, ErrNaNInf)
		}
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// AppendCol adds col as the new last column.
// Errors: ErrDimensionMismatch (len(col) != Rows()), ErrNaNInf.
//
// Complexity: O(r*c).
func (m *Dense) AppendCol(col []float64) error {
	if len(col) != m.r {
		return fmt.Errorf("Dense.%s: got %d values, want %d: %w", ctxAppendCol, len(col), m.r, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		if k := finiteAll(col); k >= 0 {
			return denseErrorf(ctxAppendCol, k, m.c, ErrNaNInf)
		}
	}

	nc := m.c + 1
	buf := make([]float64, m.r*nc)

	var i int
	for i = 0; i < m.r; i++ {
		copy(buf[i*nc:i*nc+m.c], m.data[i*m.c:(i+1)*m.c])
		buf[i*nc+m.c] = col[i]
	}
	m.data = buf
	m.c = nc

	return nil
}

// RemoveRow deletes row i, shifting later rows up.
// Removing the last remaining row leaves a valid 0×c matrix.
//
// Complexity: O((r-i)*c).
func (m *Dense) RemoveRow(i int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxRemoveRow, i, 0, ErrOutOfRange)
	}
	copy(m.data[i*m.c:], m.data[(i+1)*m.c:])
	m.data = m.data[:(m.r-1)*m.c]
	m.r--

	return nil
}

// RemoveCol deletes column j, shifting later columns left.
//
// Complexity: O(r*c), in place.
func (m *Dense) RemoveCol(j int) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxRemoveCol, 0, j, ErrOutOfRange)
	}

	var (
		nc   = m.c - 1
		i, k int
		dst  int
	)
	// Compact forward; dst never overtakes the read cursor.
	for i = 0; i < m.r; i++ {
		for k = 0; k < m.c; k++ {
			if k == j {
				continue
			}
			m.data[dst] = m.data[i*m.c+k]
			dst++
		}
	}
	m.data = m.data[:m.r*nc]
	m.c = nc

	return nil
}
