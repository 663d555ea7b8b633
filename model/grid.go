// SPDX-License-Identifier: MIT

// Package model - text grid codec.
//
// Layout (width n+2 for every row):
//
//	row 0:      c_1 … c_n   "max"|"min"   ""
//	row 1..m:   a_i1 … a_in "<="|">="|"==" b_i
//
// Numbers are culture-invariant decimals; ',' is accepted as the decimal
// separator. Coefficient cells are parsed with matrix.ParallelApply, each
// worker writing its own cells.

package model

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/minimax/matrix"
)

// parseNumber parses one decimal cell.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	return strconv.ParseFloat(s, 64)
}

// formatNumber renders v with the shortest exact representation.
func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// ValidGrid reports whether grid is syntactically an LP the editor accepts:
// the direction cell is exactly "min" or "max" and every relation cell is
// exactly "<=" or ">=". Numeric cells are not inspected.
func ValidGrid(grid [][]string) bool {
	if len(grid) == 0 || len(grid[0]) < 3 {
		return false
	}
	n := len(grid[0]) - 2
	if d := grid[0][n]; d != "min" && d != "max" {
		return false
	}
	for _, row := range grid[1:] {
		if len(row) != n+2 {
			return false
		}
		if r := row[n]; r != symLessEqual && r != symGreaterEqual {
			return false
		}
	}

	return true
}

// ParseGrid converts a text grid into a validated Problem. Unlike ValidGrid
// it also accepts "==" rows.
//
// Errors: ErrInvalidGrid for shape problems and unparsable numbers,
// plus any Validate error.
func ParseGrid(grid [][]string) (*Problem, error) {
	if len(grid) == 0 || len(grid[0]) < 3 {
		return nil, fmt.Errorf("ParseGrid: need at least one variable column: %w", ErrInvalidGrid)
	}
	var (
		n   = len(grid[0]) - 2
		m   = len(grid) - 1
		err error
	)
	for i, row := range grid {
		if len(row) != n+2 {
			return nil, fmt.Errorf("ParseGrid: row %d has %d cells, want %d: %w", i, len(row), n+2, ErrInvalidGrid)
		}
	}

	p := &Problem{
		A: make([][]float64, m),
		B: make([]float64, m),
		R: make([]Relation, m),
	}
	if p.Target, err = ParseTarget(strings.TrimSpace(grid[0][n])); err != nil {
		return nil, fmt.Errorf("ParseGrid: %w: %w", ErrInvalidGrid, err)
	}

	// Numeric block: row 0 → C, rows 1..m → A, column n+1 → B.
	cells, err := parseNumericBlock(grid, n)
	if err != nil {
		return nil, err
	}
	p.C = cells[0][:n]

	var i int
	for i = 0; i < m; i++ {
		p.A[i] = cells[i+1][:n]
		p.B[i] = cells[i+1][n]
		if p.R[i], err = ParseRelation(strings.TrimSpace(grid[i+1][n])); err != nil {
			return nil, fmt.Errorf("ParseGrid: row %d: %w: %w", i+1, ErrInvalidGrid, err)
		}
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// parseNumericBlock parses every numeric cell into an (m+1)×(n+1) matrix:
// column j<n holds coefficients, column n holds the rhs (unused for row 0).
func parseNumericBlock(grid [][]string, n int) ([][]float64, error) {
	d, err := matrix.NewDense(len(grid), n+1)
	if err != nil {
		return nil, fmt.Errorf("ParseGrid: %w: %w", ErrInvalidGrid, err)
	}

	// One error slot per cell keeps worker writes disjoint.
	errs := make([]error, len(grid)*(n+1))
	err = matrix.ParallelApply(d, runtime.NumCPU(), func(i, j int, _ float64) float64 {
		src := j
		if j == n {
			if i == 0 {
				return 0 // objective row has no rhs
			}
			src = n + 1
		}
		v, perr := parseNumber(grid[i][src])
		if perr != nil {
			errs[i*(n+1)+j] = fmt.Errorf("ParseGrid: cell (%d,%d) %q: %w", i, src, grid[i][src], ErrInvalidGrid)
			return math.NaN()
		}

		return v
	})
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	if err != nil {
		return nil, fmt.Errorf("ParseGrid: %w: %w", ErrNaNInf, err)
	}

	return d.ToRows(), nil
}

// FormatGrid renders p in the grid layout understood by ParseGrid.
func FormatGrid(p *Problem) [][]string {
	m, n := p.Dims()
	grid := make([][]string, m+1)

	grid[0] = make([]string, n+2)
	for j, v := range p.C {
		grid[0][j] = formatNumber(v)
	}
	grid[0][n] = p.Target.String()

	var i, j int
	for i = 0; i < m; i++ {
		row := make([]string, n+2)
		for j = 0; j < n; j++ {
			row[j] = formatNumber(p.A[i][j])
		}
		row[n] = p.R[i].String()
		row[n+1] = formatNumber(p.B[i])
		grid[i+1] = row
	}

	return grid
}
