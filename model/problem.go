// SPDX-License-Identifier: MIT

// Package model - Problem construction, validation and evaluation.
//
// Purpose:
//   - Single entry check (Validate) shared by every solver.
//   - Statically typed conversion from any Number to float64 (New).
//   - Evaluation helpers used by solvers and tests to verify results.
//
// Complexity:
//   - Validate/Evaluate/Residuals: O(m*n).

package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New builds a validated Problem from coefficients of any Number type.
//
// Implementation:
//   - Stage 1: convert every slice to float64 (deep copy; inputs never aliased).
//   - Stage 2: Validate.
//
// Errors: ErrEmptyProblem, ErrDimensionMismatch, ErrNaNInf,
// ErrUnsupportedRelation, ErrUnsupportedTarget.
func New[T Number](a [][]T, b []T, r []Relation, c []T, target Target) (*Problem, error) {
	p := &Problem{
		A:      make([][]float64, len(a)),
		B:      toFloats(b),
		R:      append([]Relation(nil), r...),
		C:      toFloats(c),
		Target: target,
	}
	for i := range a {
		p.A[i] = toFloats(a[i])
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func toFloats[T Number](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}

	return out
}

// Dims returns (constraints, variables).
func (p *Problem) Dims() (rows, cols int) { return len(p.A), len(p.C) }

// Validate checks the shape invariant and the closed value sets.
//
// Order: empty → lengths → per-row width → finite values → relations → target.
//
// Complexity: O(m*n).
func (p *Problem) Validate() error {
	if p == nil || len(p.C) == 0 {
		return ErrEmptyProblem
	}

	m, n := p.Dims()
	if len(p.B) != m {
		return fmt.Errorf("Problem.Validate: len(B)=%d, rows(A)=%d: %w", len(p.B), m, ErrDimensionMismatch)
	}
	if len(p.R) != m {
		return fmt.Errorf("Problem.Validate: len(R)=%d, rows(A)=%d: %w", len(p.R), m, ErrDimensionMismatch)
	}

	var i int
	for i = 0; i < m; i++ {
		if len(p.A[i]) != n {
			return fmt.Errorf("Problem.Validate: row %d has %d cols, len(C)=%d: %w", i, len(p.A[i]), n, ErrDimensionMismatch)
		}
		if !allFinite(p.A[i]) {
			return fmt.Errorf("Problem.Validate: A row %d: %w", i, ErrNaNInf)
		}
		if !p.R[i].Valid() {
			return fmt.Errorf("Problem.Validate: row %d: %v: %w", i, p.R[i], ErrUnsupportedRelation)
		}
	}
	if !allFinite(p.B) {
		return fmt.Errorf("Problem.Validate: B: %w", ErrNaNInf)
	}
	if !allFinite(p.C) {
		return fmt.Errorf("Problem.Validate: C: %w", ErrNaNInf)
	}
	if !p.Target.Valid() {
		return fmt.Errorf("Problem.Validate: %v: %w", p.Target, ErrUnsupportedTarget)
	}

	return nil
}

func allFinite(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
func (p *Problem) Clone() *Problem {
	q := &Problem{
		A:      make([][]float64, len(p.A)),
		B:      append([]float64(nil), p.B...),
		R:      append([]Relation(nil), p.R...),
		C:      append([]float64(nil), p.C...),
		Target: p.Target,
	}
	for i := range p.A {
		q.A[i] = append([]float64(nil), p.A[i]...)
	}

	return q
}

// Evaluate returns C·x.
func (p *Problem) Evaluate(x []float64) (float64, error) {
	if len(x) != len(p.C) {
		return 0, fmt.Errorf("Problem.Evaluate: len(x)=%d, want %d: %w", len(x), len(p.C), ErrDimensionMismatch)
	}

	return floats.Dot(p.C, x), nil
}

// Residuals returns A[i]·x - B[i] for every row.
func (p *Problem) Residuals(x []float64) ([]float64, error) {
	if len(x) != len(p.C) {
		return nil, fmt.Errorf("Problem.Residuals: len(x)=%d, want %d: %w", len(x), len(p.C), ErrDimensionMismatch)
	}
	res := make([]float64, len(p.A))
	for i, row := range p.A {
		res[i] = floats.Dot(row, x) - p.B[i]
	}

	return res, nil
}

// Feasible reports whether x >= -eps componentwise and every row holds
// within eps under its relation.
func (p *Problem) Feasible(x []float64, eps float64) (bool, error) {
	res, err := p.Residuals(x)
	if err != nil {
		return false, err
	}
	if len(x) > 0 && floats.Min(x) < -eps {
		return false, nil
	}
	for i, r := range res {
		switch p.R[i] {
		case LessEqual:
			if r > eps {
				return false, nil
			}
		case GreaterEqual:
			if r < -eps {
				return false, nil
			}
		case Equal:
			if math.Abs(r) > eps {
				return false, nil
			}
		default:
			return false, fmt.Errorf("Problem.Feasible: row %d: %w", i, ErrUnsupportedRelation)
		}
	}

	return true, nil
}

// ToStandardForm rewrites p as
//
//	minimize  c·z   subject to  A z = b,  z >= 0
//
// where z = [x, s] and s holds one slack (<=, +1) or surplus (>=, -1)
// column per inequality row. For Maximize the objective is negated, so the
// optimum of p equals -min. The result feeds gonum's lp.Simplex directly.
//
// Complexity: O(m*(n+m)).
func (p *Problem) ToStandardForm() (c []float64, a *mat.Dense, b []float64, err error) {
	if err = p.Validate(); err != nil {
		return nil, nil, nil, err
	}
	m, n := p.Dims()
	if m == 0 {
		return nil, nil, nil, fmt.Errorf("Problem.ToStandardForm: no constraints: %w", ErrDimensionMismatch)
	}

	var slacks int
	for _, r := range p.R {
		if r != Equal {
			slacks++
		}
	}

	c = make([]float64, n+slacks)
	copy(c, p.C)
	if p.Target == Maximize {
		floats.Scale(-1, c[:n])
	}
	a = mat.NewDense(m, n+slacks, nil)
	b = append([]float64(nil), p.B...)

	var i, s int
	s = n
	for i = 0; i < m; i++ {
		a.SetRow(i, append(append([]float64(nil), p.A[i]...), make([]float64, slacks)...))
		switch p.R[i] {
		case LessEqual:
			a.Set(i, s, 1)
			s++
		case GreaterEqual:
			a.Set(i, s, -1)
			s++
		}
	}

	return c, a, b, nil
}
