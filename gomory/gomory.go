// SPDX-License-Identifier: MIT

package gomory

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/simplex"
)

// Solve returns an integer optimum of p over x >= 0, x integer.
//
// Implementation:
//   - Stage 1: two-phase simplex on the relaxation; Infeasible/Unbounded
//     are returned as they are.
//   - Stage 2: while a basic original variable is fractional, append the
//     cut of the row with the largest fractional part, restore primal
//     feasibility with the dual simplex and re-optimize.
//   - Stage 3: round the final basic values (each is within Epsilon of an
//     integer) and evaluate the objective on the rounded vector.
//
// Progress reports (cuts, MaxCuts): the total is the cut limit, not an
// estimate of the cuts still needed.
//
// Cuts are valid when every A, B entry is an integer (slack values are then
// integral too); with fractional data the loop may stop on ErrCutLimit.
//
// Errors: model validation errors, ErrOptionViolation, ErrCutLimit,
// simplex.ErrPivotLimit, model.ErrCanceled.
func Solve(ctx context.Context, p *model.Problem, opts ...Option) (model.Result, error) {
	o, err := gatherOptions(append(append([]Option(nil), opts...), WithContext(ctx))...)
	if err != nil {
		return model.Result{}, err
	}
	defer o.Hooks.Complete()

	tb, err := simplex.NewTableau(p, o.simplexOptions()...)
	if err != nil {
		return model.Result{}, err
	}
	status, err := tb.Solve()
	if err != nil || status != model.Optimal {
		return model.Result{Status: status}, err
	}

	var cuts int
	for {
		row, frac, err := mostFractional(tb, o.Epsilon)
		if err != nil {
			return model.Result{}, err
		}
		if row < 0 {
			break
		}
		if cuts >= o.MaxCuts {
			return model.Result{}, fmt.Errorf("gomory.Solve: %d cuts, z=%g: %w", cuts, tb.Value(), ErrCutLimit)
		}
		if err = addCut(tb, row, o.Epsilon); err != nil {
			return model.Result{}, err
		}
		cuts++
		o.Hooks.Progress(cuts, o.MaxCuts)
		o.Hooks.Logf("cut %d from row %d (fraction %g)", cuts, row, frac)

		feasible, err := tb.DualSimplex()
		if err != nil {
			return model.Result{}, err
		}
		if !feasible {
			o.Hooks.Log("no integer point satisfies the constraints")
			return model.Result{Status: model.Infeasible}, nil
		}
		if status, err = tb.Optimize(); err != nil || status != model.Optimal {
			return model.Result{Status: status}, err
		}
	}

	x := tb.Solution()
	for j := range x {
		x[j] = math.Round(x[j])
	}
	value, err := p.Evaluate(x)
	if err != nil {
		return model.Result{}, err
	}
	o.Hooks.Logf("integer optimum z=%g after %d cuts", value, cuts)

	return model.Result{
		Status:  model.Optimal,
		Vectors: [][]float64{x},
		Values:  []float64{value},
	}, nil
}

// fracPart returns v - floor(v), snapped to 0 within eps of an integer.
func fracPart(v, eps float64) float64 {
	if math.Abs(v-math.Round(v)) <= eps {
		return 0
	}

	return v - math.Floor(v)
}

// mostFractional scans rows whose basic variable is an original one and
// returns the row with the largest fractional value (first on ties), or -1.
func mostFractional(tb *simplex.Tableau, eps float64) (row int, frac float64, err error) {
	row = -1
	var (
		i   int
		f   float64
		vec []float64
	)
	for i = 1; i <= tb.Rows(); i++ {
		if tb.RowsIndex[i-1] > tb.Originals() {
			continue
		}
		if vec, err = tb.Row(i); err != nil {
			return -1, 0, err
		}
		f = fracPart(vec[0], eps)
		if f > frac {
			row, frac = i, f
		}
	}

	return row, frac, nil
}

// addCut appends  Σ (floor(a_j) - a_j) x_j + g = floor(b) - b  built from
// tableau row i.
func addCut(tb *simplex.Tableau, i int, eps float64) error {
	vec, err := tb.Row(i)
	if err != nil {
		return err
	}
	coef := make([]float64, len(vec)-1)
	for j := range coef {
		coef[j] = -fracPart(vec[j+1], eps)
	}
	if _, err = tb.AddCut(coef, -fracPart(vec[0], eps)); err != nil {
		return fmt.Errorf("gomory.addCut(row %d): %w", i, err)
	}

	return nil
}
