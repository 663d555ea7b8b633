// SPDX-License-Identifier: MIT

package simplex

import (
	"context"

	"github.com/katalvlaran/minimax/model"
)

// Solve runs the two-phase simplex method on the continuous relaxation of p
// (x >= 0, no integrality) and returns one optimal vertex.
//
// ctx overrides any WithContext option. Hooks.OnComplete fires once on return.
//
// Returns:
//   - Status Optimal with one vector and its value;
//   - Status Infeasible or Unbounded with empty slices.
//
// Errors: model validation errors, ErrOptionViolation, ErrPivotLimit,
// model.ErrCanceled, matrix.ErrDegeneratePivot (internal invariant failure).
func Solve(ctx context.Context, p *model.Problem, opts ...Option) (model.Result, error) {
	o, err := gatherOptions(append(append([]Option(nil), opts...), WithContext(ctx))...)
	if err != nil {
		return model.Result{}, err
	}
	defer o.Hooks.Complete()

	t, err := newTableau(p, o)
	if err != nil {
		return model.Result{}, err
	}
	status, err := t.Solve()
	if err != nil {
		return model.Result{}, err
	}

	res := model.Result{Status: status}
	if status == model.Optimal {
		res.Vectors = [][]float64{t.Solution()}
		res.Values = []float64{t.Value()}
	}

	return res, nil
}
