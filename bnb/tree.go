// SPDX-License-Identifier: MIT

package bnb

import (
	"context"

	"github.com/katalvlaran/minimax/model"
)

// SolveTree runs breadth-first branch-and-bound over 0/1 variables in
// index order and returns every optimal vector (ties included).
//
// Implementation:
//   - Stage 1: root bounds; an infeasible root yields Status Infeasible.
//   - Stage 2: for k = 0..n-1 split each live node on x_k, drop children
//     whose ArgBound proves infeasibility, certify the extreme completions
//     of the survivors and prune nodes whose bound trails the incumbent.
//   - Stage 3: every survivor at depth n is complete and optimal.
//
// Pruning compares against certified incumbents only: values of extreme
// completions checked feasible, never a bare FuncMin/FuncMax of a node.
//
// Complexity: O(2^n · m · n) time and O(2^n · n) memory in the worst case.
//
// Errors: model validation errors, ErrOptionViolation, model.ErrCanceled.
func SolveTree(ctx context.Context, p *model.Problem, opts ...Option) (model.Result, error) {
	o, err := gatherOptions(ctx, opts...)
	if err != nil {
		return model.Result{}, err
	}
	defer o.Hooks.Complete()
	if err = p.Validate(); err != nil {
		return model.Result{}, err
	}

	e := newEngine(p, o)
	root := e.root()
	if !e.feasible(root) {
		o.Hooks.Log("root bounds rule out every assignment")
		return model.Result{Status: model.Infeasible}, nil
	}
	e.certify(root)

	live := []*Node{root}
	for k := 0; k < e.n; k++ {
		if err = e.checkCtx(); err != nil {
			return model.Result{}, err
		}
		next := make([]*Node, 0, 2*len(live))
		for _, nd := range live {
			for _, val := range [2]bool{false, true} {
				ch := e.child(nd, k, val)
				if !e.feasible(ch) {
					continue
				}
				e.certify(ch)
				next = append(next, ch)
			}
		}
		live = e.prune(next)
		o.Hooks.Progress(k+1, e.n)
		o.Hooks.Logf("depth %d: %d live nodes", k+1, len(live))
		if len(live) == 0 {
			return model.Result{Status: model.Infeasible}, nil
		}
	}

	return e.result(live), nil
}
