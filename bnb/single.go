// SPDX-License-Identifier: MIT

package bnb

import (
	"context"

	"github.com/katalvlaran/minimax/model"
)

// SolveSingle runs depth-first branch-and-bound and returns one optimal
// vector.
//
// Each step looks only at the deepest open nodes and takes the one with
// the best bound (first on ties):
//   - if it trails the incumbent, every node at that depth trails too and
//     the whole level is discarded;
//   - a complete node becomes the incumbent (ties replace it);
//   - otherwise it is replaced by its feasible children on the next
//     variable in index order.
//
// Errors: model validation errors, ErrOptionViolation, model.ErrCanceled.
func SolveSingle(ctx context.Context, p *model.Problem, opts ...Option) (model.Result, error) {
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

	var (
		stack     = []*Node{root}
		incumbent *Node
		reached   int
	)
	for len(stack) > 0 {
		if err = e.checkCtx(); err != nil {
			return model.Result{}, err
		}
		pick, depth := e.selectDeepest(stack)
		if depth > reached {
			reached = depth
			o.Hooks.Progress(reached, e.n)
		}
		nd := stack[pick]

		if e.hasBest && e.worse(e.bound(nd), e.best) {
			stack = dropDepth(stack, depth)
			continue
		}
		stack = append(stack[:pick], stack[pick+1:]...)
		if e.complete(nd) {
			incumbent = nd
			e.offer(e.bound(nd))
			o.Hooks.Logf("incumbent z=%g", e.bound(nd))
			continue
		}
		for _, val := range [2]bool{false, true} {
			if ch := e.child(nd, depth, val); e.feasible(ch) {
				stack = append(stack, ch)
			}
		}
	}
	if incumbent == nil {
		return model.Result{Status: model.Infeasible}, nil
	}

	return e.result([]*Node{incumbent}), nil
}

// selectDeepest returns the position and depth of the best-bound node
// among the deepest ones in stack.
func (e *engine) selectDeepest(stack []*Node) (pick, depth int) {
	pick, depth = -1, -1
	for i, nd := range stack {
		d := len(nd.Indices)
		switch {
		case d > depth:
			pick, depth = i, d
		case d == depth && e.better(e.bound(nd), e.bound(stack[pick])):
			pick = i
		}
	}

	return pick, depth
}

// better reports whether v strictly improves on ref in the target's direction.
func (e *engine) better(v, ref float64) bool { return e.p.Target.Better(v, ref) }

// dropDepth removes every node with the given depth, preserving order.
func dropDepth(stack []*Node, depth int) []*Node {
	kept := stack[:0]
	for _, nd := range stack {
		if len(nd.Indices) != depth {
			kept = append(kept, nd)
		}
	}
	for j := len(kept); j < len(stack); j++ {
		stack[j] = nil
	}

	return kept
}
