// SPDX-License-Identifier: MIT

package bnb

import (
	"context"
	"sort"

	"github.com/katalvlaran/minimax/model"
)

// SolveMulti starts one search front per (variable, value) pair and grows
// each node cyclically: a node whose last fixed variable is j branches on
// (j+1) mod n. Fronts that reach the same assignment are merged, so after
// n-1 rounds the survivors are distinct complete optimal vectors.
//
// It returns the same optimal value set as SolveTree; the vector order
// follows the merge order (fixed-index set, then assignment pattern).
//
// Errors: model validation errors, ErrOptionViolation, model.ErrCanceled.
func SolveMulti(ctx context.Context, p *model.Problem, opts ...Option) (model.Result, error) {
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

	if err = e.checkCtx(); err != nil {
		return model.Result{}, err
	}
	live := make([]*Node, 0, 2*e.n)
	for j := 0; j < e.n; j++ {
		for _, val := range [2]bool{false, true} {
			if nd := e.child(root, j, val); e.feasible(nd) {
				e.certify(nd)
				live = append(live, nd)
			}
		}
	}
	live = e.prune(live)
	o.Hooks.Progress(1, e.n)

	for round := 1; round < e.n && len(live) > 0; round++ {
		if err = e.checkCtx(); err != nil {
			return model.Result{}, err
		}
		next := make([]*Node, 0, 2*len(live))
		for _, nd := range live {
			idx := (nd.Indices[len(nd.Indices)-1] + 1) % e.n
			for _, val := range [2]bool{false, true} {
				if ch := e.child(nd, idx, val); e.feasible(ch) {
					e.certify(ch)
					next = append(next, ch)
				}
			}
		}
		live = e.prune(dedupe(next))
		o.Hooks.Progress(round+1, e.n)
		o.Hooks.Logf("round %d: %d live nodes", round, len(live))
	}
	if len(live) == 0 {
		return model.Result{Status: model.Infeasible}, nil
	}

	return e.result(dedupe(live)), nil
}

// entry is one fixed variable of a node in index order.
type entry struct {
	idx int
	val bool
}

// keyed pairs a node with its assignment sorted by variable index.
type keyed struct {
	nd  *Node
	key []entry
}

func keyOf(nd *Node) []entry {
	key := make([]entry, len(nd.Indices))
	for k, idx := range nd.Indices {
		key[k] = entry{idx: idx, val: nd.Vector[k]}
	}
	sort.Slice(key, func(a, b int) bool { return key[a].idx < key[b].idx })

	return key
}

// compareKeys orders by number of fixed variables, then by the sorted
// index set, then by assignment (false < true).
func compareKeys(x, y []entry) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for k := range x {
		if x[k].idx != y[k].idx {
			if x[k].idx < y[k].idx {
				return -1
			}
			return 1
		}
	}
	for k := range x {
		if x[k].val != y[k].val {
			if !x[k].val {
				return -1
			}
			return 1
		}
	}

	return 0
}

// dedupe sorts nodes by compareKeys and drops equal neighbours.
func dedupe(nodes []*Node) []*Node {
	if len(nodes) < 2 {
		return nodes
	}
	ks := make([]keyed, len(nodes))
	for i, nd := range nodes {
		ks[i] = keyed{nd: nd, key: keyOf(nd)}
	}
	sort.SliceStable(ks, func(a, b int) bool { return compareKeys(ks[a].key, ks[b].key) < 0 })

	out := nodes[:0]
	for i := range ks {
		if i > 0 && compareKeys(ks[i-1].key, ks[i].key) == 0 {
			continue
		}
		out = append(out, ks[i].nd)
	}
	for j := len(out); j < len(nodes); j++ {
		nodes[j] = nil
	}

	return out
}
