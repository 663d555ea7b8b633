// SPDX-License-Identifier: MIT

package bnb

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/minimax/model"
)

// engine holds the problem data shared by every variant plus the running
// incumbent. Scratch buffers make it single-goroutine.
type engine struct {
	// Config
	p        *model.Problem
	eps      float64
	maximize bool
	opts     Options

	// Precomputes
	n, m       int
	negC, posC []float64   // min(c_j, 0), max(c_j, 0)
	negA, posA [][]float64 // per row, same split

	// Scratch (reused by bounds)
	assign []float64 // fixed values, 0 for unfixed
	free   []float64 // 1 for unfixed, 0 for fixed
	point  []float64 // completion under test

	// Incumbent: best objective value proven attainable by a feasible point.
	best    float64
	hasBest bool
}

func newEngine(p *model.Problem, o Options) *engine {
	n, m := len(p.C), len(p.A)
	e := &engine{
		p:        p,
		eps:      o.Epsilon,
		maximize: p.Target == model.Maximize,
		opts:     o,
		n:        n,
		m:        m,
		negC:     make([]float64, n),
		posC:     make([]float64, n),
		negA:     make([][]float64, m),
		posA:     make([][]float64, m),
		assign:   make([]float64, n),
		free:     make([]float64, n),
		point:    make([]float64, n),
	}
	split(p.C, e.negC, e.posC)
	for i, row := range p.A {
		e.negA[i] = make([]float64, n)
		e.posA[i] = make([]float64, n)
		split(row, e.negA[i], e.posA[i])
	}

	return e
}

// split writes the negative and positive parts of v into neg and pos.
func split(v, neg, pos []float64) {
	for j, x := range v {
		neg[j] = math.Min(x, 0)
		pos[j] = math.Max(x, 0)
	}
}

// root returns the empty assignment with its bounds.
func (e *engine) root() *Node {
	nd := &Node{}
	e.bounds(nd)

	return nd
}

// child returns parent extended with variable idx fixed to val.
func (e *engine) child(parent *Node, idx int, val bool) *Node {
	k := len(parent.Indices)
	nd := &Node{
		Vector:  make([]bool, k+1),
		Indices: make([]int, k+1),
	}
	copy(nd.Vector, parent.Vector)
	copy(nd.Indices, parent.Indices)
	nd.Vector[k], nd.Indices[k] = val, idx
	e.bounds(nd)

	return nd
}

// load fills the assign/free scratch vectors from nd.
func (e *engine) load(nd *Node) {
	for j := 0; j < e.n; j++ {
		e.assign[j], e.free[j] = 0, 1
	}
	for k, idx := range nd.Indices {
		e.free[idx] = 0
		if nd.Vector[k] {
			e.assign[idx] = 1
		}
	}
}

// bounds computes FuncMin, FuncMax and ArgBound of nd.
func (e *engine) bounds(nd *Node) {
	e.load(nd)
	fixed := floats.Dot(e.p.C, e.assign)
	nd.FuncMin = fixed + floats.Dot(e.negC, e.free)
	nd.FuncMax = fixed + floats.Dot(e.posC, e.free)

	nd.ArgBound = make([]float64, e.m)
	var lo, hi float64
	for i, row := range e.p.A {
		fixed = floats.Dot(row, e.assign)
		lo = fixed + floats.Dot(e.negA[i], e.free)
		hi = fixed + floats.Dot(e.posA[i], e.free)
		switch e.p.R[i] {
		case model.LessEqual:
			nd.ArgBound[i] = e.p.B[i] - lo
		case model.GreaterEqual:
			nd.ArgBound[i] = hi - e.p.B[i]
		default: // Equal
			nd.ArgBound[i] = math.Min(e.p.B[i]-lo, hi-e.p.B[i])
		}
	}
}

// feasible reports whether some completion of nd may satisfy every row.
func (e *engine) feasible(nd *Node) bool {
	return e.m == 0 || floats.Min(nd.ArgBound) >= -e.eps
}

// complete reports whether nd fixes every variable.
func (e *engine) complete(nd *Node) bool { return len(nd.Indices) == e.n }

// bound is the optimistic objective of nd in the target's direction.
func (e *engine) bound(nd *Node) float64 {
	if e.maximize {
		return nd.FuncMax
	}

	return nd.FuncMin
}

// worse reports whether v is worse than ref by more than eps.
func (e *engine) worse(v, ref float64) bool {
	if e.maximize {
		return v < ref-e.eps
	}

	return v > ref+e.eps
}

// completion writes into e.point the assignment of nd with every unfixed
// x_j set to 1 iff c_j > 0 (up) or c_j < 0 (!up). Its value is FuncMax
// (up) or FuncMin (!up).
func (e *engine) completion(nd *Node, up bool) []float64 {
	e.load(nd)
	for j := 0; j < e.n; j++ {
		e.point[j] = e.assign[j]
		if e.free[j] == 0 {
			continue
		}
		if (up && e.p.C[j] > 0) || (!up && e.p.C[j] < 0) {
			e.point[j] = 1
		}
	}

	return e.point
}

// certify tries the two extreme completions of nd, optimistic first, and
// raises the incumbent to the value of the first feasible one.
func (e *engine) certify(nd *Node) {
	for _, up := range []bool{e.maximize, !e.maximize} {
		if ok, _ := e.p.Feasible(e.completion(nd, up), e.eps); !ok {
			continue
		}
		v := nd.FuncMin
		if up {
			v = nd.FuncMax
		}
		e.offer(v)

		return
	}
}

// offer raises the incumbent to v when v is better.
func (e *engine) offer(v float64) {
	if !e.hasBest || e.better(v, e.best) {
		e.best, e.hasBest = v, true
	}
}

// prune keeps the nodes whose bound is not worse than the incumbent,
// reusing the backing array.
func (e *engine) prune(live []*Node) []*Node {
	if !e.hasBest {
		return live
	}
	kept := live[:0]
	for _, nd := range live {
		if !e.worse(e.bound(nd), e.best) {
			kept = append(kept, nd)
		}
	}
	for j := len(kept); j < len(live); j++ {
		live[j] = nil
	}

	return kept
}

// result builds an Optimal result from complete nodes.
func (e *engine) result(nodes []*Node) model.Result {
	res := model.Result{
		Status:  model.Optimal,
		Vectors: make([][]float64, len(nodes)),
		Values:  make([]float64, len(nodes)),
	}
	for i, nd := range nodes {
		res.Vectors[i] = nd.Dense(e.n)
		res.Values[i] = e.bound(nd)
	}

	return res
}

// checkCtx returns a wrapped ErrCanceled once the context is done.
func (e *engine) checkCtx() error {
	select {
	case <-e.opts.Ctx.Done():
		return model.Canceled(e.opts.Ctx.Err())
	default:
		return nil
	}
}
