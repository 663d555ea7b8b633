package bnb

import (
	"math"
	"testing"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	p := &model.Problem{
		A: [][]float64{{2, -1, 3}, {1, 1, 1}, {1, -1, 0}},
		B: []float64{3, 2, 0},
		R: []model.Relation{model.LessEqual, model.GreaterEqual, model.Equal},
		C: []float64{4, -2, 1},
	}
	e := newEngine(p, DefaultOptions())

	root := e.root()
	assert.Equal(t, -2.0, root.FuncMin)
	assert.Equal(t, 5.0, root.FuncMax)
	// <=: 3 - (-1); >=: 3 - 2; =: min(0 - (-1), 1 - 0).
	assert.Equal(t, []float64{4, 1, 1}, root.ArgBound)
	assert.True(t, e.feasible(root))

	// x1 = 1, x3 = 1: row 0 lower bound 2 - 1 + 3 = 4 > 3.
	nd := e.child(e.child(root, 0, true), 2, true)
	assert.Equal(t, []int{0, 2}, nd.Indices)
	assert.Equal(t, []bool{true, true}, nd.Vector)
	assert.Equal(t, 3.0, nd.FuncMin)
	assert.Equal(t, 5.0, nd.FuncMax)
	assert.Equal(t, -1.0, nd.ArgBound[0])
	assert.False(t, e.feasible(nd))
	assert.Equal(t, []float64{1, 0, 1}, nd.Dense(3))

	// Parents are not modified by children.
	assert.Empty(t, root.Indices)
}

// completions returns the range of C·x over every 0/1 completion of nd and
// whether one of them satisfies p.
func completions(p *model.Problem, nd *Node) (lo, hi float64, feasible bool) {
	n := len(p.C)
	fixed := make([]bool, n)
	for _, idx := range nd.Indices {
		fixed[idx] = true
	}
	var free []int
	for j := 0; j < n; j++ {
		if !fixed[j] {
			free = append(free, j)
		}
	}

	base := nd.Dense(n)
	x := make([]float64, n)
	lo, hi = math.Inf(1), math.Inf(-1)
	for mask := 0; mask < 1<<len(free); mask++ {
		copy(x, base)
		for k, j := range free {
			x[j] = float64(mask >> k & 1)
		}
		v, _ := p.Evaluate(x)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		if ok, _ := p.Feasible(x, matrix.DefaultEpsilon); ok {
			feasible = true
		}
	}

	return lo, hi, feasible
}

// Every node reachable in any branching order: FuncMin <= FuncMax, both
// are attained by some completion, and ArgBound never rejects a node that
// has a feasible completion.
func TestBoundsEncloseEveryCompletion(t *testing.T) {
	rng := model.NewRand(11)
	for trial := 0; trial < 40; trial++ {
		rows, cols := 1+rng.Intn(3), 1+rng.Intn(4)
		p := model.Random(rng, rows, cols, -5, 5)
		for i := range p.R {
			if rng.Intn(3) == 0 {
				p.R[i] = model.Equal
			}
		}
		e := newEngine(p, DefaultOptions())

		var nodes int
		var walk func(nd *Node)
		walk = func(nd *Node) {
			nodes++
			lo, hi, feasible := completions(p, nd)
			require.LessOrEqual(t, nd.FuncMin, nd.FuncMax, "trial %d node %v", trial, nd.Indices)
			require.InDelta(t, lo, nd.FuncMin, 1e-9, "trial %d node %v", trial, nd.Indices)
			require.InDelta(t, hi, nd.FuncMax, 1e-9, "trial %d node %v", trial, nd.Indices)
			if feasible {
				require.True(t, e.feasible(nd), "trial %d node %v", trial, nd.Indices)
			}

			fixed := make([]bool, e.n)
			for _, idx := range nd.Indices {
				fixed[idx] = true
			}
			for j := 0; j < e.n; j++ {
				if fixed[j] {
					continue
				}
				walk(e.child(nd, j, false))
				walk(e.child(nd, j, true))
			}
		}
		walk(e.root())
		require.Greater(t, nodes, 2*cols, "trial %d", trial)
	}
}

func TestCertifyRaisesIncumbent(t *testing.T) {
	// max x1 + x2 s.t. x1 + x2 <= 1: the all-ones completion fails, the
	// all-zeros one succeeds.
	p := &model.Problem{
		A: [][]float64{{1, 1}}, B: []float64{1},
		R: []model.Relation{model.LessEqual}, C: []float64{1, 1},
	}
	e := newEngine(p, DefaultOptions())
	e.certify(e.root())
	require.True(t, e.hasBest)
	assert.Equal(t, 0.0, e.best)

	e.certify(e.child(e.root(), 0, true))
	assert.Equal(t, 1.0, e.best)

	live := e.prune([]*Node{e.child(e.root(), 0, false), e.child(e.root(), 0, true)})
	assert.Len(t, live, 2)
}

func TestDedupe(t *testing.T) {
	p := &model.Problem{C: []float64{1, 1, 1}}
	e := newEngine(p, DefaultOptions())
	r := e.root()

	a := e.child(e.child(r, 1, true), 2, false)
	b := e.child(e.child(r, 2, false), 1, true) // same assignment as a
	c := e.child(e.child(r, 1, false), 2, false)
	d := e.child(r, 0, true)

	out := dedupe([]*Node{a, b, c, d})
	require.Len(t, out, 3)
	assert.Same(t, d, out[0]) // fewer fixed variables first
	assert.Same(t, c, out[1]) // false < true on x2
	assert.Same(t, a, out[2])
}
