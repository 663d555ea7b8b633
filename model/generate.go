// SPDX-License-Identifier: MIT

// Package model - synthetic problem generators.
//
// Determinism:
//   - Every generator takes an explicit *rand.Rand; same seed ⇒ same problem.
//   - Draw order is fixed: target, C, A row by row, then (R, B) per row.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package model

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic source. seed==0 ⇒ defaultRNGSeed.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random builds a rows×cols problem with every coefficient, rhs and
// objective entry drawn uniformly from [lo, hi), a random direction and a
// random <= / >= per row. The result may well be infeasible or unbounded.
// rng==nil uses NewRand(0).
func Random(rng *rand.Rand, rows, cols int, lo, hi float64) *Problem {
	if rng == nil {
		rng = NewRand(0)
	}
	uniform := func() float64 { return lo + (hi-lo)*rng.Float64() }

	p := &Problem{
		A: make([][]float64, rows),
		B: make([]float64, rows),
		R: make([]Relation, rows),
		C: make([]float64, cols),
	}
	if rng.Intn(2) == 1 {
		p.Target = Minimize
	}

	var i, j int
	for j = 0; j < cols; j++ {
		p.C[j] = uniform()
	}
	for i = 0; i < rows; i++ {
		p.A[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			p.A[i][j] = uniform()
		}
	}
	for i = 0; i < rows; i++ {
		if rng.Intn(2) == 1 {
			p.R[i] = GreaterEqual
		}
		p.B[i] = uniform()
	}

	return p
}

// Simple builds the deterministic divisibility benchmark:
//
//	minimize  sum x_j
//	a_ij = 1 when (i+2) and (j+1) divide one another, else 0
//	every row <= cols/2
//
// Row i is the (i+1)-th constraint; the offset mirrors the editor's grid,
// where constraints start below the objective row.
func Simple(rows, cols int) *Problem {
	p := &Problem{
		A:      make([][]float64, rows),
		B:      make([]float64, rows),
		R:      make([]Relation, rows),
		C:      make([]float64, cols),
		Target: Minimize,
	}

	var i, j, gi int
	for j = 0; j < cols; j++ {
		p.C[j] = 1
	}
	for i = 0; i < rows; i++ {
		p.A[i] = make([]float64, cols)
		gi = i + 1 // grid row
		for j = 0; j < cols; j++ {
			if (gi+1)%(j+1) == 0 || (j+1)%(gi+1) == 0 {
				p.A[i][j] = 1
			}
		}
		p.R[i] = LessEqual
		p.B[i] = float64(cols >> 1)
	}

	return p
}
