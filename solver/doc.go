// SPDX-License-Identifier: MIT

// Package solver is the single entry point over every minimax algorithm.
//
//	res, err := solver.Solve(ctx, p, solver.Gomory, solver.WithEpsilon(1e-9))
//	if err != nil { ... }
//	if res.Status != model.Optimal { ... } // "system has no solution"
//
// Algorithms and the domain they search:
//
//	Simplex                        x >= 0 real          one vertex
//	Gomory                         x >= 0 integer       one vector
//	TreeBranchAndBound             x ∈ {0,1}            all optimal vectors
//	MultiBranchAndBound            x ∈ {0,1}            all optimal vectors
//	SingleIncrementBranchAndBound  x ∈ {0,1}            one vector
//
// The three boolean variants agree on the optimal value; Tree and Multi
// also agree on the set of optimal vectors.
package solver
