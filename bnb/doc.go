// SPDX-License-Identifier: MIT

// Package bnb solves linear programs over boolean vectors (x_j ∈ {0, 1})
// by branch-and-bound.
//
// Every search node is a partial assignment with two kinds of bounds:
//
//   - FuncMin/FuncMax: the smallest and largest value C·x can take over
//     all completions, i.e. the fixed contribution plus the negative or
//     positive objective coefficients of the unfixed variables.
//   - ArgBound[i]: the best-case slack of row i. For "<=" it is
//     b_i - (fixed_i + Σ min(a_ij, 0)), for ">=" it is
//     (fixed_i + Σ max(a_ij, 0)) - b_i, and for "=" the minimum of both.
//     A negative entry proves the node infeasible.
//
// A node is pruned only against an incumbent that a concrete feasible
// assignment attains, so pruning never drops an optimal vector.
//
// Three traversals share the bounds:
//
//   - SolveTree:   breadth-first by variable index, returns all optimal ties.
//   - SolveMulti:  one front per (variable, value) pair, grown cyclically
//     and merged when fronts meet; returns all optimal ties.
//   - SolveSingle: depth-first on the best-bound deepest node; returns one
//     optimal vector.
//
// All run in O(2^n) worst-case time; they are meant for small n.
package bnb
