// SPDX-License-Identifier: MIT

// Package simplex implements the two-phase simplex method on a dense tableau.
//
// Purpose:
//   - Solve the continuous relaxation of a model.Problem (x >= 0).
//   - Expose the Tableau so cutting-plane solvers can append rows and run
//     the dual simplex on the same basis.
//
// Algorithm:
//
//  1. Canonicalize: rows with negative rhs are negated; <= gets a +1 slack,
//     >= a -1 surplus and a +1 artificial, == a +1 artificial. The initial
//     basis is every slack and artificial.
//  2. Phase 1 maximizes -Σ artificials. An optimum below -Epsilon means the
//     problem is infeasible.
//  3. Zero-level artificials are pivoted out (or their redundant rows
//     removed); artificial columns are dropped.
//  4. Phase 2 restores the original objective and pivots until no column
//     has a reduced cost below -Epsilon.
//
// Pivot rule: among every (row, column) pair with an improving column and a
// positive entry, the smallest ratio b_i/a_ij wins; ties within Epsilon keep
// the first pair in row-major order. The rule is deterministic but does not
// prevent cycling on degenerate problems; MaxPivots bounds each loop.
//
// One tolerance, Epsilon (default matrix.DefaultEpsilon = 1e-9), is used for
// pivot magnitude, optimality, ratio ties and phase-1 feasibility.
//
// Complexity:
//   - Each pivot is O(m*N) for m rows and N columns; the number of pivots is
//     exponential in the worst case and small in practice.
package simplex
