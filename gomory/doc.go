// SPDX-License-Identifier: MIT

// Package gomory solves integer linear programs with Gomory's fractional
// cutting-plane method on top of package simplex.
//
// Loop:
//
//  1. Solve the continuous relaxation (two-phase simplex).
//  2. Among basic original variables, find the one whose value has the
//     largest fractional part (first in row order on ties). None ⇒ done.
//  3. From its row a·x = b derive the cut Σ (⌊a_j⌋ - a_j) x_j <= ⌊b⌋ - b and
//     append it with a fresh basic slack. The slack starts negative.
//  4. The dual simplex restores feasibility; the primal loop re-optimizes.
//
// Variables are non-negative integers (not restricted to 0/1). A run that
// needs more than MaxCuts cuts fails with ErrCutLimit instead of looping.
package gomory
