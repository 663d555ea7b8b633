// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric containers shared by every solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors.
//   - Row and column surgery (AppendRow, AppendCol, RemoveRow, RemoveCol) used
//     by simplex tableaux that grow with cutting planes and shrink when
//     artificial columns are dropped.
//   - Range extraction (Induced) and construction from row slices (NewFromRows).
//   - GaussJordan, the single arithmetic primitive of the simplex family:
//     normalize the pivot row, eliminate the pivot column everywhere else.
//   - ParallelApply, a data-parallel per-cell map over disjoint rows.
//
// All public functions return sentinel errors (errors.go) instead of panicking.
// Tolerances come from one place: DefaultEpsilon in options.go.
package matrix
