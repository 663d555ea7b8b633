// SPDX-License-Identifier: MIT

// Package model defines the Problem every solver consumes.
//
// A Problem is the classic linear program over non-negative variables:
//
//	optimize  C·x
//	subject   A x  R  B
//	          x >= 0
//
// where R holds one of <=, >=, == per row and Target picks max or min.
//
// The package provides:
//
//   - New, a generic constructor over any integer or float element type.
//   - Validate, the single entry check used by all solvers.
//   - Evaluate, Residuals and Feasible for verifying returned vectors.
//   - ToStandardForm, the equality form consumed by gonum's lp.Simplex.
//   - The editor grid codec (ParseGrid, FormatGrid, ValidGrid) and a YAML
//     codec (DecodeYAML, EncodeYAML).
//   - Seeded generators (Random, Simple) for tests and benchmarks.
package model
