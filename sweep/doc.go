// SPDX-License-Identifier: MIT

// Package sweep builds "best option" tables by exhaustive enumeration.
//
// A table is described by Fields. Variables and Options list candidate
// values, Constants are fixed, and Targets are computed from the other
// columns. Build walks the cartesian product of all candidate lists,
// filters rows with a validity predicate and keeps, for every combination
// of Option and Constant values, the row with the highest weighted target
// sum. The result answers "for each option setting, which variable values
// work best?".
package sweep
