// Package minimax solves small linear and integer programs: continuous LPs
// with a two-phase simplex, integer programs with Gomory cutting planes and
// boolean programs with three branch-and-bound strategies.
//
// What is inside?
//
//	A dependency-light toolkit built on gonum and plain slices:
//		• Problem model: maximize/minimize C·x subject to A·x {<=,>=,==} B
//		• Codecs: editor grid (";"-separated cells) and YAML
//		• Simplex: two-phase tableau, dual simplex, unbounded detection
//		• Gomory: fractional cuts, exact for integral A and B
//		• Branch-and-bound over {0,1}: tree, multi-front, single-increment
//		• Sweep tables: best variable values per option setting
//
// Under the hood the work is split into packages:
//
//	matrix/  : dense tableau storage, Gauss-Jordan pivot, parallel row bands
//	model/   : Problem, Result, Status, grid/YAML codecs, generators
//	trace/   : progress/log hooks and sinks (Recorder, Buffered, slog)
//	simplex/ : tableau construction and pivot loops
//	gomory/  : cutting-plane loop on top of simplex
//	bnb/     : boolean branch-and-bound
//	solver/  : Algorithm enum and the Solve dispatcher
//	sweep/   : cartesian option tables
//	cmd/minimax : command-line front end (glog)
//
// Quick example:
//
//	maximize   x1 + x2
//	subject to x1 + x2 <= 4
//
//	Simplex → x = (4, 0), z = 4
//	Tree    → x = (1, 1), z = 2   (x ∈ {0,1})
//
//	go get github.com/katalvlaran/minimax
package minimax
