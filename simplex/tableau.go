// SPDX-License-Identifier: MIT

// Package simplex - tableau construction and pivot loops.
//
// Layout ((m+1) × (N+1) matrix.Dense):
//   - row 0 is the index row: T[0][j] is the reduced cost d_j of column j,
//     T[0][0] the current objective value (maximize form);
//   - column 0 holds the basic values b_i;
//   - RowsIndex[i-1] is the id basic in row i, ColumnsIndex[j-1] the id of
//     column j. Ids are 1-based: 1..n original, then slack/surplus, then
//     artificial, then cut slacks in creation order.
//
// Row 0 encodes z + Σ d_j x_j = T[0][0]; a column improves the objective
// iff d_j < -eps. Minimize problems are solved as max of -C.
//
// Complexity:
//   - one pivot O((m+1)*(N+1)); choosePivot O(m*N).

package simplex

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/model"
)

// Tableau is the solver-owned working structure of one solve call.
type Tableau struct {
	t *matrix.Dense

	// RowsIndex[i-1] is the variable id basic in tableau row i.
	RowsIndex []int
	// ColumnsIndex[j-1] is the variable id of tableau column j.
	ColumnsIndex []int

	kinds  []VarKind // by id-1
	n      int       // original variables
	sign   float64   // +1 maximize, -1 minimize
	cost   []float64 // objective as given (problem direction)
	opts   Options
	kernel []matrix.Option
	pivots int // total pivots over the tableau lifetime
}

// NewTableau canonicalizes p (see package doc) without solving it.
// Rows with negative rhs are negated and their relation flipped first.
//
// Errors: any model.Problem.Validate error, ErrOptionViolation.
func NewTableau(p *model.Problem, opts ...Option) (*Tableau, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return newTableau(p, o)
}

func newTableau(p *model.Problem, o Options) (*Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, n := p.Dims()

	// Stage 1: normalize signs so every rhs is >= 0.
	rels := make([]model.Relation, m)
	flip := make([]float64, m)
	var ns, na, i, j int
	for i = 0; i < m; i++ {
		rels[i], flip[i] = p.R[i], 1
		if p.B[i] < 0 {
			rels[i], flip[i] = p.R[i].Flip(), -1
		}
		if rels[i] != model.Equal {
			ns++
		}
		if rels[i] != model.LessEqual {
			na++
		}
	}

	// Stage 2: allocate and fill.
	cols := n + ns + na
	d, err := matrix.NewDense(m+1, cols+1)
	if err != nil {
		return nil, fmt.Errorf("simplex.NewTableau: %w", err)
	}
	t := &Tableau{
		t:            d,
		RowsIndex:    make([]int, m),
		ColumnsIndex: make([]int, cols),
		kinds:        make([]VarKind, cols),
		n:            n,
		sign:         1,
		cost:         append([]float64(nil), p.C...),
		opts:         o,
		kernel:       []matrix.Option{matrix.WithEpsilon(o.Epsilon), matrix.WithWorkers(o.Workers)},
	}
	if p.Target == model.Minimize {
		t.sign = -1
	}
	for j = 0; j < cols; j++ {
		t.ColumnsIndex[j] = j + 1
	}

	sCol, aCol := n+1, n+ns+1
	var row []float64
	for i = 0; i < m; i++ {
		row, _ = d.RowView(i + 1)
		row[0] = flip[i] * p.B[i]
		for j = 0; j < n; j++ {
			row[j+1] = flip[i] * p.A[i][j]
		}
		switch rels[i] {
		case model.LessEqual:
			row[sCol] = 1
			t.kinds[sCol-1] = Slack
			t.RowsIndex[i] = sCol
			sCol++
		case model.GreaterEqual:
			row[sCol] = -1
			t.kinds[sCol-1] = Surplus
			sCol++
			row[aCol] = 1
			t.kinds[aCol-1] = Artificial
			t.RowsIndex[i] = aCol
			aCol++
		case model.Equal:
			row[aCol] = 1
			t.kinds[aCol-1] = Artificial
			t.RowsIndex[i] = aCol
			aCol++
		default:
			return nil, fmt.Errorf("simplex.NewTableau: row %d: %w", i, model.ErrUnsupportedRelation)
		}
	}

	return t, nil
}

// Rows returns the number of constraint rows (row 0 excluded).
func (t *Tableau) Rows() int { return t.t.Rows() - 1 }

// Cols returns the number of variable columns (column 0 excluded).
func (t *Tableau) Cols() int { return t.t.Cols() - 1 }

// Originals returns the number of decision variables.
func (t *Tableau) Originals() int { return t.n }

// Kind returns the class of variable id.
func (t *Tableau) Kind(id int) VarKind { return t.kinds[id-1] }

// Pivots returns how many pivots this tableau has performed.
func (t *Tableau) Pivots() int { return t.pivots }

// Row returns a copy of constraint row i (1..Rows()), column 0 included.
func (t *Tableau) Row(i int) ([]float64, error) {
	if i < 1 || i > t.Rows() {
		return nil, fmt.Errorf("simplex.Row(%d): %w", i, matrix.ErrOutOfRange)
	}

	return t.t.Row(i)
}

// ReducedCosts returns row 0 without column 0, in column order.
func (t *Tableau) ReducedCosts() []float64 {
	row, _ := t.t.Row(0)

	return row[1:]
}

// view is RowView for indices the tableau itself guarantees.
func (t *Tableau) view(i int) []float64 {
	row, _ := t.t.RowView(i)

	return row
}

// colOf returns the column position of id, or -1.
func (t *Tableau) colOf(id int) int {
	for j, v := range t.ColumnsIndex {
		if v == id {
			return j + 1
		}
	}

	return -1
}

// name renders an id as kind letter + id, e.g. x2, s4.
func (t *Tableau) name(id int) string { return fmt.Sprintf("%s%d", t.kinds[id-1], id) }

func (t *Tableau) checkCtx() error {
	if t.opts.Ctx == nil {
		return nil
	}
	select {
	case <-t.opts.Ctx.Done():
		return model.Canceled(t.opts.Ctx.Err())
	default:
		return nil
	}
}

// setObjective writes row 0 for "maximize Σ cost[j] x_j" (cost indexed by
// column position, cost[0] unused) and prices out every basic column.
func (t *Tableau) setObjective(cost []float64) {
	row0 := t.view(0)
	row0[0] = 0

	var i, j, k int
	for j = 1; j < len(row0); j++ {
		row0[j] = -cost[j]
	}
	var f float64
	var ri []float64
	for i = 1; i <= t.Rows(); i++ {
		k = t.colOf(t.RowsIndex[i-1])
		f = row0[k]
		if f == 0 {
			continue
		}
		ri = t.view(i)
		for j = 0; j < len(row0); j++ {
			row0[j] -= f * ri[j]
		}
		row0[k] = 0
	}
}

// pivot performs Gauss-Jordan on (r, c) and updates the basis.
func (t *Tableau) pivot(r, c int) error {
	leaving := t.RowsIndex[r-1]
	if err := matrix.GaussJordanInPlace(t.t, r, c, t.kernel...); err != nil {
		return fmt.Errorf("simplex.pivot(%d,%d): %w", r, c, err)
	}
	t.RowsIndex[r-1] = t.ColumnsIndex[c-1]
	t.pivots++

	h := t.opts.Hooks
	if h.Logging() {
		z, _ := t.t.At(0, 0)
		h.Logf("pivot %d: row %d col %d, %s leaves, %s enters, z=%g",
			t.pivots, r, c, t.name(leaving), t.name(t.RowsIndex[r-1]), t.sign*z)
	}

	return nil
}

// choosePivot scans every (row, column) pair with an improving column
// (d_j < -eps) and a positive entry (a_ij > eps) and returns the one with the
// smallest ratio b_i/a_ij. Ties within eps keep the first pair in row-major
// order. r == -1 means no pair exists; improving then tells optimal from
// unbounded.
func (t *Tableau) choosePivot() (r, c int, improving bool) {
	eps := t.opts.Epsilon
	row0 := t.view(0)
	cols := len(row0)

	var j int
	for j = 1; j < cols; j++ {
		if row0[j] < -eps {
			improving = true
			break
		}
	}
	r, c = -1, -1
	if !improving {
		return r, c, false
	}

	var (
		i     int
		ratio float64
		best  = math.Inf(1)
		ri    []float64
		b     float64
		rows  = t.Rows()
	)
	for i = 1; i <= rows; i++ {
		ri = t.view(i)
		b = math.Max(ri[0], 0) // clamp -0 and round-off negatives
		for j = 1; j < cols; j++ {
			if row0[j] >= -eps || ri[j] <= eps {
				continue
			}
			ratio = b / ri[j]
			if r < 0 || ratio < best-eps {
				r, c, best = i, j, ratio
			}
		}
	}

	return r, c, true
}

// Optimize runs the primal pivot loop from the current basis until no
// improving pair exists. The basis must be primal feasible.
//
// Returns model.Optimal or model.Unbounded.
// Errors: ErrPivotLimit, model.ErrCanceled, matrix.ErrDegeneratePivot.
func (t *Tableau) Optimize() (model.Status, error) {
	var steps int
	for {
		if err := t.checkCtx(); err != nil {
			return 0, err
		}
		r, c, improving := t.choosePivot()
		if r < 0 {
			if improving {
				t.opts.Hooks.Log("unbounded: improving column without positive entries")
				return model.Unbounded, nil
			}
			return model.Optimal, nil
		}
		if steps >= t.opts.MaxPivots {
			return 0, fmt.Errorf("simplex.Optimize: %d pivots: %w", steps, ErrPivotLimit)
		}
		if err := t.pivot(r, c); err != nil {
			return 0, err
		}
		steps++
	}
}

// DualSimplex restores primal feasibility while keeping row 0 dual
// feasible: the leaving row is the most negative b_r (first on ties), the
// entering column minimizes |d_j / a_rj| over a_rj < -eps (first on ties).
//
// Returns false when a negative row has no negative entry: the problem
// became infeasible.
func (t *Tableau) DualSimplex() (bool, error) {
	eps := t.opts.Epsilon

	var steps, i, j, r, c int
	var worst, best, ratio float64
	var ri, row0 []float64
	for {
		if err := t.checkCtx(); err != nil {
			return false, err
		}
		r, worst = -1, -eps
		for i = 1; i <= t.Rows(); i++ {
			if b := t.view(i)[0]; b < worst {
				r, worst = i, b
			}
		}
		if r < 0 {
			return true, nil
		}

		ri, row0 = t.view(r), t.view(0)
		c, best = -1, math.Inf(1)
		for j = 1; j < len(ri); j++ {
			if ri[j] >= -eps {
				continue
			}
			ratio = math.Abs(row0[j] / ri[j])
			if c < 0 || ratio < best-eps {
				c, best = j, ratio
			}
		}
		if c < 0 {
			t.opts.Hooks.Logf("dual simplex: row %d (%s) has no negative entry, infeasible", r, t.name(t.RowsIndex[r-1]))
			return false, nil
		}
		if steps >= t.opts.MaxPivots {
			return false, fmt.Errorf("simplex.DualSimplex: %d pivots: %w", steps, ErrPivotLimit)
		}
		if err := t.pivot(r, c); err != nil {
			return false, err
		}
		steps++
	}
}

// IsOptimal reports whether no column improves the objective.
func (t *Tableau) IsOptimal() bool {
	eps := t.opts.Epsilon
	for _, d := range t.ReducedCosts() {
		if d < -eps {
			return false
		}
	}

	return true
}

// Solve runs phase 1 (when artificials exist) and phase 2.
//
// Phase 1 maximizes -Σ artificials; an optimum below -eps means the
// constraints are infeasible. Artificials still basic at zero are driven
// out (or their redundant rows removed) and the artificial columns are
// dropped before the original objective is restored.
func (t *Tableau) Solve() (model.Status, error) {
	phases := 1
	if t.hasArtificial() {
		phases = 2
		feasible, err := t.phaseOne()
		if err != nil {
			return 0, err
		}
		t.opts.Hooks.Progress(1, phases)
		if !feasible {
			return model.Infeasible, nil
		}
	}

	t.opts.Hooks.Log("phase 2")
	t.setObjective(t.phaseTwoCost())
	status, err := t.Optimize()
	if err != nil {
		return 0, err
	}
	t.opts.Hooks.Progress(phases, phases)
	if status == model.Optimal {
		t.opts.Hooks.Logf("optimal z=%g after %d pivots", t.Value(), t.pivots)
	}

	return status, nil
}

func (t *Tableau) hasArtificial() bool {
	for _, id := range t.ColumnsIndex {
		if t.kinds[id-1] == Artificial {
			return true
		}
	}

	return false
}

func (t *Tableau) phaseOne() (bool, error) {
	t.opts.Hooks.Log("phase 1")
	cost := make([]float64, t.Cols()+1)
	for j, id := range t.ColumnsIndex {
		if t.kinds[id-1] == Artificial {
			cost[j+1] = -1
		}
	}
	t.setObjective(cost)
	if _, err := t.Optimize(); err != nil {
		return false, err
	}
	w, _ := t.t.At(0, 0)
	if w < -t.opts.Epsilon {
		t.opts.Hooks.Logf("infeasible: phase 1 optimum %g", -w)
		return false, nil
	}
	if err := t.driveOutArtificials(); err != nil {
		return false, err
	}

	return true, t.dropArtificialColumns()
}

// driveOutArtificials pivots every zero-level basic artificial out of the
// basis on the first non-artificial column with a non-zero entry; rows
// without one are linear combinations of others and are removed.
func (t *Tableau) driveOutArtificials() error {
	eps := t.opts.Epsilon
	var i, j, c int
	var ri []float64
	for i = 1; i <= t.Rows(); {
		if t.kinds[t.RowsIndex[i-1]-1] != Artificial {
			i++
			continue
		}
		ri = t.view(i)
		ri[0] = 0
		c = -1
		for j = 1; j < len(ri); j++ {
			if t.kinds[t.ColumnsIndex[j-1]-1] != Artificial && math.Abs(ri[j]) > eps {
				c = j
				break
			}
		}
		if c < 0 {
			t.opts.Hooks.Logf("row %d is redundant, removed", i)
			if err := t.t.RemoveRow(i); err != nil {
				return fmt.Errorf("simplex.driveOutArtificials: %w", err)
			}
			t.RowsIndex = append(t.RowsIndex[:i-1], t.RowsIndex[i:]...)
			continue
		}
		if err := t.pivot(i, c); err != nil {
			return err
		}
		i++
	}

	return nil
}

func (t *Tableau) dropArtificialColumns() error {
	for j := len(t.ColumnsIndex); j >= 1; j-- {
		if t.kinds[t.ColumnsIndex[j-1]-1] != Artificial {
			continue
		}
		if err := t.t.RemoveCol(j); err != nil {
			return fmt.Errorf("simplex.dropArtificialColumns: %w", err)
		}
		t.ColumnsIndex = append(t.ColumnsIndex[:j-1], t.ColumnsIndex[j:]...)
	}

	return nil
}

func (t *Tableau) phaseTwoCost() []float64 {
	cost := make([]float64, t.Cols()+1)
	for j, id := range t.ColumnsIndex {
		if t.kinds[id-1] == Original {
			cost[j+1] = t.sign * t.cost[id-1]
		}
	}

	return cost
}

// AddCut appends the row  Σ coef[j-1] x_j + g = rhs  with a fresh cut slack
// g that becomes basic in the new row. len(coef) must equal Cols() before
// the call. Returns the id of g.
func (t *Tableau) AddCut(coef []float64, rhs float64) (int, error) {
	if len(coef) != t.Cols() {
		return 0, fmt.Errorf("simplex.AddCut: %d coefficients, want %d: %w", len(coef), t.Cols(), matrix.ErrDimensionMismatch)
	}
	id := len(t.kinds) + 1
	if err := t.t.AppendCol(make([]float64, t.t.Rows())); err != nil {
		return 0, fmt.Errorf("simplex.AddCut: %w", err)
	}
	row := make([]float64, 0, len(coef)+2)
	row = append(row, rhs)
	row = append(row, coef...)
	row = append(row, 1)
	if err := t.t.AppendRow(row); err != nil {
		// Keep the tableau consistent: drop the column again.
		_ = t.t.RemoveCol(t.t.Cols() - 1)
		return 0, fmt.Errorf("simplex.AddCut: %w", err)
	}
	t.kinds = append(t.kinds, Cut)
	t.ColumnsIndex = append(t.ColumnsIndex, id)
	t.RowsIndex = append(t.RowsIndex, id)

	return id, nil
}

// Solution returns the values of the original variables; non-basic
// variables are 0 and |v| <= eps is snapped to 0.
func (t *Tableau) Solution() []float64 {
	x := make([]float64, t.n)
	for i, id := range t.RowsIndex {
		if id > t.n {
			continue
		}
		v, _ := t.t.At(i+1, 0)
		if math.Abs(v) <= t.opts.Epsilon {
			v = 0
		}
		x[id-1] = v
	}

	return x
}

// Value returns the current objective value in the problem's direction.
func (t *Tableau) Value() float64 {
	z, _ := t.t.At(0, 0)

	return t.sign * z
}

// Epsilon returns the tolerance this tableau runs with.
func (t *Tableau) Epsilon() float64 { return t.opts.Epsilon }

// Context returns the tableau's cancellation context.
func (t *Tableau) Context() context.Context { return t.opts.Ctx }

// String dumps the tableau with variable names, one row per line.
func (t *Tableau) String() string {
	var b strings.Builder
	b.WriteString("     |        b")
	for _, id := range t.ColumnsIndex {
		fmt.Fprintf(&b, " %8s", t.name(id))
	}
	b.WriteByte('\n')

	var i int
	var row []float64
	for i = 0; i < t.t.Rows(); i++ {
		if i == 0 {
			b.WriteString("   z |")
		} else {
			fmt.Fprintf(&b, "%4s |", t.name(t.RowsIndex[i-1]))
		}
		row = t.view(i)
		for _, v := range row {
			fmt.Fprintf(&b, " %8.4g", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
