// SPDX-License-Identifier: MIT

// Command minimax reads a linear program and prints its optimal vectors.
//
// Usage:
//
//	minimax -problem lp.yaml -algo gomory
//	minimax -grid lp.csv -algo tree -eps 1e-6 -v 1
//
// A YAML problem has keys a, b, r, c and target; a grid file is the
// ';'-separated table of model.ParseGrid. Progress and diagnostics go to
// glog (-v 1 for per-step progress, -logtostderr to see them).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/minimax/gomory"
	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/solver"
	"github.com/katalvlaran/minimax/trace"
)

// config is the parsed command line.
type config struct {
	problem   string
	grid      string
	algo      string
	eps       float64
	maxCuts   int
	maxPivots int
	workers   int
	timeout   time.Duration
}

func main() {
	var cfg config
	flag.StringVar(&cfg.problem, "problem", "", "YAML problem file ('-' for stdin)")
	flag.StringVar(&cfg.grid, "grid", "", "';'-separated grid problem file ('-' for stdin)")
	flag.StringVar(&cfg.algo, "algo", solver.Gomory.String(), "one of "+algorithmNames())
	flag.Float64Var(&cfg.eps, "eps", matrix.DefaultEpsilon, "comparison tolerance")
	flag.IntVar(&cfg.maxCuts, "max-cuts", gomory.DefaultMaxCuts, "Gomory cut limit")
	flag.IntVar(&cfg.maxPivots, "max-pivots", simplex.DefaultMaxPivots, "pivot limit per simplex loop")
	flag.IntVar(&cfg.workers, "workers", matrix.DefaultWorkers, "pivot kernel goroutines")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "abort after this long (0 = never)")
	flag.Parse()
	defer glog.Flush()

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		glog.Exitf("minimax: %v", err)
	}
}

func algorithmNames() string {
	names := make([]string, 0, len(solver.Algorithms()))
	for _, a := range solver.Algorithms() {
		names = append(names, a.String())
	}

	return strings.Join(names, ", ")
}

// run loads the problem, solves it and writes the report to out.
func run(ctx context.Context, cfg config, stdin io.Reader, out io.Writer) error {
	algo, err := solver.ParseAlgorithm(cfg.algo)
	if err != nil {
		return err
	}
	p, err := load(cfg, stdin)
	if err != nil {
		return err
	}
	m, n := p.Dims()
	glog.Infof("loaded %s problem: %d constraints, %d variables", p.Target, m, n)

	hooks := trace.Hooks{
		OnProgress: func(current, total int) {
			if glog.V(1) {
				glog.Infof("%v: step %d/%d", algo, current, total)
			}
		},
		OnLogLine: func(line string) {
			if glog.V(2) {
				glog.Info(line)
			}
		},
	}

	start := time.Now()
	res, err := solver.Solve(ctx, p, algo,
		solver.WithHooks(hooks),
		solver.WithEpsilon(cfg.eps),
		solver.WithMaxCuts(cfg.maxCuts),
		solver.WithMaxPivots(cfg.maxPivots),
		solver.WithWorkers(cfg.workers),
	)
	if err != nil {
		return err
	}
	glog.Infof("%v finished in %v: %v", algo, time.Since(start), res.Status)

	return report(out, res)
}

// load reads the problem named by cfg.
func load(cfg config, stdin io.Reader) (*model.Problem, error) {
	switch {
	case cfg.problem != "" && cfg.grid != "":
		return nil, errors.New("use either -problem or -grid, not both")
	case cfg.grid == "-":
		return readGrid(stdin)
	case cfg.grid != "":
		f, err := os.Open(cfg.grid)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return readGrid(f)
	case cfg.problem == "-":
		return model.DecodeYAML(stdin)
	case cfg.problem != "":
		f, err := os.Open(cfg.problem)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return model.DecodeYAML(f)
	default:
		return nil, errors.New("missing -problem or -grid")
	}
}

// readGrid parses a ';'-separated grid; rows may have different lengths.
func readGrid(r io.Reader) (*model.Problem, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	grid, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}

	return model.ParseGrid(grid)
}

// report prints one line per optimal vector, or the no-solution message.
func report(w io.Writer, res solver.Result) error {
	switch res.Status {
	case model.Infeasible:
		_, err := fmt.Fprintln(w, "system has no solution")
		return err
	case model.Unbounded:
		_, err := fmt.Fprintln(w, "objective is unbounded")
		return err
	}
	for i, x := range res.Vectors {
		if _, err := fmt.Fprintf(w, "x = %v  z = %g\n", x, res.Values[i]); err != nil {
			return err
		}
	}

	return nil
}
