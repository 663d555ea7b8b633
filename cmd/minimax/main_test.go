package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/minimax/model"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/solver"
	"github.com/stretchr/testify/require"
)

const twoVarYAML = `a:
  - [1, 1]
b: [4]
r: ["<="]
c: [1, 1]
target: max
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func baseConfig() config {
	return config{algo: "tree", eps: 1e-9, maxCuts: 200, maxPivots: 10_000, workers: 1}
}

func TestRunYAML(t *testing.T) {
	cfg := baseConfig()
	cfg.problem = writeTemp(t, "lp.yaml", twoVarYAML)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, nil, &out))
	require.Equal(t, "x = [1 1]  z = 2\n", out.String())

	cfg.algo = "simplex"
	out.Reset()
	require.NoError(t, run(context.Background(), cfg, nil, &out))
	require.Equal(t, "x = [4 0]  z = 4\n", out.String())
}

func TestRunStdinAndGrid(t *testing.T) {
	cfg := baseConfig()
	cfg.problem = "-"
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(twoVarYAML), &out))
	require.Equal(t, "x = [1 1]  z = 2\n", out.String())

	// x1 >= 5 and x1 <= 2.
	cfg = baseConfig()
	cfg.algo = "gomory"
	cfg.grid = writeTemp(t, "lp.csv", "1;max;\n1;>=;5\n1;<=;2\n")
	out.Reset()
	require.NoError(t, run(context.Background(), cfg, nil, &out))
	require.Equal(t, "system has no solution\n", out.String())

	cfg.grid = "-"
	out.Reset()
	require.NoError(t, run(context.Background(), cfg, strings.NewReader("1;max;\n1;<=;2\n"), &out))
	require.Equal(t, "x = [2]  z = 2\n", out.String())
}

func TestRunErrors(t *testing.T) {
	cfg := baseConfig()
	require.Error(t, run(context.Background(), cfg, nil, &bytes.Buffer{}))

	cfg.algo = "annealing"
	cfg.problem = writeTemp(t, "lp.yaml", twoVarYAML)
	require.ErrorIs(t, run(context.Background(), cfg, nil, &bytes.Buffer{}), solver.ErrUnsupportedAlgorithm)

	cfg = baseConfig()
	cfg.problem = writeTemp(t, "lp.yaml", twoVarYAML)
	cfg.grid = cfg.problem
	require.Error(t, run(context.Background(), cfg, nil, &bytes.Buffer{}))

	cfg = baseConfig()
	cfg.grid = writeTemp(t, "bad.csv", "1;sideways;\n")
	require.ErrorIs(t, run(context.Background(), cfg, nil, &bytes.Buffer{}), model.ErrInvalidGrid)
}

func TestRunPivotLimit(t *testing.T) {
	// max x1 + x2 s.t. x1 <= 1, x2 <= 1 takes two pivots.
	grid := "1;1;max;\n1;0;<=;1\n0;1;<=;1\n"
	cfg := baseConfig()
	cfg.algo = "simplex"
	cfg.grid = "-"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(grid), &out))
	require.Equal(t, "x = [1 1]  z = 2\n", out.String())

	cfg.maxPivots = 1
	err := run(context.Background(), cfg, strings.NewReader(grid), &bytes.Buffer{})
	require.ErrorIs(t, err, simplex.ErrPivotLimit)
}

func TestReportUnbounded(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, report(&out, solver.Result{Status: model.Unbounded}))
	require.Equal(t, "objective is unbounded\n", out.String())
}
