package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/runner"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// squareFile is the 2×2 grid with edges 0-1, 0-2, 1-3, 2-3 and goal 3.
const squareFile = "2\n1 2\n0 3\n0 3\n1 2\n3\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestSolve_Text(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	out, _, err := execute(t, "solve", file, "--strategy", "bfs")
	require.NoError(t, err)

	assert.Contains(t, out, "strategy: bfs\n")
	assert.Contains(t, out, "path:     0 1 3\n")
	assert.Contains(t, out, "explored: 0 1\n")
	assert.Contains(t, out, "steps:    3\n")
}

func TestSolve_IterativeDeepening(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	out, _, err := execute(t, "solve", file, "-s", "iddfs")
	require.NoError(t, err)

	assert.Contains(t, out, "strategy: ids\n")
	assert.Contains(t, out, "explored: limit 1: 0\n")
	assert.Contains(t, out, "explored: limit 2: 0 1\n")
	assert.Contains(t, out, "steps:    5\n")
	assert.Contains(t, out, "limit:    2\n")
}

func TestSolve_JSON(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	out, _, err := execute(t, "solve", file, "--strategy", "ucs", "--json")
	require.NoError(t, err)

	var rep runner.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, search.StrategyUCS, rep.Strategy)
	assert.Equal(t, []maze.Node{0, 1, 3}, rep.Path)
	assert.Equal(t, []maze.Node{0, 1, 2}, rep.Explored)
	assert.Equal(t, 4, rep.Steps)
}

func TestSolve_DefaultStrategyFromConfig(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	cfgFile := writeFile(t, "mazepath.yaml", "search:\n  strategy: greedy\n")

	out, _, err := execute(t, "solve", file, "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: greedy\n")

	out, _, err = execute(t, "solve", file)
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: astar\n")
}

func TestSolve_StartAndDepthLimit(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	out, _, err := execute(t, "solve", file, "--strategy", "dls", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "path:     none\n")
	assert.Contains(t, out, "limit:    1\n")

	out, _, err = execute(t, "solve", file, "--strategy", "bfs", "--start", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "path:     \n", "start == goal yields an empty path")
}

func TestSolve_Errors(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)

	_, _, err := execute(t, "solve", file, "--strategy", "zigzag")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, _, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", writeFile(t, "bad.txt", "2\n1 x\n"))
	assert.ErrorIs(t, err, maze.ErrSyntax)

	_, _, err = execute(t, "solve", file, "--strategy", "dls")
	assert.ErrorIs(t, err, search.ErrMissingLimit)

	_, _, err = execute(t, "solve", file, "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "solve")
	assert.Error(t, err)
}

func TestSolve_DebugLogToStderr(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	out, errOut, err := execute(t, "solve", file, "--strategy", "dfs", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, errOut, `"msg":"maze loaded"`)
	assert.NotContains(t, out, "maze loaded")
}

func TestCompare(t *testing.T) {
	file := writeFile(t, "square.txt", squareFile)
	out, _, err := execute(t, "compare", file)
	require.NoError(t, err)

	for _, s := range search.Strategies() {
		assert.Contains(t, out, string(s))
	}
	assert.Contains(t, out, "STRATEGY")
	assert.NotContains(t, out, "false")
}

func TestGenerate_ThenSolve(t *testing.T) {
	out, _, err := execute(t, "generate", "--size", "6", "--density", "1", "--seed", "3")
	require.NoError(t, err)

	m, goal, err := maze.Parse(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, maze.Node(35), goal)
	require.NoError(t, m.Validate())

	file := writeFile(t, "open.txt", out)
	out, _, err = execute(t, "solve", file, "--strategy", "bfs", "--json")
	require.NoError(t, err)
	var rep runner.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Path, 11, "manhattan distance 10 on an open grid")

	again, _, err := execute(t, "generate", "--size", "6", "--density", "0.5", "--seed", "9")
	require.NoError(t, err)
	twice, _, err := execute(t, "generate", "--size", "6", "--density", "0.5", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, again, twice)

	_, _, err = execute(t, "generate", "--density", "2")
	assert.ErrorIs(t, err, maze.ErrBadDensity)
}
