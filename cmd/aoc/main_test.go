package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunExamples(t *testing.T) {
	out, _, err := execute(t, "run", "--example", "1", "day15")
	require.NoError(t, err)
	assert.Equal(t,
		"Day 1: Calorie Counting\nPart 1: 24000\nPart 2: 45000\n"+
			"Day 15: Beacon Exclusion Zone\nPart 1: 26\nPart 2: 56000011\n", out)
}

func TestRunMultiLineAnswer(t *testing.T) {
	out, _, err := execute(t, "run", "--example", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Part 2:", lines[2])
	assert.Equal(t, "##..##..##..##..##..##..##..##..##..##..", lines[3])
}

func TestRunInputDirAndParams(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day09.txt"), []byte("R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"), 0o644))

	out, _, err := execute(t, "run", "--input-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Day 9: Rope Bridge\nPart 1: 13\nPart 2: 1\n", out)

	out, _, err = execute(t, "run", "--input-dir", dir, "--param", "knots=1", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Part 2: 13\n")
}

func TestConfigFileParams(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day09.txt"), []byte("R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"), 0o644))
	cfg := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input_dir: "+dir+"\nparams:\n  9:\n    knots: 1\n"), 0o644))

	out, _, err := execute(t, "--config", cfg, "run", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Part 2: 13\n")
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "run", "--example", "30")
	assert.ErrorContains(t, err, "invalid day")

	_, _, err = execute(t, "run", "--input-dir", t.TempDir())
	assert.ErrorContains(t, err, "no inputs found")

	_, _, err = execute(t, "run", "--example", "--param", "row", "15")
	assert.ErrorContains(t, err, "--param")

	_, _, err = execute(t, "--log-level", "loud", "list")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, _, err := execute(t, "verify")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "31 checks, 0 failed\n"), out)
	assert.NotContains(t, out, "FAIL")
}

func TestListAndLogs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3.txt"), []byte("x"), 0o644))

	out, logs, err := execute(t, "-v", "--input-dir", dir, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 15)
	assert.Contains(t, lines[0], "no input")
	assert.Contains(t, lines[2], filepath.Join(dir, "3.txt"))

	first := strings.SplitN(logs, "\n", 2)[0]
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &entry))
	assert.NotEmpty(t, entry["run_id"])
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.prom")
	_, _, err := execute(t, "--metrics-file", path, "run", "--example", "4")
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `aoc_solve_total{day="4",part="1",status="ok"} 1`)
}

func TestJSONOutput(t *testing.T) {
	out, _, err := execute(t, "--json", "run", "--example", "5")
	require.NoError(t, err)
	var res struct {
		Day     int      `json:"day"`
		Answers []string `json:"answers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.Day)
	assert.Equal(t, []string{"CMZ", "MCD"}, res.Answers)
}
