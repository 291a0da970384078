package terminal

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)
	require.NoError(t, p.Result(domain.Result{Day: 10, Title: "Cathode-Ray Tube", Answers: [2]domain.Answer{"13140", "#.\n.#"}}))
	assert.Equal(t, "Day 10: Cathode-Ray Tube\nPart 1: 13140\nPart 2:\n#.\n.#\n", buf.String())
}

func TestResultNone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPlain(&buf).Result(domain.Result{Day: 12, Title: "Hill", Answers: [2]domain.Answer{domain.None, "1"}}))
	assert.Equal(t, "Day 12: Hill\nPart 1: none\nPart 2: 1\n", buf.String())
}

func TestNonTerminalWriterIsPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Result(domain.Result{Day: 1, Title: "Calorie Counting", Answers: [2]domain.Answer{"1", "2"}}))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestResultJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)
	p.JSON = true
	require.NoError(t, p.Result(domain.Result{Day: 5, Title: "Supply Stacks", Answers: [2]domain.Answer{"CMZ", "MCD"}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(5), got["day"])
	assert.Equal(t, []any{"CMZ", "MCD"}, got["answers"])
}

func TestPuzzles(t *testing.T) {
	var buf bytes.Buffer
	err := NewPlain(&buf).Puzzles([]domain.Listing{
		{Day: 1, Title: "Calorie Counting", Input: &domain.InputMeta{Day: 1, Path: "inputs/day01.txt"}},
		{Day: 2, Title: "Rock Paper Scissors"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		" 1  Calorie Counting           inputs/day01.txt\n"+
			" 2  Rock Paper Scissors        no input\n", buf.String())
}

func TestVerification(t *testing.T) {
	exp := domain.Expectation{Day: 4, Part1: "2", Part2: "4"}
	var buf bytes.Buffer
	err := NewPlain(&buf).Verification([]domain.Check{
		{Expectation: exp, Part: domain.Part1, Got: "2"},
		{Expectation: exp, Part: domain.Part2, Got: "5"},
		{Expectation: domain.Expectation{Day: 9, File: "day09_larger.txt", Part2: "36"}, Part: domain.Part2, Err: errors.New("boom")},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"ok   day  4 part 1  day04.txt\n"+
			"FAIL day  4 part 2  day04.txt: want \"4\", got \"5\"\n"+
			"FAIL day  9 part 2  day09_larger.txt: boom\n"+
			"3 checks, 2 failed\n", buf.String())
}
