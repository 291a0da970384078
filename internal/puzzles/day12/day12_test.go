package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/grid"
	"svw.info/aoc/internal/parse"
)

var example = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

func TestParse(t *testing.T) {
	m, err := Parse(example)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, m.Start)
	assert.Equal(t, grid.Point{Row: 2, Col: 5}, m.End)
	h, _ := m.Heights.At(m.End)
	assert.Equal(t, int8(25), h)
}

func TestDistances(t *testing.T) {
	m, err := Parse(example)
	require.NoError(t, err)
	d := m.FromEnd()

	n, ok := d.At(m.End)
	require.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = d.At(m.Start)
	require.True(t, ok)
	assert.Equal(t, 31, n)

	_, ok = d.At(grid.Point{Row: -1})
	assert.False(t, ok)
}

func TestExample(t *testing.T) {
	in := domain.Input{Lines: example}
	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("31"), got)

	got, err = New().Part2(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("29"), got)
}

func TestUnreachable(t *testing.T) {
	in := domain.Input{Lines: []string{"SazE"}}
	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.None, got)
}

func TestParseErrors(t *testing.T) {
	for name, lines := range map[string][]string{
		"no start": {"abE"},
		"two ends": {"SEE"},
		"bad cell": {"S1E"},
		"ragged":   {"Sab", "cE"},
		"empty":    nil,
	} {
		_, err := Parse(lines)
		assert.ErrorIs(t, err, parse.ErrMalformed, name)
	}
}
