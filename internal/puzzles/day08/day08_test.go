package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/grid"
	"svw.info/aoc/internal/parse"
)

var example = []string{
	"30373",
	"25512",
	"65332",
	"33549",
	"35390",
}

func TestVisibilityMap(t *testing.T) {
	f, err := Parse(example)
	require.NoError(t, err)
	got := Visible(f).Render(func(v bool) byte {
		if v {
			return '1'
		}
		return '0'
	})
	want := "11111\n" +
		"11101\n" +
		"11011\n" +
		"10101\n" +
		"11111"
	assert.Equal(t, want, got)
}

func TestScenicScore(t *testing.T) {
	f, err := Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 4, ScenicScore(f, grid.Point{Row: 1, Col: 2}))
	assert.Equal(t, 8, ScenicScore(f, grid.Point{Row: 3, Col: 2}))
	assert.Zero(t, ScenicScore(f, grid.Point{Row: 0, Col: 3}))
}

func TestExample(t *testing.T) {
	in := domain.Input{Lines: example}

	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("21"), got)

	got, err = New().Part2(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("8"), got)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"123", "12"})
	assert.ErrorIs(t, err, parse.ErrMalformed)
	_, err = Parse([]string{"12a"})
	assert.ErrorIs(t, err, parse.ErrMalformed)
}
