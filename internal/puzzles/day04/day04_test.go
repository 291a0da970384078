package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

var example = []string{
	"2-4,6-8",
	"2-3,4-5",
	"5-7,7-9",
	"2-8,3-7",
	"6-6,4-6",
	"2-6,4-8",
}

func TestRangePredicates(t *testing.T) {
	cases := []struct {
		a, b              Range
		contains, overlap bool
	}{
		{Range{2, 8}, Range{3, 7}, true, true},
		{Range{3, 7}, Range{2, 8}, false, true},
		{Range{5, 7}, Range{7, 9}, false, true},
		{Range{2, 4}, Range{6, 8}, false, false},
		{Range{6, 6}, Range{6, 6}, true, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.contains, tc.a.Contains(tc.b), "%v contains %v", tc.a, tc.b)
		assert.Equal(t, tc.overlap, tc.a.Overlaps(tc.b), "%v overlaps %v", tc.a, tc.b)
		assert.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a))
	}
}

func TestExample(t *testing.T) {
	in := domain.Input{Lines: example}

	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("2"), got)

	got, err = New().Part2(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("4"), got)
}

func TestParseErrors(t *testing.T) {
	for _, l := range []string{"2-4", "2-4;6-8", "a-4,6-8", "4-2,6-8", "2-4,6"} {
		_, err := Parse([]string{l})
		assert.ErrorIs(t, err, parse.ErrMalformed, l)
	}
}
