package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

var example = []string{
	"vJrwpWtwJgWrhcsFMMfFFhFp",
	"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL",
	"PmmdzqPrVvPwwTWBwg",
	"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn",
	"ttgJtRGJQctTZtZT",
	"CrZsJsPPZsGzwwsLwLmpwMDw",
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 1, Priority('a'))
	assert.Equal(t, 26, Priority('z'))
	assert.Equal(t, 27, Priority('A'))
	assert.Equal(t, 52, Priority('Z'))
}

func TestShared(t *testing.T) {
	item, err := Shared("vJrwpWtwJgWr", "hcsFMMfFFhFp")
	require.NoError(t, err)
	assert.Equal(t, byte('p'), item)

	_, err = Shared("abc", "def")
	assert.ErrorIs(t, err, domain.ErrInvariant)
}

func TestExample(t *testing.T) {
	in := domain.Input{Lines: example}

	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("157"), got)

	got, err = New().Part2(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("70"), got)
}

func TestRejects(t *testing.T) {
	_, err := Parse([]string{"abc"})
	assert.ErrorIs(t, err, parse.ErrMalformed)

	_, err = Parse([]string{"ab1a"})
	assert.ErrorIs(t, err, parse.ErrMalformed)

	_, err = New().Part2(domain.Input{Lines: example[:4]})
	assert.ErrorIs(t, err, parse.ErrMalformed)
}
