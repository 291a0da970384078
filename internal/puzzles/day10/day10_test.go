package day10

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

const example = `addx 15
addx -11
addx 6
addx -3
addx 5
addx -1
addx -8
addx 13
addx 4
noop
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx -35
addx 1
addx 24
addx -19
addx 1
addx 16
addx -11
noop
noop
addx 21
addx -15
noop
noop
addx -3
addx 9
addx 1
addx -3
addx 8
addx 1
addx 5
noop
noop
noop
noop
noop
addx -36
noop
addx 1
addx 7
noop
noop
noop
addx 2
addx 6
noop
noop
noop
noop
noop
addx 1
noop
noop
addx 7
addx 1
noop
addx -13
addx 13
addx 7
noop
addx 1
addx -33
noop
noop
noop
addx 2
noop
noop
noop
addx 8
noop
addx -1
addx 2
addx 1
noop
addx 17
addx -9
addx 1
addx 1
addx -3
addx 11
noop
noop
addx 1
noop
addx 1
noop
noop
addx -13
addx -19
addx 1
addx 3
addx 26
addx -30
addx 12
addx -1
addx 3
addx 1
noop
noop
noop
addx -9
addx 18
addx 1
addx 2
noop
noop
addx 9
noop
noop
noop
addx -1
addx 2
addx -37
addx 1
addx 3
noop
addx 15
addx -21
addx 22
addx -6
addx 1
noop
addx 2
addx 1
noop
addx -10
noop
noop
addx 20
addx 1
addx 2
addx 2
addx -6
addx -11
noop
noop
noop`

const screen = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....`

func TestSmallProgram(t *testing.T) {
	prog, err := Parse([]string{"noop", "addx 3", "addx -5"})
	require.NoError(t, err)
	during, final := Trace(prog)
	if diff := cmp.Diff([]int{1, 1, 1, 4, 4}, during); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, -1, final)
}

func TestRegisterDuringCycles(t *testing.T) {
	prog, err := Parse(parse.Lines(example))
	require.NoError(t, err)
	during, _ := Trace(prog)
	require.Len(t, during, 240)

	want := map[int]int{20: 21, 60: 19, 100: 18, 140: 21, 180: 16, 220: 18}
	for cycle, x := range want {
		assert.Equal(t, x, during[cycle-1], "cycle %d", cycle)
	}
	assert.Equal(t, 13140, SignalStrength(during))
}

func TestExample(t *testing.T) {
	in := domain.Input{Lines: parse.Lines(example)}

	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("13140"), got)

	got, err = New().Part2(in)
	require.NoError(t, err)
	if diff := cmp.Diff(strings.Split(screen, "\n"), strings.Split(string(got), "\n")); diff != "" {
		t.Fatalf("CRT mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, strings.HasSuffix(string(got), "\n"))
}

func TestUnknownInstruction(t *testing.T) {
	_, err := Parse([]string{"noop", "mulx 2"})
	assert.ErrorIs(t, err, parse.ErrMalformed)
	_, err = Parse([]string{"addx two"})
	assert.ErrorIs(t, err, parse.ErrMalformed)
}
