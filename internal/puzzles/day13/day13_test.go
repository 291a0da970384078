package day13

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

const example = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]`

func TestParsePacketRoundTrip(t *testing.T) {
	for _, s := range []string{"[]", "[10]", "[[1],[2,3,4]]", "[1,[2,[3,[4,[5,6,7]]]],8,9]", "[[[]]]"} {
		v, err := ParsePacket(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, v.String())
	}
}

func TestParsePacketErrors(t *testing.T) {
	for _, s := range []string{"", "1", "[1,", "[1]]", "[1 2]", "[a]", "[[1]", "[99999999999999999999]", "[1,[99999999999999999999]]"} {
		_, err := ParsePacket(s)
		assert.Error(t, err, s)
	}
}

func TestCompare(t *testing.T) {
	pairs, err := Parse(parse.Lines(example))
	require.NoError(t, err)
	var ordered []int
	for i, p := range pairs {
		if Compare(p.Left, p.Right) < 0 {
			ordered = append(ordered, i+1)
		}
	}
	assert.Equal(t, []int{1, 2, 4, 6}, ordered)

	ten, _ := ParsePacket("[10]")
	nine, _ := ParsePacket("[9]")
	assert.Positive(t, Compare(ten, nine))
	assert.Zero(t, Compare(List{Int(3)}, Int(3)))
}

func TestExample(t *testing.T) {
	in := domain.Input{Lines: parse.Lines(example)}
	got, err := New().Part1(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("13"), got)

	got, err = New().Part2(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer("140"), got)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"[1]", "[2]", "", "[3]"})
	assert.ErrorIs(t, err, parse.ErrMalformed)

	_, err = Parse([]string{"[1]", "[2"})
	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	_, err = Parse(parse.Lines("[1]\n[2]\n[3]\n\n[4]\n"))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
	assert.Contains(t, pe.Error(), "3 packets")

	_, err = Parse([]string{"[1]", "[2]", "", "[9]", "[99999999999999999999]"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)
	assert.Contains(t, pe.Error(), "out of range")
}
