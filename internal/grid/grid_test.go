package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/parse"
)

func digit(_ Point, b byte) (int, error) { return int(b - '0'), nil }

func TestParseAndAccess(t *testing.T) {
	g, err := Parse([]string{"123", "456"}, digit)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	v, ok := g.At(Point{Row: 1, Col: 2})
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, ok := g.At(p)
		assert.False(t, ok, "point %v should be out of bounds", p)
		assert.False(t, g.Set(p, 9))
	}

	require.True(t, g.Set(Point{Row: 0, Col: 0}, 9))
	v, _ = g.At(Point{})
	assert.Equal(t, 9, v)
}

func TestParseRejectsRaggedRows(t *testing.T) {
	_, err := Parse([]string{"123", "45"}, digit)
	require.ErrorIs(t, err, parse.ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Parse(nil, digit)
	assert.ErrorIs(t, err, parse.ErrMalformed)
}

func TestFindAndRender(t *testing.T) {
	g := New[bool](2, 3)
	g.Set(Point{Row: 1, Col: 1}, true)
	p, ok := g.Find(func(v bool) bool { return v })
	require.True(t, ok)
	assert.Equal(t, Point{Row: 1, Col: 1}, p)

	out := g.Render(func(v bool) byte {
		if v {
			return '#'
		}
		return '.'
	})
	assert.Equal(t, "...\n.#.", out)

	count := 0
	g.Each(func(_ Point, v bool) {
		if v {
			count++
		}
	})
	assert.Equal(t, 1, count)
	assert.Equal(t, Point{Row: 2, Col: 0}, Point{Row: 1}.Add(Down))
}
