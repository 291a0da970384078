// Package grid provides an owned, rectangular, bounds-checked 2D array.
package grid

import (
	"strings"

	"svw.info/aoc/internal/parse"
)

// Point identifies a cell on a grid.
type Point struct {
	Row int
	Col int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{Row: p.Row + d.Row, Col: p.Col + d.Col} }

var (
	Up    = Point{Row: -1}
	Down  = Point{Row: 1}
	Left  = Point{Col: -1}
	Right = Point{Col: 1}
)

// Neighbors4 are the orthogonal steps.
var Neighbors4 = [...]Point{Up, Down, Left, Right}

// Grid stores rows*cols cells in row-major order.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New allocates a grid filled with the zero value of T.
func New[T any](rows, cols int) *Grid[T] {
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

// Parse builds a grid from equal-length lines, converting each byte with cell.
func Parse[T any](lines []string, cell func(p Point, b byte) (T, error)) (*Grid[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, parse.Wholef("empty grid")
	}
	g := New[T](len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, parse.Errorf(r, line, "row has %d cells, want %d", len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			v, err := cell(Point{Row: r, Col: c}, line[c])
			if err != nil {
				return nil, err
			}
			g.cells[r*g.cols+c] = v
		}
	}
	return g, nil
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }

// In reports whether p lies on the grid.
func (g *Grid[T]) In(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p; ok is false when p is out of bounds.
func (g *Grid[T]) At(p Point) (v T, ok bool) {
	if !g.In(p) {
		return v, false
	}
	return g.cells[p.Row*g.cols+p.Col], true
}

// Set stores v at p and reports whether p was in bounds.
func (g *Grid[T]) Set(p Point, v T) bool {
	if !g.In(p) {
		return false
	}
	g.cells[p.Row*g.cols+p.Col] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for i, v := range g.cells {
		fn(Point{Row: i / g.cols, Col: i % g.cols}, v)
	}
}

// Find returns the first point whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(v T) bool) (Point, bool) {
	for i, v := range g.cells {
		if pred(v) {
			return Point{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Point{}, false
}

// Render draws the grid one line per row without a trailing newline.
func (g *Grid[T]) Render(glyph func(v T) byte) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteByte(glyph(g.cells[r*g.cols+c]))
		}
	}
	return b.String()
}
