// Package day08 surveys tree visibility in a height map.
package day08

import (
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/grid"
	"svw.info/aoc/internal/parse"
)

// Forest holds tree heights 0-9.
type Forest = grid.Grid[int8]

// Parse reads one digit per tree.
func Parse(lines []string) (*Forest, error) {
	return grid.Parse(lines, func(p grid.Point, b byte) (int8, error) {
		if b < '0' || b > '9' {
			return 0, parse.Errorf(p.Row, lines[p.Row], "tree height %q is not a digit", b)
		}
		return int8(b - '0'), nil
	})
}

// Visible marks every tree taller than all trees between it and some edge.
// The first scan runs top-left to bottom-right tracking the maxima seen from
// the top and from the left; the second runs in reverse for bottom and right.
func Visible(f *Forest) *grid.Grid[bool] {
	rows, cols := f.Rows(), f.Cols()
	vis := grid.New[bool](rows, cols)
	scan := func(reverse bool) {
		fromCol := make([]int8, cols)
		fromRow := make([]int8, rows)
		for i := range fromCol {
			fromCol[i] = -1
		}
		for i := range fromRow {
			fromRow[i] = -1
		}
		for i := 0; i < rows*cols; i++ {
			idx := i
			if reverse {
				idx = rows*cols - 1 - i
			}
			p := grid.Point{Row: idx / cols, Col: idx % cols}
			h, _ := f.At(p)
			if h > fromCol[p.Col] {
				fromCol[p.Col] = h
				vis.Set(p, true)
			}
			if h > fromRow[p.Row] {
				fromRow[p.Row] = h
				vis.Set(p, true)
			}
		}
	}
	scan(false)
	scan(true)
	return vis
}

// CountVisible returns the number of trees visible from outside the forest.
func CountVisible(f *Forest) int {
	n := 0
	Visible(f).Each(func(_ grid.Point, v bool) {
		if v {
			n++
		}
	})
	return n
}

// ViewingDistance counts trees seen from p looking along d, stopping at the
// first tree at least as tall as the one at p.
func ViewingDistance(f *Forest, p grid.Point, d grid.Point) int {
	h, ok := f.At(p)
	if !ok {
		return 0
	}
	n := 0
	for q := p.Add(d); ; q = q.Add(d) {
		other, ok := f.At(q)
		if !ok {
			return n
		}
		n++
		if other >= h {
			return n
		}
	}
}

// ScenicScore multiplies the viewing distances in all four directions.
// Edge trees score zero.
func ScenicScore(f *Forest, p grid.Point) int {
	score := 1
	for _, d := range grid.Neighbors4 {
		score *= ViewingDistance(f, p, d)
	}
	return score
}

// BestScenicScore returns the highest scenic score in the forest.
func BestScenicScore(f *Forest) int {
	best := 0
	f.Each(func(p grid.Point, _ int8) {
		best = max(best, ScenicScore(f, p))
	})
	return best
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 8 }
func (*Puzzle) Title() string { return "Treetop Tree House" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	f, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(CountVisible(f)), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	f, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(BestScenicScore(f)), nil
}
