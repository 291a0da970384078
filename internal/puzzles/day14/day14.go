// Package day14 pours sand into a cave of rock paths.
package day14

import (
	"fmt"
	"strings"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/grid"
	"svw.info/aoc/internal/mathx"
	"svw.info/aoc/internal/parse"
)

// Source is where every grain enters, in cave coordinates (x, y).
var Source = Point{X: 500, Y: 0}

// Point is a cave coordinate; y grows downwards.
type Point struct{ X, Y int }

// Path is a polyline of axis-aligned rock segments.
type Path []Point

type Cell byte

const (
	Air Cell = iota
	Rock
	Sand
)

func (c Cell) glyph() byte {
	switch c {
	case Rock:
		return '#'
	case Sand:
		return 'o'
	}
	return '.'
}

// Outcome tells what happened to a dropped grain.
type Outcome int

const (
	Rested Outcome = iota
	Escaped
	Blocked
)

// Parse reads "x,y -> x,y -> ..." rock paths.
func Parse(lines []string) ([]Path, error) {
	var paths []Path
	for i, l := range lines {
		var p Path
		for _, tok := range strings.Split(l, " -> ") {
			xs, ys, err := parse.Cut(i, l, tok, ",")
			if err != nil {
				return nil, err
			}
			x, err := parse.Int(i, l, xs)
			if err != nil {
				return nil, err
			}
			y, err := parse.Int(i, l, ys)
			if err != nil {
				return nil, err
			}
			if x < 0 || y < 0 {
				return nil, parse.Errorf(i, l, "negative coordinate %d,%d", x, y)
			}
			if n := len(p); n > 0 && p[n-1].X != x && p[n-1].Y != y {
				return nil, parse.Errorf(i, l, "diagonal segment %d,%d -> %d,%d", p[n-1].X, p[n-1].Y, x, y)
			}
			p = append(p, Point{X: x, Y: y})
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return nil, parse.Wholef("no rock paths")
	}
	return paths, nil
}

// Cave is a rectangular slice of the cave starting at column minX and row 0.
// With a floor, an infinite rock floor lies two rows below the deepest rock
// and the cave is wide enough that no grain can pass its sides.
type Cave struct {
	cells *grid.Grid[Cell]
	minX  int
	floor bool
}

// NewCave rasterizes paths. Without a floor the cave spans exactly the rock.
func NewCave(paths []Path, floor bool) *Cave {
	minX, maxX, maxY := paths[0][0].X, paths[0][0].X, 0
	for _, p := range paths {
		for _, pt := range p {
			minX, maxX, maxY = min(minX, pt.X), max(maxX, pt.X), max(maxY, pt.Y)
		}
	}
	rows := maxY + 1
	if floor {
		// A grain at depth d is at most d columns from the source.
		rows = maxY + 2
		minX = min(minX, Source.X-rows)
		maxX = max(maxX, Source.X+rows)
	}
	c := &Cave{cells: grid.New[Cell](rows, maxX-minX+1), minX: minX, floor: floor}
	for _, p := range paths {
		for i := 1; i < len(p); i++ {
			c.segment(p[i-1], p[i])
		}
		if len(p) == 1 {
			c.set(p[0], Rock)
		}
	}
	return c
}

func (c *Cave) segment(a, b Point) {
	dx, dy := mathx.Sign(b.X-a.X), mathx.Sign(b.Y-a.Y)
	for p := a; ; p = (Point{X: p.X + dx, Y: p.Y + dy}) {
		c.set(p, Rock)
		if p == b {
			return
		}
	}
}

func (c *Cave) cell(p Point) grid.Point { return grid.Point{Row: p.Y, Col: p.X - c.minX} }

func (c *Cave) set(p Point, v Cell) { c.cells.Set(c.cell(p), v) }

// At returns the content at p. Points outside the cave are air, except the
// floor row when there is one.
func (c *Cave) At(p Point) Cell {
	if c.floor && p.Y == c.cells.Rows() {
		return Rock
	}
	v, _ := c.cells.At(c.cell(p))
	return v
}

func (c *Cave) inside(p Point) bool { return c.cells.In(c.cell(p)) }

// Drop lets one grain fall from Source: straight down, else down-left, else
// down-right. It rests when all three are blocked and escapes once it leaves
// the cave.
func (c *Cave) Drop() (Point, Outcome) {
	p := Source
	if !c.inside(p) {
		return p, Escaped
	}
	if c.At(p) != Air {
		return p, Blocked
	}
	for {
		moved := false
		for _, dx := range [...]int{0, -1, 1} {
			next := Point{X: p.X + dx, Y: p.Y + 1}
			if c.At(next) != Air {
				continue
			}
			if !c.inside(next) {
				return next, Escaped
			}
			p, moved = next, true
			break
		}
		if !moved {
			c.set(p, Sand)
			return p, Rested
		}
	}
}

// Fill drops grains until one does not rest and returns how many rested.
func (c *Cave) Fill() (int, Outcome) {
	n := 0
	for {
		_, out := c.Drop()
		if out != Rested {
			return n, out
		}
		n++
	}
}

// String renders the cave with '.', '#' and 'o', without the implied floor.
func (c *Cave) String() string {
	return c.cells.Render(Cell.glyph)
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 14 }
func (*Puzzle) Title() string { return "Regolith Reservoir" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	paths, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	n, _ := NewCave(paths, false).Fill()
	return domain.Int(n), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	paths, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	n, out := NewCave(paths, true).Fill()
	if out != Blocked {
		return "", fmt.Errorf("%w: grain escaped a cave with a floor", domain.ErrInvariant)
	}
	return domain.Int(n), nil
}
