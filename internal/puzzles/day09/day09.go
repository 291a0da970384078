// Package day09 simulates a rope whose knots follow the head.
package day09

import (
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/mathx"
	"svw.info/aoc/internal/parse"
)

// Point is a position on the plane; Y grows upwards.
type Point struct{ X, Y int }

// Step is a head motion repeated Count times.
type Step struct {
	Dir   Point
	Count int
}

var directions = map[byte]Point{
	'R': {X: 1},
	'L': {X: -1},
	'U': {Y: 1},
	'D': {Y: -1},
}

// Parse reads lines like "R 4".
func Parse(lines []string) ([]Step, error) {
	steps := make([]Step, 0, len(lines))
	for i, l := range lines {
		if len(l) < 3 || l[1] != ' ' {
			return nil, parse.Errorf(i, l, "want \"<R|L|U|D> N\"")
		}
		dir, ok := directions[l[0]]
		if !ok {
			return nil, parse.Errorf(i, l, "unknown direction %q", l[0])
		}
		n, err := parse.Int(i, l, l[2:])
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, parse.Errorf(i, l, "distance must be positive")
		}
		steps = append(steps, Step{Dir: dir, Count: n})
	}
	return steps, nil
}

// Follow moves tail one step toward head when they no longer touch.
// Two apart along a single axis moves along that axis; any other separation
// of more than two combined moves diagonally.
func Follow(tail, head Point) Point {
	dx, dy := head.X-tail.X, head.Y-tail.Y
	ax, ay := mathx.Abs(dx), mathx.Abs(dy)
	switch {
	case ax == 2 && ay == 0:
		tail.X += mathx.Sign(dx)
	case ax == 0 && ay == 2:
		tail.Y += mathx.Sign(dy)
	case ax+ay > 2 && ax > 0 && ay > 0:
		tail.X += mathx.Sign(dx)
		tail.Y += mathx.Sign(dy)
	}
	return tail
}

// Rope is a head followed by a chain of trailing knots.
type Rope struct {
	Knots []Point // Knots[0] is the head
}

// NewRope returns a rope with tail trailing knots, all at the origin.
func NewRope(tail int) *Rope {
	return &Rope{Knots: make([]Point, tail+1)}
}

// Move moves the head one unit along d and lets every knot follow in order.
func (r *Rope) Move(d Point) {
	r.Knots[0].X += d.X
	r.Knots[0].Y += d.Y
	for i := 1; i < len(r.Knots); i++ {
		r.Knots[i] = Follow(r.Knots[i], r.Knots[i-1])
	}
}

// Tail is the last knot.
func (r *Rope) Tail() Point { return r.Knots[len(r.Knots)-1] }

// TailPositions counts the distinct positions visited by the last knot.
func TailPositions(steps []Step, tail int) int {
	r := NewRope(tail)
	seen := map[Point]struct{}{r.Tail(): {}}
	for _, s := range steps {
		for i := 0; i < s.Count; i++ {
			r.Move(s.Dir)
			seen[r.Tail()] = struct{}{}
		}
	}
	return len(seen)
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 9 }
func (*Puzzle) Title() string { return "Rope Bridge" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) { return solve(in, 1) }

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	return solve(in, in.Params.Int("knots", 9))
}

func solve(in domain.Input, tail int) (domain.Answer, error) {
	if tail < 1 {
		return "", parse.Wholef("rope needs at least one trailing knot, got %d", tail)
	}
	steps, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(TailPositions(steps, tail)), nil
}
