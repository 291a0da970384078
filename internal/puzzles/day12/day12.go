// Package day12 finds the fewest steps up a hill on a height map.
package day12

import (
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/grid"
	"svw.info/aoc/internal/parse"
)

// Map holds elevations 0 ('a') through 25 ('z').
type Map struct {
	Heights *grid.Grid[int8]
	Start   grid.Point
	End     grid.Point
}

// Parse reads the height map. S is elevation a and E is elevation z; each
// must appear exactly once.
func Parse(lines []string) (*Map, error) {
	var starts, ends []grid.Point
	h, err := grid.Parse(lines, func(p grid.Point, b byte) (int8, error) {
		switch {
		case b == 'S':
			starts = append(starts, p)
			return 0, nil
		case b == 'E':
			ends = append(ends, p)
			return 'z' - 'a', nil
		case b >= 'a' && b <= 'z':
			return int8(b - 'a'), nil
		}
		return 0, parse.Errorf(p.Row, lines[p.Row], "unexpected elevation %q", b)
	})
	if err != nil {
		return nil, err
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, parse.Wholef("want exactly one S and one E, found %d and %d", len(starts), len(ends))
	}
	return &Map{Heights: h, Start: starts[0], End: ends[0]}, nil
}

// Distances is the fewest steps from every cell to the end, or -1 when the end
// cannot be reached.
type Distances struct {
	steps *grid.Grid[int]
}

// At returns the distance from p, with ok false when p cannot reach the end.
func (d Distances) At(p grid.Point) (int, bool) {
	n, ok := d.steps.At(p)
	return n, ok && n >= 0
}

// FromEnd runs one breadth-first search backwards from E. A forward step from a
// to b is allowed when b is at most one higher than a, so walking backwards
// from cur the predecessor n must satisfy height(n)+1 >= height(cur).
func (m *Map) FromEnd() Distances {
	steps := grid.New[int](m.Heights.Rows(), m.Heights.Cols())
	steps.Fill(-1)
	steps.Set(m.End, 0)
	queue := []grid.Point{m.End}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		here, _ := m.Heights.At(cur)
		dist, _ := steps.At(cur)
		for _, d := range grid.Neighbors4 {
			n := cur.Add(d)
			h, ok := m.Heights.At(n)
			if !ok || h+1 < here {
				continue
			}
			if seen, _ := steps.At(n); seen >= 0 {
				continue
			}
			steps.Set(n, dist+1)
			queue = append(queue, n)
		}
	}
	return Distances{steps: steps}
}

// Nearest returns the shortest distance from any lowest cell.
func (m *Map) Nearest(d Distances) (int, bool) {
	best, found := 0, false
	m.Heights.Each(func(p grid.Point, h int8) {
		if h != 0 {
			return
		}
		if n, ok := d.At(p); ok && (!found || n < best) {
			best, found = n, true
		}
	})
	return best, found
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 12 }
func (*Puzzle) Title() string { return "Hill Climbing Algorithm" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	m, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return answer(m.FromEnd().At(m.Start)), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	m, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return answer(m.Nearest(m.FromEnd())), nil
}

func answer(n int, ok bool) domain.Answer {
	if !ok {
		return domain.None
	}
	return domain.Int(n)
}
