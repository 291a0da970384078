// Package puzzles is the catalog of every solved day.
package puzzles

import (
	"slices"

	"svw.info/aoc/internal/ports"
	"svw.info/aoc/internal/puzzles/day01"
	"svw.info/aoc/internal/puzzles/day02"
	"svw.info/aoc/internal/puzzles/day03"
	"svw.info/aoc/internal/puzzles/day04"
	"svw.info/aoc/internal/puzzles/day05"
	"svw.info/aoc/internal/puzzles/day06"
	"svw.info/aoc/internal/puzzles/day07"
	"svw.info/aoc/internal/puzzles/day08"
	"svw.info/aoc/internal/puzzles/day09"
	"svw.info/aoc/internal/puzzles/day10"
	"svw.info/aoc/internal/puzzles/day11"
	"svw.info/aoc/internal/puzzles/day12"
	"svw.info/aoc/internal/puzzles/day13"
	"svw.info/aoc/internal/puzzles/day14"
	"svw.info/aoc/internal/puzzles/day15"
)

// Registry maps day numbers to puzzles.
type Registry struct {
	byDay map[int]ports.Puzzle
	days  []int
}

// NewRegistry indexes ps by day. A later puzzle for the same day replaces
// an earlier one.
func NewRegistry(ps ...ports.Puzzle) *Registry {
	r := &Registry{byDay: make(map[int]ports.Puzzle, len(ps))}
	for _, p := range ps {
		if _, ok := r.byDay[p.Day()]; !ok {
			r.days = append(r.days, p.Day())
		}
		r.byDay[p.Day()] = p
	}
	slices.Sort(r.days)
	return r
}

// Default holds every implemented day.
func Default() *Registry {
	return NewRegistry(
		day01.New(), day02.New(), day03.New(), day04.New(), day05.New(),
		day06.New(), day07.New(), day08.New(), day09.New(), day10.New(),
		day11.New(), day12.New(), day13.New(), day14.New(), day15.New(),
	)
}

// All returns the puzzles in day order.
func (r *Registry) All() []ports.Puzzle {
	out := make([]ports.Puzzle, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, r.byDay[d])
	}
	return out
}

func (r *Registry) Lookup(day int) (ports.Puzzle, bool) {
	p, ok := r.byDay[day]
	return p, ok
}

var _ ports.Catalog = (*Registry)(nil)
