// Package day04 compares elf cleanup assignments.
package day04

import (
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// Range is an inclusive section interval; From <= To.
type Range struct {
	From, To int
}

// Contains reports whether o lies completely within r.
func (r Range) Contains(o Range) bool { return r.From <= o.From && r.To >= o.To }

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool { return r.From <= o.To && r.To >= o.From }

// Pair holds the two assignments on one line.
type Pair struct {
	First, Second Range
}

func parseRange(line int, text, s string) (Range, error) {
	a, b, err := parse.Cut(line, text, s, "-")
	if err != nil {
		return Range{}, err
	}
	from, err := parse.Int(line, text, a)
	if err != nil {
		return Range{}, err
	}
	to, err := parse.Int(line, text, b)
	if err != nil {
		return Range{}, err
	}
	if from > to {
		return Range{}, parse.Errorf(line, text, "range %d-%d is reversed", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Parse reads lines like "2-4,6-8".
func Parse(lines []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(lines))
	for i, l := range lines {
		a, b, err := parse.Cut(i, l, l, ",")
		if err != nil {
			return nil, err
		}
		first, err := parseRange(i, l, a)
		if err != nil {
			return nil, err
		}
		second, err := parseRange(i, l, b)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{First: first, Second: second})
	}
	return pairs, nil
}

// Count returns how many pairs satisfy pred.
func Count(pairs []Pair, pred func(Pair) bool) int {
	n := 0
	for _, p := range pairs {
		if pred(p) {
			n++
		}
	}
	return n
}

// FullyContained is true when either range contains the other.
func FullyContained(p Pair) bool { return p.First.Contains(p.Second) || p.Second.Contains(p.First) }

// Overlapping is true when the ranges share any section.
func Overlapping(p Pair) bool { return p.First.Overlaps(p.Second) }

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 4 }
func (*Puzzle) Title() string { return "Camp Cleanup" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	pairs, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(Count(pairs, FullyContained)), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	pairs, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(Count(pairs, Overlapping)), nil
}
