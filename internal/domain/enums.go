package domain

import "errors"

// Part selects which half of a puzzle is solved.
type Part int

const (
	Part1 Part = iota + 1
	Part2
)

// Parts lists both halves in solving order.
var Parts = [...]Part{Part1, Part2}

func (p Part) String() string {
	switch p {
	case Part1:
		return "1"
	case Part2:
		return "2"
	default:
		return "?"
	}
}

// ErrInvariant marks a broken assumption about the input or the algorithm.
// It is never retried; callers abort the run.
var ErrInvariant = errors.New("invariant violated")
