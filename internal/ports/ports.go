package ports

import (
	"context"
	"time"

	"svw.info/aoc/internal/domain"
)

// Puzzle solves both parts of one day. Each part parses its own model, so
// parts never observe each other's mutations.
type Puzzle interface {
	Day() int
	Title() string
	Part1(in domain.Input) (domain.Answer, error)
	Part2(in domain.Input) (domain.Answer, error)
}

// Catalog looks up registered puzzles.
type Catalog interface {
	All() []Puzzle
	Lookup(day int) (Puzzle, bool)
}

// InputSource provides the raw text of a day's input.
type InputSource interface {
	Load(ctx context.Context, day int) (string, error)
	List(ctx context.Context) ([]domain.InputMeta, error)
}

// ExampleSource serves the bundled example files and their documented answers.
type ExampleSource interface {
	InputSource
	Open(ctx context.Context, name string) (string, error)
	Expectations(ctx context.Context) ([]domain.Expectation, error)
}

// Recorder observes the outcome of solving one part.
type Recorder interface {
	Observe(day int, part domain.Part, d time.Duration, err error)
}
