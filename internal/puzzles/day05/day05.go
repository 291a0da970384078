// Package day05 replays crane instructions over stacks of crates.
package day05

import (
	"fmt"
	"slices"
	"strings"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// Stack holds crate ids; index 0 is the bottom.
type Stack []byte

// Move transfers Quantity crates from stack From to stack To (zero-based).
type Move struct {
	Quantity, From, To int
}

// Plan is the starting drawing plus the crane instructions.
type Plan struct {
	Stacks []Stack
	Moves  []Move
}

// Parse reads the drawing section and the move section.
func Parse(lines []string) (*Plan, error) {
	sections := parse.Sections(lines)
	if len(sections) != 2 {
		return nil, parse.Wholef("want a drawing and a move list, got %d sections", len(sections))
	}
	stacks, err := parseDrawing(sections[0])
	if err != nil {
		return nil, err
	}
	moves, err := parseMoves(sections[1], len(stacks))
	if err != nil {
		return nil, err
	}
	return &Plan{Stacks: stacks, Moves: moves}, nil
}

// parseDrawing reads crates bottom-up; the last line numbers the stacks.
func parseDrawing(s parse.Section) ([]Stack, error) {
	labelIdx := len(s.Lines) - 1
	labels := strings.Fields(s.Lines[labelIdx])
	for i, l := range labels {
		if l != fmt.Sprint(i+1) {
			return nil, parse.Errorf(s.Start+labelIdx, s.Lines[labelIdx], "stack label %q out of order", l)
		}
	}
	stacks := make([]Stack, len(labels))
	for r := labelIdx - 1; r >= 0; r-- {
		line := s.Lines[r]
		for col := 1; col < len(line); col += 4 {
			id := line[col]
			if id == ' ' {
				continue
			}
			if line[col-1] != '[' || col+1 >= len(line) || line[col+1] != ']' || id < 'A' || id > 'Z' {
				return nil, parse.Errorf(s.Start+r, line, "malformed crate at column %d", col)
			}
			n := (col - 1) / 4
			if n >= len(stacks) {
				return nil, parse.Errorf(s.Start+r, line, "crate outside of %d stacks", len(stacks))
			}
			stacks[n] = append(stacks[n], id)
		}
	}
	return stacks, nil
}

func parseMoves(s parse.Section, stacks int) ([]Move, error) {
	moves := make([]Move, 0, len(s.Lines))
	for i, l := range s.Lines {
		line := s.Start + i
		var m Move
		if err := parse.Scanf(line, l, "move %d from %d to %d", &m.Quantity, &m.From, &m.To); err != nil {
			return nil, err
		}
		if m.From < 1 || m.From > stacks || m.To < 1 || m.To > stacks || m.Quantity < 0 {
			return nil, parse.Errorf(line, l, "stack out of range 1..%d", stacks)
		}
		m.From--
		m.To--
		moves = append(moves, m)
	}
	return moves, nil
}

// Crane moves crates either one at a time or all at once.
type Crane int

const (
	OneAtATime Crane = iota // CrateMover 9000
	AllAtOnce               // CrateMover 9001
)

// Apply executes every move. The total number of crates never changes.
func (p *Plan) Apply(c Crane) error {
	for i, m := range p.Moves {
		from := p.Stacks[m.From]
		if m.Quantity > len(from) {
			return fmt.Errorf("%w: move %d takes %d crates from a stack of %d", domain.ErrInvariant, i+1, m.Quantity, len(from))
		}
		cut := len(from) - m.Quantity
		moving := slices.Clone(from[cut:])
		p.Stacks[m.From] = from[:cut]
		if c == OneAtATime {
			slices.Reverse(moving)
		}
		p.Stacks[m.To] = append(p.Stacks[m.To], moving...)
	}
	return nil
}

// Count returns the number of crates across all stacks.
func (p *Plan) Count() int {
	n := 0
	for _, s := range p.Stacks {
		n += len(s)
	}
	return n
}

// Tops returns the top crate of each stack, a space for an empty stack.
func (p *Plan) Tops() string {
	b := make([]byte, len(p.Stacks))
	for i, s := range p.Stacks {
		b[i] = ' '
		if len(s) > 0 {
			b[i] = s[len(s)-1]
		}
	}
	return string(b)
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 5 }
func (*Puzzle) Title() string { return "Supply Stacks" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) { return solve(in, OneAtATime) }
func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) { return solve(in, AllAtOnce) }

func solve(in domain.Input, c Crane) (domain.Answer, error) {
	plan, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	if err := plan.Apply(c); err != nil {
		return "", err
	}
	return domain.Text(plan.Tops()), nil
}
