// Package day11 simulates monkeys passing items by worry level.
package day11

import (
	"fmt"
	"slices"
	"strings"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// OpKind selects how a monkey changes the worry level while inspecting.
type OpKind int

const (
	OpAdd OpKind = iota
	OpMul
	OpSquare
)

// Operation is "new = old + n", "new = old * n" or "new = old * old".
type Operation struct {
	Kind    OpKind
	Operand uint64
}

// Apply updates w in place.
func (o Operation) Apply(w *Worry) {
	switch o.Kind {
	case OpAdd:
		w.Add(o.Operand)
	case OpMul:
		w.Mul(o.Operand)
	case OpSquare:
		w.Square()
	}
}

// Monkey holds items and routes each one by a single divisibility test.
type Monkey struct {
	Items     []Worry
	Op        Operation
	Divisor   uint64
	IfTrue    int
	IfFalse   int
	Inspected int
}

const (
	prefixItems   = "  Starting items:"
	prefixOp      = "  Operation: new = old "
	prefixTest    = "  Test: divisible by "
	prefixIfTrue  = "    If true: throw to monkey "
	prefixIfFalse = "    If false: throw to monkey "
)

// Parse builds the troop in two phases: every divisor is collected first so
// that each item can carry a remainder for all of them from the start.
func Parse(lines []string) ([]*Monkey, error) {
	var divisors []uint64
	for i, l := range lines {
		if rest, ok := strings.CutPrefix(l, prefixTest); ok {
			d, err := parse.Uint(i, l, rest)
			if err != nil {
				return nil, err
			}
			if d == 0 {
				return nil, parse.Errorf(i, l, "divisor must be positive")
			}
			divisors = append(divisors, d)
		}
	}
	mod, err := NewModuli(divisors)
	if err != nil {
		return nil, err
	}

	sections := parse.Sections(lines)
	if len(sections) == 0 {
		return nil, parse.Wholef("no monkeys")
	}
	troop := make([]*Monkey, 0, len(sections))
	for n, s := range sections {
		m, err := parseMonkey(s, n, mod)
		if err != nil {
			return nil, err
		}
		troop = append(troop, m)
	}
	for n, m := range troop {
		for _, target := range []int{m.IfTrue, m.IfFalse} {
			if target < 0 || target >= len(troop) {
				return nil, parse.Wholef("monkey %d throws to invalid monkey %d", n, target)
			}
		}
	}
	return troop, nil
}

func parseMonkey(s parse.Section, n int, mod *Moduli) (*Monkey, error) {
	if len(s.Lines) != 6 {
		return nil, parse.Errorf(s.Start, s.Lines[0], "monkey block has %d lines, want 6", len(s.Lines))
	}
	line := func(i int) (int, string) { return s.Start + i, s.Lines[i] }

	no, text := line(0)
	if text != fmt.Sprintf("Monkey %d:", n) {
		return nil, parse.Errorf(no, text, "want \"Monkey %d:\"", n)
	}

	m := &Monkey{}
	no, text = line(1)
	rest, err := parse.CutPrefix(no, text, text, prefixItems)
	if err != nil {
		return nil, err
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		for _, tok := range strings.Split(rest, ",") {
			v, err := parse.Uint(no, text, tok)
			if err != nil {
				return nil, err
			}
			m.Items = append(m.Items, mod.NewWorry(v))
		}
	}

	no, text = line(2)
	rest, err = parse.CutPrefix(no, text, text, prefixOp)
	if err != nil {
		return nil, err
	}
	if m.Op, err = parseOperation(no, text, rest); err != nil {
		return nil, err
	}

	no, text = line(3)
	if rest, err = parse.CutPrefix(no, text, text, prefixTest); err != nil {
		return nil, err
	}
	if m.Divisor, err = parse.Uint(no, text, rest); err != nil {
		return nil, err
	}

	no, text = line(4)
	if rest, err = parse.CutPrefix(no, text, text, prefixIfTrue); err != nil {
		return nil, err
	}
	if m.IfTrue, err = parse.Int(no, text, rest); err != nil {
		return nil, err
	}

	no, text = line(5)
	if rest, err = parse.CutPrefix(no, text, text, prefixIfFalse); err != nil {
		return nil, err
	}
	if m.IfFalse, err = parse.Int(no, text, rest); err != nil {
		return nil, err
	}
	return m, nil
}

func parseOperation(no int, text, expr string) (Operation, error) {
	op, arg, ok := strings.Cut(expr, " ")
	if !ok {
		return Operation{}, parse.Errorf(no, text, "want \"<+|*> <n|old>\"")
	}
	switch {
	case op == "*" && arg == "old":
		return Operation{Kind: OpSquare}, nil
	case op == "*" || op == "+":
		n, err := parse.Uint(no, text, arg)
		if err != nil {
			return Operation{}, err
		}
		if op == "*" {
			return Operation{Kind: OpMul, Operand: n}, nil
		}
		return Operation{Kind: OpAdd, Operand: n}, nil
	}
	return Operation{}, parse.Errorf(no, text, "unsupported operation %q", expr)
}

// Round lets every monkey, in order, inspect and throw all of its items.
// With relief the level is floor-divided by three after each inspection.
func Round(troop []*Monkey, relief bool) error {
	for _, m := range troop {
		items := m.Items
		m.Items = nil
		for _, w := range items {
			m.Op.Apply(&w)
			if relief {
				if err := w.Div(3); err != nil {
					return err
				}
			}
			m.Inspected++
			ok, err := w.DivisibleBy(m.Divisor)
			if err != nil {
				return err
			}
			target := m.IfFalse
			if ok {
				target = m.IfTrue
			}
			troop[target].Items = append(troop[target].Items, w)
		}
	}
	return nil
}

// MonkeyBusiness runs rounds and multiplies the two highest inspection counts.
func MonkeyBusiness(troop []*Monkey, rounds int, relief bool) (uint64, error) {
	if len(troop) < 2 {
		return 0, fmt.Errorf("%w: need at least two monkeys", domain.ErrInvariant)
	}
	for r := 0; r < rounds; r++ {
		if err := Round(troop, relief); err != nil {
			return 0, fmt.Errorf("round %d: %w", r+1, err)
		}
	}
	counts := make([]int, len(troop))
	for i, m := range troop {
		counts[i] = m.Inspected
	}
	slices.Sort(counts)
	return uint64(counts[len(counts)-1]) * uint64(counts[len(counts)-2]), nil
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 11 }
func (*Puzzle) Title() string { return "Monkey in the Middle" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	return solve(in, in.Params.Int("rounds", 20), true)
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	return solve(in, in.Params.Int("long_rounds", 10000), false)
}

func solve(in domain.Input, rounds int, relief bool) (domain.Answer, error) {
	troop, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	n, err := MonkeyBusiness(troop, rounds, relief)
	if err != nil {
		return "", err
	}
	return domain.Int(n), nil
}
