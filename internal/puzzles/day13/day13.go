// Package day13 orders distress signal packets.
package day13

import (
	"fmt"
	"slices"
	"strconv"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// Dividers are inserted before sorting in part two.
var Dividers = [2]string{"[[2]]", "[[6]]"}

type parser struct {
	src string
	pos int
}

// ParsePacket reads one packet. It must be a list and consume the whole text.
func ParsePacket(text string) (List, error) {
	p := &parser{src: text}
	if p.peek() != '[' {
		return nil, p.errorf("packet must start with '['")
	}
	v, err := p.list()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing characters")
	}
	return v, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: "+format, append([]any{p.pos}, args...)...)
}

func (p *parser) value() (Value, error) {
	switch c := p.peek(); {
	case c == '[':
		return p.list()
	case c >= '0' && c <= '9':
		return p.int()
	case c == 0:
		return nil, p.errorf("unexpected end of packet")
	default:
		return nil, p.errorf("unexpected %q", c)
	}
}

func (p *parser) int() (Int, error) {
	start := p.pos
	for c := p.peek(); c >= '0' && c <= '9'; c = p.peek() {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		p.pos = start
		return 0, p.errorf("integer out of range")
	}
	return Int(n), nil
}

func (p *parser) list() (List, error) {
	p.pos++ // '['
	l := List{}
	if p.peek() == ']' {
		p.pos++
		return l, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		l = append(l, v)
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return l, nil
		case 0:
			return nil, p.errorf("unbalanced brackets")
		default:
			return nil, p.errorf("expected ',' or ']', got %q", p.peek())
		}
	}
}

// Pair is one left/right packet pair from the input.
type Pair struct {
	Left, Right List
}

// Parse reads packet pairs. Each blank-line separated section holds exactly
// one pair.
func Parse(lines []string) ([]Pair, error) {
	sections := parse.Sections(lines)
	if len(sections) == 0 {
		return nil, parse.Wholef("no packets")
	}
	pairs := make([]Pair, 0, len(sections))
	for _, s := range sections {
		if len(s.Lines) != 2 {
			return nil, parse.Errorf(s.Start, s.Lines[0], "pair has %d packets, want 2", len(s.Lines))
		}
		var pair [2]List
		for j, l := range s.Lines {
			v, err := ParsePacket(l)
			if err != nil {
				return nil, &parse.Error{Line: s.Start + j + 1, Text: l, Err: err}
			}
			pair[j] = v
		}
		pairs = append(pairs, Pair{Left: pair[0], Right: pair[1]})
	}
	return pairs, nil
}

// OrderedIndexSum sums the 1-based indices of pairs already in order.
func OrderedIndexSum(pairs []Pair) int {
	sum := 0
	for i, p := range pairs {
		if Compare(p.Left, p.Right) < 0 {
			sum += i + 1
		}
	}
	return sum
}

// DecoderKey sorts every packet together with the dividers and multiplies the
// dividers' 1-based positions.
func DecoderKey(pairs []Pair) (int, error) {
	type entry struct {
		v       List
		divider bool
	}
	all := make([]entry, 0, 2*len(pairs)+len(Dividers))
	for _, p := range pairs {
		all = append(all, entry{v: p.Left}, entry{v: p.Right})
	}
	for _, d := range Dividers {
		v, err := ParsePacket(d)
		if err != nil {
			return 0, err
		}
		all = append(all, entry{v: v, divider: true})
	}
	slices.SortStableFunc(all, func(a, b entry) int { return Compare(a.v, b.v) })

	key := 1
	for i, e := range all {
		if e.divider {
			key *= i + 1
		}
	}
	return key, nil
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 13 }
func (*Puzzle) Title() string { return "Distress Signal" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	pairs, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(OrderedIndexSum(pairs)), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	pairs, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	key, err := DecoderKey(pairs)
	if err != nil {
		return "", err
	}
	return domain.Int(key), nil
}
