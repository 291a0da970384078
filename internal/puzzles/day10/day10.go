// Package day10 emulates the handheld's CPU and CRT.
package day10

import (
	"strings"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

const (
	ScreenWidth  = 40
	ScreenHeight = 6
)

// Instruction is either noop (Add == 0, Cycles == 1) or addx (Cycles == 2).
type Instruction struct {
	Add    int
	Cycles int
}

// Parse reads noop and addx instructions.
func Parse(lines []string) ([]Instruction, error) {
	prog := make([]Instruction, 0, len(lines))
	for i, l := range lines {
		switch {
		case l == "noop":
			prog = append(prog, Instruction{Cycles: 1})
		case strings.HasPrefix(l, "addx "):
			n, err := parse.Int(i, l, strings.TrimPrefix(l, "addx "))
			if err != nil {
				return nil, err
			}
			prog = append(prog, Instruction{Add: n, Cycles: 2})
		default:
			return nil, parse.Errorf(i, l, "unknown instruction")
		}
	}
	return prog, nil
}

// Trace runs prog and returns X during every cycle (index 0 is cycle 1) and
// the value of X after the last instruction completes.
func Trace(prog []Instruction) (during []int, final int) {
	x := 1
	for _, in := range prog {
		for c := 0; c < in.Cycles; c++ {
			during = append(during, x)
		}
		x += in.Add
	}
	return during, x
}

// SignalStrength sums cycle*X for cycles 20, 60, 100, ... that were executed.
func SignalStrength(during []int) int {
	total := 0
	for cycle := 20; cycle <= len(during); cycle += 40 {
		total += cycle * during[cycle-1]
	}
	return total
}

// Render draws one pixel per cycle; a pixel is lit when the sprite centred on
// X covers its column. Rows are separated by newlines with no trailing one.
func Render(during []int, width int) string {
	var b strings.Builder
	for i, x := range during {
		col := i % width
		if i > 0 && col == 0 {
			b.WriteByte('\n')
		}
		if d := col - x; d >= -1 && d <= 1 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 10 }
func (*Puzzle) Title() string { return "Cathode-Ray Tube" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	prog, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	during, _ := Trace(prog)
	return domain.Int(SignalStrength(during)), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	prog, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	during, _ := Trace(prog)
	if n := ScreenWidth * ScreenHeight; len(during) > n {
		during = during[:n]
	}
	return domain.Text(Render(during, ScreenWidth)), nil
}
