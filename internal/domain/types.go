package domain

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"
)

// Answer is the printable value of one part.
type Answer string

// None is reported when a puzzle reaches a valid terminal state without an answer.
const None Answer = "none"

// Int formats an integer answer.
func Int[T constraints.Integer](v T) Answer {
	if v < 0 {
		return Answer(strconv.FormatInt(int64(v), 10))
	}
	return Answer(strconv.FormatUint(uint64(v), 10))
}

// Text wraps a textual answer (e.g. rendered glyphs).
func Text(s string) Answer { return Answer(s) }

// Params are named integer knobs for puzzles whose example and real input differ.
type Params map[string]int

// Int returns the named parameter or def when unset.
func (p Params) Int(name string, def int) int {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Merge returns a copy of p with the entries of o applied on top.
func (p Params) Merge(o Params) Params {
	out := make(Params, len(p)+len(o))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Input is one puzzle input split into lines.
type Input struct {
	Lines  []string
	Params Params
}

// Stats captures the cost of solving one part.
type Stats struct {
	Lines    int
	Duration time.Duration
}

// Result holds both answers of a solved day.
type Result struct {
	Day     int       `json:"day"`
	Title   string    `json:"title"`
	Answers [2]Answer `json:"answers"`
	Stats   [2]Stats  `json:"-"`
}

// Answer returns the answer for part p.
func (r Result) Answer(p Part) Answer { return r.Answers[p-1] }

// InputFile is the canonical input file name for day, e.g. day07.txt.
func InputFile(day int) string { return fmt.Sprintf("day%02d.txt", day) }

// InputMeta is a lightweight listing entry for a stored input.
type InputMeta struct {
	Day  int    `json:"day"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Listing describes one registered puzzle and where its input lives.
type Listing struct {
	Day   int
	Title string
	Input *InputMeta // nil when no input file was found
}

// Expectation pairs an example input with its documented answers.
type Expectation struct {
	Day    int    `yaml:"day" validate:"required,min=1,max=25"`
	File   string `yaml:"file,omitempty"`
	Params Params `yaml:"params,omitempty"`
	Part1  string `yaml:"part1,omitempty"`
	Part2  string `yaml:"part2,omitempty"`
}

// Name is the example file the expectation applies to.
func (e Expectation) Name() string {
	if e.File != "" {
		return e.File
	}
	return InputFile(e.Day)
}

// Want returns the expected answer for p and whether one is documented.
func (e Expectation) Want(p Part) (string, bool) {
	w := e.Part1
	if p == Part2 {
		w = e.Part2
	}
	return w, w != ""
}

// Check is the outcome of verifying one part against an expectation.
type Check struct {
	Expectation Expectation
	Part        Part
	Got         Answer
	Err         error
}

// OK reports whether the computed answer matched.
func (c Check) OK() bool {
	want, _ := c.Expectation.Want(c.Part)
	return c.Err == nil && string(c.Got) == want
}
