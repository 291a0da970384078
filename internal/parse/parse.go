// Package parse holds the line-oriented helpers shared by every puzzle parser.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed matches every *Error via errors.Is.
var ErrMalformed = errors.New("malformed input")

// Error identifies the offending input line.
type Error struct {
	Line int // 1-based; 0 when the whole input is at fault
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed input: %v", e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrMalformed }

// Errorf builds an *Error for the zero-based line index.
func Errorf(line int, text, format string, args ...any) error {
	return &Error{Line: line + 1, Text: text, Err: fmt.Errorf(format, args...)}
}

// Wholef builds an *Error that is not tied to a single line.
func Wholef(format string, args ...any) error {
	return &Error{Err: fmt.Errorf(format, args...)}
}

// Lines splits text into lines. Carriage returns and one trailing newline are
// dropped; leading whitespace is preserved.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Section is a run of non-blank lines.
type Section struct {
	Start int // zero-based index of the first line in the input
	Lines []string
}

// Sections splits lines on blank lines. Consecutive blank lines do not
// produce empty sections.
func Sections(lines []string) []Section {
	var out []Section
	cur := Section{Start: -1}
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			if cur.Start >= 0 {
				out = append(out, cur)
				cur = Section{Start: -1}
			}
			continue
		}
		if cur.Start < 0 {
			cur.Start = i
		}
		cur.Lines = append(cur.Lines, l)
	}
	if cur.Start >= 0 {
		out = append(out, cur)
	}
	return out
}

// Int parses a base-10 integer token found on the given line.
func Int(line int, text, token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, Errorf(line, text, "expected a number, got %q", token)
	}
	return n, nil
}

// Uint parses a non-negative base-10 integer token.
func Uint(line int, text, token string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
	if err != nil {
		return 0, Errorf(line, text, "expected an unsigned number, got %q", token)
	}
	return n, nil
}

// CutPrefix strips prefix from s or reports a parse error naming it.
func CutPrefix(line int, text, s, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", Errorf(line, text, "expected prefix %q", prefix)
	}
	return rest, nil
}

// Cut splits s around sep or reports a parse error naming it.
func Cut(line int, text, s, sep string) (string, string, error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Errorf(line, text, "missing separator %q", sep)
	}
	return before, after, nil
}

// Scanf is fmt.Sscanf that also rejects text left over after the last verb.
func Scanf(line int, text, format string, args ...any) error {
	var tail string
	n, _ := fmt.Sscanf(text, format+"%s", append(args, &tail)...)
	switch {
	case n == len(args)+1:
		return Errorf(line, text, "trailing text %q", tail)
	case n != len(args):
		return Errorf(line, text, "want %q", format)
	}
	return nil
}
