// Package terminal renders run results for humans or, with JSON set, for
// scripts.
package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"svw.info/aoc/internal/domain"
)

type Printer struct {
	w    io.Writer
	JSON bool

	title lipgloss.Style
	label lipgloss.Style
	none  lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
}

// New styles output for w. Writers that are not terminals get plain text.
func New(w io.Writer) *Printer {
	return newPrinter(w, lipgloss.NewRenderer(w))
}

// NewPlain never emits escape sequences.
func NewPlain(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return newPrinter(w, r)
}

func newPrinter(w io.Writer, r *lipgloss.Renderer) *Printer {
	return &Printer{
		w:     w,
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("6")),
		none:  r.NewStyle().Faint(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Result prints a title line and one line per part. Multi-line answers start
// on the line after their label.
func (p *Printer) Result(r domain.Result) error {
	if p.JSON {
		return json.NewEncoder(p.w).Encode(r)
	}
	var b strings.Builder
	b.WriteString(p.title.Render(fmt.Sprintf("Day %d: %s", r.Day, r.Title)))
	b.WriteByte('\n')
	for _, part := range domain.Parts {
		b.WriteString(p.label.Render(fmt.Sprintf("Part %s:", part)))
		a := r.Answer(part)
		switch {
		case strings.Contains(string(a), "\n"):
			b.WriteByte('\n')
			b.WriteString(string(a))
		case a == domain.None:
			b.WriteByte(' ')
			b.WriteString(p.none.Render(string(a)))
		default:
			b.WriteByte(' ')
			b.WriteString(string(a))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Puzzles prints the catalog, marking days without an input file.
func (p *Printer) Puzzles(ls []domain.Listing) error {
	if p.JSON {
		return json.NewEncoder(p.w).Encode(ls)
	}
	var b strings.Builder
	for _, l := range ls {
		fmt.Fprintf(&b, "%2d  %-26s ", l.Day, l.Title)
		if l.Input == nil {
			b.WriteString(p.none.Render("no input"))
		} else {
			b.WriteString(l.Input.Path)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

type checkJSON struct {
	Day   int    `json:"day"`
	File  string `json:"file"`
	Part  int    `json:"part"`
	Want  string `json:"want"`
	Got   string `json:"got"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Verification prints one ok/FAIL line per checked part followed by a summary.
func (p *Printer) Verification(checks []domain.Check) error {
	failed := 0
	for _, c := range checks {
		if !c.OK() {
			failed++
		}
	}
	if p.JSON {
		out := make([]checkJSON, 0, len(checks))
		for _, c := range checks {
			want, _ := c.Expectation.Want(c.Part)
			cj := checkJSON{Day: c.Expectation.Day, File: c.Expectation.Name(), Part: int(c.Part), Want: want, Got: string(c.Got), OK: c.OK()}
			if c.Err != nil {
				cj.Error = c.Err.Error()
			}
			out = append(out, cj)
		}
		return json.NewEncoder(p.w).Encode(out)
	}

	var b strings.Builder
	for _, c := range checks {
		status := p.ok.Render("ok") + "  "
		if !c.OK() {
			status = p.fail.Render("FAIL")
		}
		fmt.Fprintf(&b, "%s day %2d part %s  %s", status, c.Expectation.Day, c.Part, c.Expectation.Name())
		if !c.OK() {
			want, _ := c.Expectation.Want(c.Part)
			if c.Err != nil {
				fmt.Fprintf(&b, ": %v", c.Err)
			} else {
				fmt.Fprintf(&b, ": want %q, got %q", want, string(c.Got))
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d checks, %d failed\n", len(checks), failed)
	_, err := io.WriteString(p.w, b.String())
	return err
}
