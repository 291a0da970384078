// Package day15 reasons about sensor coverage to locate a distress beacon.
package day15

import (
	"fmt"
	"slices"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/mathx"
	"svw.info/aoc/internal/parse"
)

const tuningMultiplier = 4000000

type Point struct{ X, Y int }

// Distance is the Manhattan distance between p and q.
func (p Point) Distance(q Point) int { return mathx.AbsDiff(p.X, q.X) + mathx.AbsDiff(p.Y, q.Y) }

// Sensor covers every point no farther than its closest beacon.
type Sensor struct {
	Pos    Point
	Beacon Point
	Radius int
}

// Parse reads "Sensor at x=.., y=..: closest beacon is at x=.., y=.." lines.
func Parse(lines []string) ([]Sensor, error) {
	out := make([]Sensor, 0, len(lines))
	for i, l := range lines {
		var s Sensor
		err := parse.Scanf(i, l, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y)
		if err != nil {
			return nil, err
		}
		s.Radius = s.Pos.Distance(s.Beacon)
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, parse.Wholef("no sensors")
	}
	return out, nil
}

// Interval is the closed column range [From, To].
type Interval struct{ From, To int }

func (iv Interval) Len() int { return iv.To - iv.From + 1 }

// Coverage returns the merged, sorted column intervals of row y covered by
// any sensor, appending into buf.
func Coverage(sensors []Sensor, y int, buf []Interval) []Interval {
	buf = buf[:0]
	for _, s := range sensors {
		reach := s.Radius - mathx.AbsDiff(s.Pos.Y, y)
		if reach < 0 {
			continue
		}
		buf = append(buf, Interval{From: s.Pos.X - reach, To: s.Pos.X + reach})
	}
	slices.SortFunc(buf, func(a, b Interval) int { return a.From - b.From })
	merged := buf[:0]
	for _, iv := range buf {
		if n := len(merged); n > 0 && iv.From <= merged[n-1].To+1 {
			merged[n-1].To = max(merged[n-1].To, iv.To)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Excluded counts the positions on row y where no beacon can be.
func Excluded(sensors []Sensor, y int) int {
	cov := Coverage(sensors, y, nil)
	total := 0
	for _, iv := range cov {
		total += iv.Len()
	}
	seen := make(map[Point]bool)
	for _, s := range sensors {
		b := s.Beacon
		if b.Y != y || seen[b] {
			continue
		}
		seen[b] = true
		if slices.ContainsFunc(cov, func(iv Interval) bool { return b.X >= iv.From && b.X <= iv.To }) {
			total--
		}
	}
	return total
}

// Locate searches 0 <= x, y <= bound for the only point no sensor covers. It
// reports false when every point is covered, and an error when a row has more
// than one uncovered column.
func Locate(sensors []Sensor, bound int) (Point, bool, error) {
	var buf []Interval
	for y := 0; y <= bound; y++ {
		buf = Coverage(sensors, y, buf)
		var gaps []int
		next := 0 // first column not yet known to be covered
		for _, iv := range buf {
			if iv.To < 0 || iv.From > bound {
				continue
			}
			for x := next; x < iv.From && len(gaps) < 2; x++ {
				gaps = append(gaps, x)
			}
			next = max(next, iv.To+1)
		}
		for x := next; x <= bound && len(gaps) < 2; x++ {
			gaps = append(gaps, x)
		}
		switch len(gaps) {
		case 0:
			continue
		case 1:
			return Point{X: gaps[0], Y: y}, true, nil
		default:
			return Point{}, false, fmt.Errorf("%w: row %d has more than one uncovered column", domain.ErrInvariant, y)
		}
	}
	return Point{}, false, nil
}

// TuningFrequency is x*4000000 + y.
func TuningFrequency(p Point) int { return p.X*tuningMultiplier + p.Y }

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 15 }
func (*Puzzle) Title() string { return "Beacon Exclusion Zone" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	sensors, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(Excluded(sensors, in.Params.Int("row", 2000000))), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	sensors, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	p, ok, err := Locate(sensors, in.Params.Int("bound", 4000000))
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.None, nil
	}
	return domain.Int(TuningFrequency(p)), nil
}
