// Package day07 rebuilds directory sizes from a terminal transcript.
package day07

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

const (
	DiskCapacity = 70000000
	UpdateSize   = 30000000
	SmallDirMax  = 100000
)

// Root is the path of the outermost directory.
const Root = "/"

// Usage maps absolute directory paths ("/", "/a/e") to their total size.
type Usage map[string]int

func join(path []string) string {
	return Root + strings.Join(path, "/")
}

// Parse replays cd/ls commands. Each file size is added to the current
// directory and every ancestor of it.
func Parse(lines []string) (Usage, error) {
	usage := Usage{}
	var path []string
	inside := false
	for i, l := range lines {
		switch {
		case l == "$ ls":
		case strings.HasPrefix(l, "$ cd "):
			dir := strings.TrimPrefix(l, "$ cd ")
			switch dir {
			case "/":
				path = path[:0]
			case "..":
				if len(path) == 0 {
					return nil, parse.Errorf(i, l, "cd .. above root")
				}
				path = path[:len(path)-1]
			default:
				if dir == "" || strings.Contains(dir, "/") {
					return nil, parse.Errorf(i, l, "invalid directory name")
				}
				if !inside {
					return nil, parse.Errorf(i, l, "cd into %q before entering /", dir)
				}
				path = append(path, dir)
			}
			inside = true
			if _, ok := usage[join(path)]; !ok {
				usage[join(path)] = 0
			}
		case strings.HasPrefix(l, "dir "):
		default:
			sizeText, name, ok := strings.Cut(l, " ")
			if !ok || name == "" || strings.HasPrefix(l, "$") {
				return nil, parse.Errorf(i, l, "unrecognised line")
			}
			size, err := strconv.Atoi(sizeText)
			if err != nil || size < 0 {
				return nil, parse.Errorf(i, l, "invalid file size %q", sizeText)
			}
			if !inside {
				return nil, parse.Errorf(i, l, "file listed outside of any directory")
			}
			for depth := len(path); depth >= 0; depth-- {
				usage[join(path[:depth])] += size
			}
		}
	}
	if _, ok := usage[Root]; !ok {
		return nil, parse.Wholef("transcript never enters %s", Root)
	}
	return usage, nil
}

// SmallTotal sums every directory whose size is at most limit. Nested
// directories are counted once for themselves and again within each parent.
func (u Usage) SmallTotal(limit int) int {
	total := 0
	for _, size := range u {
		if size <= limit {
			total += size
		}
	}
	return total
}

// Deficit is how much must be freed for update bytes to fit on the disk.
func (u Usage) Deficit(capacity, update int) int {
	return max(0, update-(capacity-u[Root]))
}

// SmallestAtLeast returns the smallest directory size >= threshold.
func (u Usage) SmallestAtLeast(threshold int) (int, bool) {
	best, found := 0, false
	for _, size := range u {
		if size >= threshold && (!found || size < best) {
			best, found = size, true
		}
	}
	return best, found
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 7 }
func (*Puzzle) Title() string { return "No Space Left On Device" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	u, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(u.SmallTotal(in.Params.Int("limit", SmallDirMax))), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	u, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	capacity := in.Params.Int("capacity", DiskCapacity)
	if u[Root] > capacity {
		return "", fmt.Errorf("%w: %d bytes used on a %d byte disk", domain.ErrInvariant, u[Root], capacity)
	}
	size, ok := u.SmallestAtLeast(u.Deficit(capacity, in.Params.Int("update", UpdateSize)))
	if !ok {
		return "", fmt.Errorf("%w: no directory frees enough space", domain.ErrInvariant)
	}
	return domain.Int(size), nil
}
