// Package day03 finds misplaced items and group badges in rucksacks.
package day03

import (
	"fmt"
	"slices"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// Priority maps a..z to 1..26 and A..Z to 27..52.
func Priority(item byte) int {
	if item >= 'A' && item <= 'Z' {
		return int(item-'A') + 27
	}
	return int(item-'a') + 1
}

func isItem(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// Parse validates that every rucksack holds letters only and splits evenly.
func Parse(lines []string) ([]string, error) {
	for i, l := range lines {
		if l == "" || len(l)%2 != 0 {
			return nil, parse.Errorf(i, l, "rucksack must hold an even, non-zero number of items")
		}
		for j := 0; j < len(l); j++ {
			if !isItem(l[j]) {
				return nil, parse.Errorf(i, l, "invalid item %q", l[j])
			}
		}
	}
	return lines, nil
}

// set returns the distinct items of s in ascending order.
func set(s string) []byte {
	b := []byte(s)
	slices.Sort(b)
	return slices.Compact(b)
}

// intersect walks two sorted sets in step and keeps the shared items.
func intersect(a, b []byte) []byte {
	var out []byte
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Shared returns the one item present in every given string.
func Shared(parts ...string) (byte, error) {
	common := set(parts[0])
	for _, p := range parts[1:] {
		common = intersect(common, set(p))
	}
	if len(common) != 1 {
		return 0, fmt.Errorf("%w: want exactly one shared item, found %q", domain.ErrInvariant, common)
	}
	return common[0], nil
}

// CompartmentPriorities sums the priority of the item found in both halves of each rucksack.
func CompartmentPriorities(sacks []string) (int, error) {
	total := 0
	for i, s := range sacks {
		item, err := Shared(s[:len(s)/2], s[len(s)/2:])
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		total += Priority(item)
	}
	return total, nil
}

// BadgePriorities sums the priority of the item shared by each run of three rucksacks.
func BadgePriorities(sacks []string) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, parse.Wholef("%d rucksacks do not split into groups of three", len(sacks))
	}
	total := 0
	for i := 0; i < len(sacks); i += 3 {
		badge, err := Shared(sacks[i], sacks[i+1], sacks[i+2])
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/3+1, err)
		}
		total += Priority(badge)
	}
	return total, nil
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 3 }
func (*Puzzle) Title() string { return "Rucksack Reorganization" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	sacks, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	n, err := CompartmentPriorities(sacks)
	if err != nil {
		return "", err
	}
	return domain.Int(n), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	sacks, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	n, err := BadgePriorities(sacks)
	if err != nil {
		return "", err
	}
	return domain.Int(n), nil
}
