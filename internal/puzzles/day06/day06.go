// Package day06 locates start-of-packet and start-of-message markers.
package day06

import (
	"fmt"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

const (
	PacketWidth  = 4
	MessageWidth = 14
)

// FindMarker returns the number of bytes consumed when the last width bytes
// are first pairwise distinct.
func FindMarker(stream []byte, width int) (int, bool) {
	if width <= 0 || width > len(stream) {
		return 0, false
	}
	var seen [256]int
	dupes := 0
	for i, b := range stream {
		seen[b]++
		if seen[b] == 2 {
			dupes++
		}
		if i >= width {
			out := stream[i-width]
			seen[out]--
			if seen[out] == 1 {
				dupes--
			}
		}
		if i >= width-1 && dupes == 0 {
			return i + 1, true
		}
	}
	return 0, false
}

func stream(lines []string) ([]byte, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, parse.Wholef("empty datastream")
	}
	return []byte(lines[0]), nil
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 6 }
func (*Puzzle) Title() string { return "Tuning Trouble" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) { return solve(in, PacketWidth) }
func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) { return solve(in, MessageWidth) }

func solve(in domain.Input, width int) (domain.Answer, error) {
	s, err := stream(in.Lines)
	if err != nil {
		return "", err
	}
	n, ok := FindMarker(s, width)
	if !ok {
		return "", fmt.Errorf("%w: no %d distinct bytes in a %d byte stream", domain.ErrInvariant, width, len(s))
	}
	return domain.Int(n), nil
}
