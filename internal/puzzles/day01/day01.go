// Package day01 counts calories carried by each elf.
package day01

import (
	"container/heap"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
)

// Parse returns one total per blank-line separated group.
func Parse(lines []string) ([]int, error) {
	sections := parse.Sections(lines)
	if len(sections) == 0 {
		return nil, parse.Wholef("no calorie groups")
	}
	totals := make([]int, 0, len(sections))
	for _, s := range sections {
		sum := 0
		for i, l := range s.Lines {
			n, err := parse.Int(s.Start+i, l, l)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, parse.Errorf(s.Start+i, l, "negative calories")
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	return totals, nil
}

// maxHeap keeps the largest total on top.
type maxHeap []int

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns the k largest totals, largest first. Fewer are returned when
// there are fewer than k groups.
func TopK(totals []int, k int) []int {
	h := make(maxHeap, len(totals))
	copy(h, totals)
	heap.Init(&h)
	out := make([]int, 0, k)
	for len(out) < k && h.Len() > 0 {
		out = append(out, heap.Pop(&h).(int))
	}
	return out
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

type Puzzle struct{}

func New() *Puzzle { return &Puzzle{} }

func (*Puzzle) Day() int      { return 1 }
func (*Puzzle) Title() string { return "Calorie Counting" }

func (*Puzzle) Part1(in domain.Input) (domain.Answer, error) {
	totals, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(TopK(totals, 1)[0]), nil
}

func (*Puzzle) Part2(in domain.Input) (domain.Answer, error) {
	totals, err := Parse(in.Lines)
	if err != nil {
		return "", err
	}
	return domain.Int(sum(TopK(totals, 3))), nil
}
