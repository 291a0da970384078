package day11

import (
	"fmt"
	"math/bits"

	"svw.info/aoc/internal/domain"
)

// Moduli is the set of distinct divisors appearing in the input. It is fixed
// before any Worry is built so every value tracks the same remainders.
type Moduli struct {
	divisors []uint64
	index    map[uint64]int
}

// NewModuli deduplicates divisors, keeping first-seen order.
func NewModuli(divisors []uint64) (*Moduli, error) {
	m := &Moduli{index: make(map[uint64]int, len(divisors))}
	for _, d := range divisors {
		if d == 0 {
			return nil, fmt.Errorf("%w: divisor 0", domain.ErrInvariant)
		}
		if _, ok := m.index[d]; ok {
			continue
		}
		m.index[d] = len(m.divisors)
		m.divisors = append(m.divisors, d)
	}
	return m, nil
}

// Worry is an item's worry level. It holds the exact value while that fits in
// 64 bits and, always, the value's remainder for each modulus.
type Worry struct {
	exact   uint64
	isExact bool
	rems    []uint64
	mod     *Moduli
}

// NewWorry builds a worry value from an exact starting level.
func (m *Moduli) NewWorry(v uint64) Worry {
	w := Worry{exact: v, isExact: true, rems: make([]uint64, len(m.divisors)), mod: m}
	for i, d := range m.divisors {
		w.rems[i] = v % d
	}
	return w
}

// Exact returns the exact value when it is still known.
func (w *Worry) Exact() (uint64, bool) { return w.exact, w.isExact }

// Remainder returns the tracked remainder modulo d.
func (w *Worry) Remainder(d uint64) (uint64, bool) {
	i, ok := w.mod.index[d]
	if !ok {
		return 0, false
	}
	return w.rems[i], true
}

// Add adds n to the level.
func (w *Worry) Add(n uint64) {
	if w.isExact {
		sum, carry := bits.Add64(w.exact, n, 0)
		w.exact, w.isExact = sum, carry == 0
	}
	for i, d := range w.mod.divisors {
		w.rems[i] = (w.rems[i] + n%d) % d
	}
}

// Mul multiplies the level by n.
func (w *Worry) Mul(n uint64) {
	if w.isExact {
		hi, lo := bits.Mul64(w.exact, n)
		w.exact, w.isExact = lo, hi == 0
	}
	for i, d := range w.mod.divisors {
		w.rems[i] = mulMod(w.rems[i], n%d, d)
	}
}

// Square multiplies the level by itself.
func (w *Worry) Square() {
	if w.isExact {
		hi, lo := bits.Mul64(w.exact, w.exact)
		w.exact, w.isExact = lo, hi == 0
	}
	for i, d := range w.mod.divisors {
		w.rems[i] = mulMod(w.rems[i], w.rems[i], d)
	}
}

// Div floors the level divided by n. Division does not commute with modular
// reduction, so it needs the exact value.
func (w *Worry) Div(n uint64) error {
	if !w.isExact {
		return fmt.Errorf("%w: cannot divide a worry level tracked only as remainders", domain.ErrInvariant)
	}
	if n == 0 {
		return fmt.Errorf("%w: division by zero", domain.ErrInvariant)
	}
	*w = w.mod.NewWorry(w.exact / n)
	return nil
}

// DivisibleBy tests divisibility by one of the tracked moduli.
func (w *Worry) DivisibleBy(d uint64) (bool, error) {
	if w.isExact {
		return w.exact%d == 0, nil
	}
	r, ok := w.Remainder(d)
	if !ok {
		return false, fmt.Errorf("%w: %d is not a tracked modulus", domain.ErrInvariant, d)
	}
	return r == 0, nil
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}
