package day13

import (
	"strconv"
	"strings"
)

// Value is a packet element: an Int or a List.
type Value interface {
	String() string
	value()
}

type Int int

type List []Value

func (Int) value()  {}
func (List) value() {}

func (i Int) String() string { return strconv.Itoa(int(i)) }

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Compare orders packets: negative when a sorts before b, zero when they tie.
// Integers compare by value, lists element by element with the shorter list
// first, and an integer against a list is promoted to a one-element list.
func Compare(a, b Value) int {
	switch a := a.(type) {
	case Int:
		if b, ok := b.(Int); ok {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		}
		return Compare(List{a}, b)
	case List:
		switch b := b.(type) {
		case Int:
			return Compare(a, List{b})
		case List:
			for i := 0; i < len(a) && i < len(b); i++ {
				if c := Compare(a[i], b[i]); c != 0 {
					return c
				}
			}
			return len(a) - len(b)
		}
	}
	return 0
}
