// Package span provides a small type for capturing a run of input
// positions. Every completed Earley item and every tree node tracks which
// input positions it covers.
package span

import "fmt"

// Span denotes a half-open interval [from,to) over rune positions of the
// input being parsed.
type Span [2]int

// New returns the span [from,to).
func New(from, to int) Span {
	return Span{from, to}
}

// From returns the start position of the span.
func (s Span) From() int {
	return s[0]
}

// To returns the position just behind the end of the span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of the span.
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull returns true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s so that it also covers other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
