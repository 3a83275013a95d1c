package llkit

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the extent of an input symbol within
// the source text it has been scanned from. A span denotes a start position
// and the position just behind the end, both as byte offsets.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
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

// SpanAt returns the span at index i of a span list, or the empty span
// just behind the last entry if i is out of range. Parsers report errors
// by input index; this helps clients to map an index back to the source.
func SpanAt(spans []Span, i int) Span {
	if i >= 0 && i < len(spans) {
		return spans[i]
	}
	if len(spans) == 0 {
		return Span{}
	}
	end := spans[len(spans)-1].To()
	return Span{end, end}
}
