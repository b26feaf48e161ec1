package types

import "iter"

// Element is a value together with the input line it was derived from
type Element struct {
	// Line is the 1-based number of the input line
	Line int

	// Raw is the input line as read, without its line terminator
	Raw string

	Value Value
}

// Stream is a lazy, single-use sequence of elements. A non-nil error ends
// the sequence.
type Stream = iter.Seq2[Element, error]
