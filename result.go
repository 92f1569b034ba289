package rxparse

import "iter"

// Result is one successful match: the produced value and the number
// of source elements consumed from the position the attempt started
// at.  A parser yielding several results for a single attempt is
// ambiguous; each result is a distinct valid parse, not a retry.
type Result[T any] struct {
	Value  T
	Length int
}

// Yield creates a new result
func Yield[T any](value T, length int) Result[T] {
	return Result[T]{Value: value, Length: length}
}

// WithLength returns a copy of the result with a different length
func (r Result[T]) WithLength(length int) Result[T] {
	return Result[T]{Value: r.Value, Length: length}
}

// Range returns the absolute range covered by the result when the
// attempt started at start
func (r Result[T]) Range(start int) Range {
	return NewRange(start, start+r.Length)
}

// YieldMany converts a scalar result into a result holding a one
// element sequence with the same length
func YieldMany[T any](r Result[T]) Result[iter.Seq[T]] {
	return Result[iter.Seq[T]]{Value: Of(r.Value), Length: r.Length}
}
