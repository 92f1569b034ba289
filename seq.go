package rxparse

import (
	"iter"
	"strings"
)

// Of returns a sequence over the given values.  The sequence can be
// iterated any number of times.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Concat lazily chains seqs one after the other
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect materializes a finite sequence
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Text concatenates a sequence of runes into a string
func Text(seq iter.Seq[rune]) string {
	var s strings.Builder
	for r := range seq {
		s.WriteRune(r)
	}
	return s.String()
}

// take returns up to n leading elements of seq without pulling more
// than that from it
func take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 || seq == nil {
		return nil
	}
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
