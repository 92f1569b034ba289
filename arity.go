package rxparse

import "iter"

// Amplify turns every value of p into a one element sequence, keeping
// the lengths.  It bridges scalar parsers into sequential and
// unordered compositions, which always produce sequences.
func Amplify[S, T any](p Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParser("Amplify", "source", p)
	return derive("Amplify", mapResults(p, YieldMany[T]), p)
}

// Single yields the only element of the sequence of each match of p.
// Matches whose sequence has zero or more than one element are
// dropped.  At most two elements of each sequence are pulled, so
// unbounded sequences are fine.
func Single[S, T any](p Parser[S, iter.Seq[T]]) Parser[S, T] {
	requireParser("Single", "source", p)
	return derive("Single", func(src Source[S], pos int) iter.Seq2[Result[T], error] {
		return func(yield func(Result[T], error) bool) {
			for r, err := range p.Parse(src, pos) {
				if err != nil {
					yield(Result[T]{}, err)
					return
				}
				values := take(r.Value, 2)
				if len(values) != 1 {
					continue
				}
				if !yield(Yield(values[0], r.Length), nil) {
					return
				}
			}
		}
	}, p)
}
