package rxparse

import (
	"fmt"
	"iter"
)

// NonGreedy re-emits every match of p with a length of zero, keeping
// its value.  The match doesn't consume anything from the point of
// view of the enclosing composition.
func NonGreedy[S, T any](p Parser[S, T]) Parser[S, T] {
	requireParser("NonGreedy", "greedy", p)
	return derive("NonGreedy", mapResults(p, func(r Result[T]) Result[T] {
		return r.WithLength(0)
	}), p)
}

// unbounded is the count of an ambiguous parser without a limit
const unbounded = -1

// ambiguousParser re-parses the source with parser starting at every
// offset from the initial position, one element at a time
type ambiguousParser[S, T, U any] struct {
	parser Parser[S, T]
	until  Parser[S, U]
	count  int
}

// Ambiguous yields the matches of p at every offset from the start
// position, skipping one element at a time, until the source ends.
// Offsets where p doesn't match are skipped.
//
// Each match found at offset k with length l becomes a result holding
// a one element sequence with length k+l, so lengths remain relative
// to where the ambiguous parser started.
func Ambiguous[S, T any](p Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParser("Ambiguous", "source", p)
	return &ambiguousParser[S, T, struct{}]{parser: p, count: unbounded}
}

// AmbiguousCount is Ambiguous stopping after count matches were
// yielded
func AmbiguousCount[S, T any](p Parser[S, T], count int) Parser[S, iter.Seq[T]] {
	requireParser("Ambiguous", "source", p)
	if count < 0 {
		contractViolation("Ambiguous", "count must not be negative, got %d", count)
	}
	return &ambiguousParser[S, T, struct{}]{parser: p, count: count}
}

// AmbiguousUntil is Ambiguous stopping as soon as until matches at the
// next offset to be tried
func AmbiguousUntil[S, T, U any](p Parser[S, T], until Parser[S, U]) Parser[S, iter.Seq[T]] {
	requireParser("Ambiguous", "source", p)
	requireParser("Ambiguous", "until", until)
	return &ambiguousParser[S, T, U]{parser: p, until: until, count: unbounded}
}

func (p *ambiguousParser[S, T, U]) Parse(src Source[S], pos int) iter.Seq2[Result[iter.Seq[T]], error] {
	return traced("Ambiguous", pos, func(yield func(Result[iter.Seq[T]], error) bool) {
		fault := func(err error) { yield(Result[iter.Seq[T]]{}, err) }
		emitted := 0
		if p.count == 0 {
			return
		}
		for offset := 0; ; offset++ {
			ok, err := reachable(src, pos+offset)
			if err != nil {
				fault(err)
				return
			}
			if !ok {
				return
			}
			if offset > 0 && p.until != nil {
				stop, err := p.matchesUntil(src, pos+offset)
				if err != nil {
					fault(err)
					return
				}
				if stop {
					return
				}
			}
			for r, err := range p.parser.Parse(src, pos+offset) {
				if err != nil {
					fault(err)
					return
				}
				if !yield(Yield(Of(r.Value), offset+r.Length), nil) {
					return
				}
				emitted++
				if p.count != unbounded && emitted >= p.count {
					return
				}
			}
		}
	})
}

func (p *ambiguousParser[S, T, U]) matchesUntil(src Source[S], pos int) (bool, error) {
	for _, err := range p.until.Parse(src, pos) {
		return err == nil, err
	}
	return false, nil
}

func (p *ambiguousParser[S, T, U]) describe() (string, []any) {
	switch {
	case p.until != nil:
		return "AmbiguousUntil", []any{p.parser, p.until}
	case p.count != unbounded:
		return fmt.Sprintf("Ambiguous(%d)", p.count), []any{p.parser}
	default:
		return "Ambiguous", []any{p.parser}
	}
}
