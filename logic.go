package rxparse

import (
	"iter"
	"slices"
)

// shape tells how a sequence producing operand takes part in the
// flattening of nested sequential compositions
type shape int

const (
	// shapeLeaf is any parser that isn't a sequential composition.
	// It is kept as a single child.
	shapeLeaf shape = iota

	// shapeSequence is an All over scalar parsers; its children can
	// be merged with another list of scalar parsers directly.
	shapeSequence

	// shapeSequenceOfSequences is an All over parsers producing
	// sequences; its children are merged as they are.
	shapeSequenceOfSequences
)

// operand is one side of a sequential composition after its shape was
// inspected
type operand[S, T any] struct {
	shape   shape
	scalars []Parser[S, T]
	many    []Parser[S, iter.Seq[T]]

	// origin is the parser the operand was built from and drain runs
	// it to completion.  Both are nil for empty compositions.
	origin any
	drain  func(Source[S], int) error
}

// classify inspects a sequence producing parser
func classify[S, T any](p Parser[S, iter.Seq[T]]) operand[S, T] {
	switch c := p.(type) {
	case *allParser[S, T]:
		o := operand[S, T]{shape: shapeSequence, scalars: c.parsers}
		if len(c.parsers) > 0 {
			o.origin, o.drain = p, drain(p)
		}
		return o
	case *allManyParser[S, T]:
		o := operand[S, T]{shape: shapeSequenceOfSequences, many: c.parsers}
		if len(c.parsers) > 0 {
			o.origin, o.drain = p, drain(p)
		}
		return o
	default:
		return operand[S, T]{
			shape:  shapeLeaf,
			many:   []Parser[S, iter.Seq[T]]{p},
			origin: p,
			drain:  drain(p),
		}
	}
}

// scalar wraps a scalar parser as a one element sequence so it merges
// with neighbouring scalar parsers without being amplified
func scalar[S, T any](p Parser[S, T]) operand[S, T] {
	return operand[S, T]{
		shape:   shapeSequence,
		scalars: []Parser[S, T]{p},
		origin:  p,
		drain:   drain(p),
	}
}

func (o operand[S, T]) empty() bool {
	return len(o.scalars) == 0 && len(o.many) == 0
}

// sequences returns the operand's children as sequence producing
// parsers, amplifying scalar ones
func (o operand[S, T]) sequences() []Parser[S, iter.Seq[T]] {
	if o.shape != shapeSequence {
		return o.many
	}
	out := make([]Parser[S, iter.Seq[T]], len(o.scalars))
	for i, p := range o.scalars {
		out[i] = Amplify(p)
	}
	return out
}

// join merges two operands into a single flat sequential composition.
//
// If either side has no parsers the composition can't match, but the
// other side still has to run since it may have side effects.  That
// case never panics: it becomes a parser that drains the non empty
// side and yields nothing.
func join[S, T any](left, right operand[S, T]) Parser[S, iter.Seq[T]] {
	if left.empty() || right.empty() {
		return &exhaustParser[S, T]{operands: []operand[S, T]{left, right}}
	}
	if left.shape == shapeSequence && right.shape == shapeSequence {
		return &allParser[S, T]{parsers: slices.Concat(left.scalars, right.scalars)}
	}
	return &allManyParser[S, T]{parsers: slices.Concat(left.sequences(), right.sequences())}
}

// And matches p and then q right where p ended.  The result is the
// sequence of both values.
func And[S, T any](p, q Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParser("And", "left", p)
	requireParser("And", "right", q)
	return All(p, q)
}

// ManyAnd appends q to the sequential composition p.  When p is itself
// the result of And or All, q is added to its list of parsers instead
// of nesting compositions.
func ManyAnd[S, T any](p Parser[S, iter.Seq[T]], q Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParser("And", "left", p)
	requireParser("And", "right", q)
	return join(classify(p), scalar(q))
}

// AndMany prepends p to the sequential composition q, merging lists
// like ManyAnd does
func AndMany[S, T any](p Parser[S, T], q Parser[S, iter.Seq[T]]) Parser[S, iter.Seq[T]] {
	requireParser("And", "left", p)
	requireParser("And", "right", q)
	return join(scalar(p), classify(q))
}

// ManyAndMany matches two sequence producing parsers one after the
// other, merging their lists when either is a sequential composition
func ManyAndMany[S, T any](p, q Parser[S, iter.Seq[T]]) Parser[S, iter.Seq[T]] {
	requireParser("And", "left", p)
	requireParser("And", "right", q)
	return join(classify(p), classify(q))
}

// All matches each of the parsers in order, back to back, and yields
// the sequence of their values.  An empty list never matches.
func All[S, T any](parsers ...Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParsers("All", parsers)
	return &allParser[S, T]{parsers: slices.Clone(parsers)}
}

// AllMany is All for parsers producing sequences.  The values of the
// match are all the sequences concatenated.
func AllMany[S, T any](parsers ...Parser[S, iter.Seq[T]]) Parser[S, iter.Seq[T]] {
	requireParsers("All", parsers)
	return &allManyParser[S, T]{parsers: slices.Clone(parsers)}
}

// Nested unordered groups are never merged: in `{12}{34}` the group
// boundary is an ordering constraint, so "2143" matches and "3124"
// doesn't.  Merging both groups would accept the latter.

// AndUnordered matches p and q in either order
func AndUnordered[S, T any](p, q Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParser("AndUnordered", "left", p)
	requireParser("AndUnordered", "right", q)
	return AllUnordered(p, q)
}

// ManyAndUnordered matches p and q in either order
func ManyAndUnordered[S, T any](p Parser[S, iter.Seq[T]], q Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParser("AndUnordered", "left", p)
	requireParser("AndUnordered", "right", q)
	return AllManyUnordered(p, Amplify(q))
}

// AndManyUnordered matches p and q in either order
func AndManyUnordered[S, T any](p Parser[S, T], q Parser[S, iter.Seq[T]]) Parser[S, iter.Seq[T]] {
	requireParser("AndUnordered", "left", p)
	requireParser("AndUnordered", "right", q)
	return AllManyUnordered(Amplify(p), q)
}

// ManyAndManyUnordered matches p and q in either order
func ManyAndManyUnordered[S, T any](p, q Parser[S, iter.Seq[T]]) Parser[S, iter.Seq[T]] {
	requireParser("AndUnordered", "left", p)
	requireParser("AndUnordered", "right", q)
	return AllManyUnordered(p, q)
}

// AllUnordered matches every one of the parsers exactly once, in any
// order, within one contiguous span.  The values are yielded in the
// order the parsers actually matched.
func AllUnordered[S, T any](parsers ...Parser[S, T]) Parser[S, iter.Seq[T]] {
	requireParsers("AllUnordered", parsers)
	return &allUnorderedParser[S, T]{parsers: slices.Clone(parsers)}
}

// AllManyUnordered is AllUnordered for parsers producing sequences
func AllManyUnordered[S, T any](parsers ...Parser[S, iter.Seq[T]]) Parser[S, iter.Seq[T]] {
	requireParsers("AllUnordered", parsers)
	return &allManyUnorderedParser[S, T]{parsers: slices.Clone(parsers)}
}

// alternatives returns the list of parsers of an alternation, or p
// alone for any other parser
func alternatives[S, T any](p Parser[S, T]) []Parser[S, T] {
	if a, ok := p.(*anyParser[S, T]); ok {
		return a.parsers
	}
	return []Parser[S, T]{p}
}

// Or matches p, or q when p doesn't match.  Nested alternations are
// merged keeping their priority, so (a|b)|(c|d) is a|b|c|d.
func Or[S, T any](p, q Parser[S, T]) Parser[S, T] {
	requireParser("Or", "left", p)
	requireParser("Or", "right", q)
	return &anyParser[S, T]{parsers: slices.Concat(alternatives(p), alternatives(q))}
}

// Any tries each parser in order.  The first one that yields at least
// one result decides the match, with all of its results; later parsers
// aren't tried.
func Any[S, T any](parsers ...Parser[S, T]) Parser[S, T] {
	requireParsers("Any", parsers)
	var flat []Parser[S, T]
	for _, p := range parsers {
		flat = append(flat, alternatives(p)...)
	}
	return &anyParser[S, T]{parsers: flat}
}

// None matches without consuming input, yielding value, only when p
// doesn't match at the same position.  Only the first result of p is
// ever pulled.
func None[S, T, U any](p Parser[S, U], value T) Parser[S, T] {
	requireParser("None", "negated", p)
	return derive("None", func(src Source[S], pos int) iter.Seq2[Result[T], error] {
		return func(yield func(Result[T], error) bool) {
			for _, err := range p.Parse(src, pos) {
				if err != nil {
					yield(Result[T]{}, err)
				}
				return
			}
			yield(Yield(value, 0), nil)
		}
	}, p)
}

// Not matches p where guard doesn't match.  The guard runs first and
// consumes nothing; if it matches, p isn't run at all.
func Not[S, T, G any](p Parser[S, T], guard Parser[S, G]) Parser[S, T] {
	requireParser("Not", "matched", p)
	requireParser("Not", "guard", guard)
	none := None[S, struct{}](guard, struct{}{})
	return derive("Not", func(src Source[S], pos int) iter.Seq2[Result[T], error] {
		return func(yield func(Result[T], error) bool) {
			for g, err := range none.Parse(src, pos) {
				if err != nil {
					yield(Result[T]{}, err)
					return
				}
				for r, err := range p.Parse(src, pos+g.Length) {
					if err != nil {
						yield(Result[T]{}, err)
						return
					}
					if !yield(Yield(r.Value, g.Length+r.Length), nil) {
						return
					}
				}
			}
		}
	}, p, guard)
}
