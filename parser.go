package rxparse

import "iter"

// Parser is an immutable, reusable value that can match a Source
// starting at a given position.
//
// The returned stream yields zero or more (result, nil) pairs, one per
// valid parse.  An upstream fault is reported as a final (zero, err)
// pair after which nothing else is produced.  No results at all means
// the parser didn't match, which is not an error.  A consumer that
// stops iterating early cancels the parse, and every combinator stops
// its active children before returning.
type Parser[S, T any] interface {
	Parse(src Source[S], pos int) iter.Seq2[Result[T], error]
}

// Func adapts an ordinary function into a Parser.  Any new leaf
// parser can be written this way and composed with every operator of
// this package.
type Func[S, T any] func(src Source[S], pos int) iter.Seq2[Result[T], error]

func (f Func[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[T], error] {
	return f(src, pos)
}

func (f Func[S, T]) describe() (string, []any) { return "Func", nil }

// describer is implemented by every parser type of this package so
// Describe can render combinator trees
type describer interface {
	describe() (label string, children []any)
}

type namedParser[S, T any] struct {
	name   string
	parser Parser[S, T]
}

// Named labels p for diagnostics.  The label shows up in Describe
// output and, when tracing is on, in the debug log for every attempt.
// A named parser is opaque to flattening: composing it never merges
// the children of whatever it wraps.
func Named[S, T any](name string, p Parser[S, T]) Parser[S, T] {
	requireParser("Named", "wrapped", p)
	return &namedParser[S, T]{name: name, parser: p}
}

func (p *namedParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[T], error] {
	return traced(p.name, pos, p.parser.Parse(src, pos))
}

func (p *namedParser[S, T]) describe() (string, []any) {
	// leaves built through Named are printed by name only
	if _, ok := p.parser.(Func[S, T]); ok {
		return p.name, nil
	}
	return p.name, []any{p.parser}
}

type derivedParser[S, T any] struct {
	name     string
	parse    Func[S, T]
	children []any
}

// derive builds a labelled parser out of a parse function wrapping the
// streams of the given children.  Every operator that isn't one of the
// composition engines is built this way.
func derive[S, T any](name string, parse Func[S, T], children ...any) Parser[S, T] {
	return &derivedParser[S, T]{name: name, parse: parse, children: children}
}

func (p *derivedParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[T], error] {
	return traced(p.name, pos, p.parse(src, pos))
}

func (p *derivedParser[S, T]) describe() (string, []any) { return p.name, p.children }

// mapResults forwards every result of p through fn, stopping at the
// first fault
func mapResults[S, T, U any](p Parser[S, T], fn func(Result[T]) Result[U]) Func[S, U] {
	return func(src Source[S], pos int) iter.Seq2[Result[U], error] {
		return func(yield func(Result[U], error) bool) {
			for r, err := range p.Parse(src, pos) {
				if err != nil {
					yield(Result[U]{}, err)
					return
				}
				if !yield(fn(r), nil) {
					return
				}
			}
		}
	}
}

// Matches drains every result p yields at pos
func Matches[S, T any](p Parser[S, T], src Source[S], pos int) ([]Result[T], error) {
	var out []Result[T]
	for r, err := range p.Parse(src, pos) {
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// First returns the first result p yields at pos, or ErrNoMatch
func First[S, T any](p Parser[S, T], src Source[S], pos int) (Result[T], error) {
	for r, err := range p.Parse(src, pos) {
		return r, err
	}
	return Result[T]{}, ErrNoMatch
}

// empty is the stream of a parser that doesn't match
func empty[T any](func(Result[T], error) bool) {}
