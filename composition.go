package rxparse

import (
	"iter"
	"slices"
)

// walker holds the state shared by all the branches of one parse
// attempt of a composition engine
type walker[S, C any] struct {
	src   Source[S]
	start int

	// emit receives the values of one complete match and returns
	// false when the consumer stopped iterating
	emit func(values []C, length int) bool

	// fault reports an upstream error.  The walk stops right after.
	fault func(error)
}

// sequence enumerates depth first every way children can match back to
// back starting at pos.  It returns false when the walk must stop.
func (w *walker[S, C]) sequence(children []Parser[S, C], pos int, values []C) bool {
	if len(children) == 0 {
		return w.emit(slices.Clone(values), pos-w.start)
	}
	for r, err := range children[0].Parse(w.src, pos) {
		if err != nil {
			w.fault(err)
			return false
		}
		if !w.sequence(children[1:], pos+r.Length, append(values, r.Value)) {
			return false
		}
	}
	return true
}

// permute enumerates every order in which each of the children not
// marked as used can match exactly once, back to back, from pos
func (w *walker[S, C]) permute(children []Parser[S, C], used []bool, left, pos int, values []C) bool {
	if left == 0 {
		return w.emit(slices.Clone(values), pos-w.start)
	}
	for i, child := range children {
		if used[i] {
			continue
		}
		used[i] = true
		for r, err := range child.Parse(w.src, pos) {
			if err != nil {
				w.fault(err)
				return false
			}
			if !w.permute(children, used, left-1, pos+r.Length, append(values, r.Value)) {
				return false
			}
		}
		used[i] = false
	}
	return true
}

// walk runs one of the two enumerations over children and converts
// each complete match into a result through value
func walk[S, C, T any](
	src Source[S],
	pos int,
	children []Parser[S, C],
	unordered bool,
	value func([]C) T,
) iter.Seq2[Result[T], error] {
	return func(yield func(Result[T], error) bool) {
		if len(children) == 0 {
			return
		}
		w := &walker[S, C]{
			src:   src,
			start: pos,
			emit: func(values []C, length int) bool {
				return yield(Yield(value(values), length), nil)
			},
			fault: func(err error) { yield(Result[T]{}, err) },
		}
		if unordered {
			w.permute(children, make([]bool, len(children)), len(children), pos, nil)
			return
		}
		w.sequence(children, pos, nil)
	}
}

func concatValues[T any](values []iter.Seq[T]) iter.Seq[T] { return Concat(values...) }

func ofValues[T any](values []T) iter.Seq[T] { return Of(values...) }

// allParser matches scalar parsers in order
type allParser[S, T any] struct {
	parsers []Parser[S, T]
}

func (p *allParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[iter.Seq[T]], error] {
	return traced("All", pos, walk(src, pos, p.parsers, false, ofValues[T]))
}

func (p *allParser[S, T]) describe() (string, []any) { return "All", anys(p.parsers) }

// allManyParser matches parsers already producing sequences in order
type allManyParser[S, T any] struct {
	parsers []Parser[S, iter.Seq[T]]
}

func (p *allManyParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[iter.Seq[T]], error] {
	return traced("AllMany", pos, walk(src, pos, p.parsers, false, concatValues[T]))
}

func (p *allManyParser[S, T]) describe() (string, []any) { return "AllMany", anys(p.parsers) }

// allUnorderedParser matches scalar parsers in any order
type allUnorderedParser[S, T any] struct {
	parsers []Parser[S, T]
}

func (p *allUnorderedParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[iter.Seq[T]], error] {
	return traced("AllUnordered", pos, walk(src, pos, p.parsers, true, ofValues[T]))
}

func (p *allUnorderedParser[S, T]) describe() (string, []any) {
	return "AllUnordered", anys(p.parsers)
}

// allManyUnorderedParser matches sequence parsers in any order
type allManyUnorderedParser[S, T any] struct {
	parsers []Parser[S, iter.Seq[T]]
}

func (p *allManyUnorderedParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[iter.Seq[T]], error] {
	return traced("AllManyUnordered", pos, walk(src, pos, p.parsers, true, concatValues[T]))
}

func (p *allManyUnorderedParser[S, T]) describe() (string, []any) {
	return "AllManyUnordered", anys(p.parsers)
}

// exhaustParser is what a sequential composition against an empty
// parser list turns into.  It runs each of the remaining operands at
// the start position until their streams are over and then fails.
type exhaustParser[S, T any] struct {
	operands []operand[S, T]
}

func (p *exhaustParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[iter.Seq[T]], error] {
	return traced("All(empty)", pos, func(yield func(Result[iter.Seq[T]], error) bool) {
		for _, o := range p.operands {
			if o.drain == nil {
				continue
			}
			if err := o.drain(src, pos); err != nil {
				yield(Result[iter.Seq[T]]{}, err)
				return
			}
		}
	})
}

func (p *exhaustParser[S, T]) describe() (string, []any) {
	var children []any
	for _, o := range p.operands {
		if o.origin != nil {
			children = append(children, o.origin)
		}
	}
	return "All(empty)", children
}

// anyParser tries its parsers in priority order
type anyParser[S, T any] struct {
	parsers []Parser[S, T]
}

func (p *anyParser[S, T]) Parse(src Source[S], pos int) iter.Seq2[Result[T], error] {
	return traced("Any", pos, func(yield func(Result[T], error) bool) {
		for _, alt := range p.parsers {
			matched := false
			for r, err := range alt.Parse(src, pos) {
				if err != nil {
					yield(Result[T]{}, err)
					return
				}
				matched = true
				if !yield(r, nil) {
					return
				}
			}
			if matched {
				return
			}
		}
	})
}

func (p *anyParser[S, T]) describe() (string, []any) { return "Any", anys(p.parsers) }

func anys[P any](parsers []P) []any {
	out := make([]any, len(parsers))
	for i, p := range parsers {
		out[i] = p
	}
	return out
}

// drain runs p at pos and discards every result
func drain[S, T any](p Parser[S, T]) func(Source[S], int) error {
	return func(src Source[S], pos int) error {
		for _, err := range p.Parse(src, pos) {
			if err != nil {
				return err
			}
		}
		return nil
	}
}
