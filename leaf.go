package rxparse

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Satisfy matches a single element for which pred returns true.  The
// name is used only for diagnostics.
func Satisfy[S any](name string, pred func(S) bool) Parser[S, S] {
	if pred == nil {
		contractViolation("Satisfy", "predicate is nil")
	}
	return Named(name, Func[S, S](func(src Source[S], pos int) iter.Seq2[Result[S], error] {
		return func(yield func(Result[S], error) bool) {
			v, err := src.At(pos)
			switch {
			case errors.Is(err, io.EOF):
			case err != nil:
				yield(Result[S]{}, err)
			case pred(v):
				yield(Yield(v, 1), nil)
			}
		}
	}))
}

// Element matches exactly the element e
func Element[S comparable](e S) Parser[S, S] {
	return Satisfy(describeElement(e), func(v S) bool { return v == e })
}

// AnyElement matches whatever element is under the cursor and fails
// only at the end of the source
func AnyElement[S any]() Parser[S, S] {
	return Satisfy("AnyElement", func(S) bool { return true })
}

// Between matches a single element between l and r, inclusive
func Between[S cmp.Ordered](l, r S) Parser[S, S] {
	name := fmt.Sprintf("[%s-%s]", describeElement(l), describeElement(r))
	return Satisfy(name, func(v S) bool { return v >= l && v <= r })
}

// Literal matches the elements of lit in order and yields them as a
// slice
func Literal[S comparable](lit ...S) Parser[S, []S] {
	parts := make([]string, len(lit))
	for i, e := range lit {
		parts[i] = describeElement(e)
	}
	name := "Literal(" + strings.Join(parts, " ") + ")"
	return Named(name, Func[S, []S](func(src Source[S], pos int) iter.Seq2[Result[[]S], error] {
		return func(yield func(Result[[]S], error) bool) {
			for i, e := range lit {
				v, err := src.At(pos + i)
				if errors.Is(err, io.EOF) {
					return
				}
				if err != nil {
					yield(Result[[]S]{}, err)
					return
				}
				if v != e {
					return
				}
			}
			yield(Yield(lit, len(lit)), nil)
		}
	}))
}

// String matches the runes of s and yields s
func String(s string) Parser[rune, string] {
	lit := Literal([]rune(s)...)
	return derive(strconv.Quote(s), mapResults(lit, func(r Result[[]rune]) Result[string] {
		return Yield(s, r.Length)
	}))
}

// Succeed matches without consuming anything and yields value
func Succeed[S, T any](value T) Parser[S, T] {
	return Named("Succeed", Func[S, T](func(Source[S], int) iter.Seq2[Result[T], error] {
		return func(yield func(Result[T], error) bool) {
			yield(Yield(value, 0), nil)
		}
	}))
}

// Fail never matches
func Fail[S, T any]() Parser[S, T] {
	return Named("Fail", Func[S, T](func(Source[S], int) iter.Seq2[Result[T], error] {
		return empty[T]
	}))
}

// Select projects the value of every match of p through fn, keeping
// the lengths
func Select[S, T, U any](p Parser[S, T], fn func(T) U) Parser[S, U] {
	requireParser("Select", "source", p)
	if fn == nil {
		contractViolation("Select", "selector is nil")
	}
	return derive("Select", mapResults(p, func(r Result[T]) Result[U] {
		return Yield(fn(r.Value), r.Length)
	}), p)
}

// WithRange pairs every value of p with the absolute range it was
// matched from
func WithRange[S, T any](p Parser[S, T]) Parser[S, Ranged[T]] {
	requireParser("WithRange", "source", p)
	return derive("WithRange", func(src Source[S], pos int) iter.Seq2[Result[Ranged[T]], error] {
		return mapResults(p, func(r Result[T]) Result[Ranged[T]] {
			return Yield(Ranged[T]{Range: r.Range(pos), Value: r.Value}, r.Length)
		})(src, pos)
	}, p)
}

func describeElement(e any) string {
	switch v := e.(type) {
	case rune:
		return strconv.QuoteRune(v)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
