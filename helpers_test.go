package rxparse

import (
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// seqMatch is a sequence result materialized for comparisons
type seqMatch[T any] struct {
	Values []T
	Length int
}

func parseString[T any](t *testing.T, p Parser[rune, T], input string) []Result[T] {
	t.Helper()
	results, err := Matches(p, FromString(input), 0)
	require.NoError(t, err)
	return results
}

func parseSeq[T any](t *testing.T, p Parser[rune, iter.Seq[T]], input string) []seqMatch[T] {
	t.Helper()
	var out []seqMatch[T]
	for _, r := range parseString(t, p, input) {
		out = append(out, seqMatch[T]{Values: Collect(r.Value), Length: r.Length})
	}
	return out
}

// words yields one result for each of the words found at the
// position, which makes it ambiguous when words share a prefix
func words(ws ...string) Parser[rune, string] {
	return Named("words", Func[rune, string](func(src Source[rune], pos int) iter.Seq2[Result[string], error] {
		return func(yield func(Result[string], error) bool) {
			for _, w := range ws {
				for r, err := range String(w).Parse(src, pos) {
					if !yield(r, err) || err != nil {
						return
					}
				}
			}
		}
	}))
}

// probe is a parser with observable side effects: it counts how many
// times it was run, how many results were pulled from it and whether
// its stream ran to the end
type probe struct {
	runs     int
	pulled   int
	finished bool
	results  []Result[rune]
}

func (pr *probe) parser() Parser[rune, rune] {
	return Named("probe", Func[rune, rune](func(src Source[rune], pos int) iter.Seq2[Result[rune], error] {
		return func(yield func(Result[rune], error) bool) {
			pr.runs++
			for _, r := range pr.results {
				pr.pulled++
				if !yield(r, nil) {
					return
				}
			}
			pr.finished = true
		}
	}))
}

// faultySource behaves like FromString until index failAt, where it
// fails with errBoom
type faultySource struct {
	data   []rune
	failAt int
}

func (s faultySource) At(i int) (rune, error) {
	if i >= s.failAt {
		return 0, errBoom
	}
	if i < 0 || i >= len(s.data) {
		return 0, io.EOF
	}
	return s.data[i], nil
}

// endless repeats c forever
func endless(c rune) Source[rune] {
	return &streamSource[rune]{next: func() (rune, error) { return c, nil }}
}

func requireContractPanic(t *testing.T, operator string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(*ContractError)
		require.True(t, ok, "expected a *ContractError, got %#v", r)
		require.Equal(t, operator, err.Operator)
	}()
	fn()
}
