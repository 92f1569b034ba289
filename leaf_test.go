package rxparse

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaves(t *testing.T) {
	t.Run("Element", func(t *testing.T) {
		assert.Equal(t, []Result[rune]{Yield('a', 1)}, parseString(t, Element('a'), "ab"))
		assert.Empty(t, parseString(t, Element('b'), "ab"))
		assert.Empty(t, parseString(t, Element('a'), ""))
	})

	t.Run("Between", func(t *testing.T) {
		digit := Between('0', '9')
		assert.Equal(t, []Result[rune]{Yield('7', 1)}, parseString(t, digit, "7"))
		assert.Empty(t, parseString(t, digit, "x"))
		assert.Equal(t, "['0'-'9']", Describe(digit))
	})

	t.Run("Between works over any ordered element", func(t *testing.T) {
		p := Between(1.5, 2.5)
		results, err := Matches(p, FromSlice([]float64{2, 3}), 0)
		require.NoError(t, err)
		assert.Equal(t, []Result[float64]{Yield(2.0, 1)}, results)

		strResults, err := Matches(Between("b", "d"), FromSlice([]string{"e"}), 0)
		require.NoError(t, err)
		assert.Empty(t, strResults)
	})

	t.Run("Literal", func(t *testing.T) {
		p := Literal(1, 2, 3)
		results, err := Matches(p, FromSlice([]int{1, 2, 3, 4}), 0)
		require.NoError(t, err)
		assert.Equal(t, []Result[[]int]{Yield([]int{1, 2, 3}, 3)}, results)

		results, err = Matches(p, FromSlice([]int{1, 2}), 0)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, "Literal(1 2 3)", Describe(p))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, []Result[string]{Yield("ñu", 2)}, parseString(t, String("ñu"), "ñus"))
		assert.Empty(t, parseString(t, String("ab"), "a"))
		assert.Equal(t, `"ab"`, Describe(String("ab")))
	})

	t.Run("String reports faults of the source", func(t *testing.T) {
		_, err := Matches(String("abc"), faultySource{data: []rune("abc"), failAt: 2}, 0)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("Succeed and Fail", func(t *testing.T) {
		assert.Equal(t, []Result[int]{Yield(7, 0)}, parseString(t, Succeed[rune](7), ""))
		assert.Empty(t, parseString(t, Fail[rune, int](), "abc"))
	})

	t.Run("Select keeps the lengths", func(t *testing.T) {
		p := Select(String("abc"), strings.ToUpper)
		assert.Equal(t, []Result[string]{Yield("ABC", 3)}, parseString(t, p, "abc"))
		assert.Equal(t, "Select\n└── \"abc\"", Describe(p))
	})

	t.Run("WithRange uses absolute positions", func(t *testing.T) {
		p := WithRange(String("c"))
		results, err := Matches(p, FromString("abc"), 2)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, NewRange(2, 3), results[0].Value.Range)
		assert.Equal(t, "c @ 2..3", results[0].Value.String())
	})

	t.Run("Func leaves compose", func(t *testing.T) {
		twice := Func[rune, rune](func(src Source[rune], pos int) iter.Seq2[Result[rune], error] {
			return func(yield func(Result[rune], error) bool) {
				_ = yield(Yield('x', 0), nil) && yield(Yield('y', 1), nil)
			}
		})
		results := parseSeq(t, And[rune, rune](twice, Element('b')), "ab")
		assert.Equal(t, []seqMatch[rune]{{Values: []rune{'y', 'b'}, Length: 2}}, results)
		assert.Equal(t, "All\n├── Func\n└── 'b'", Describe(And[rune, rune](twice, Element('b'))))
	})

	t.Run("nil arguments", func(t *testing.T) {
		requireContractPanic(t, "Satisfy", func() { Satisfy[rune]("x", nil) })
		requireContractPanic(t, "Select", func() { Select[rune, rune, int](Element('a'), nil) })
		requireContractPanic(t, "Named", func() { Named[rune, rune]("x", nil) })
		requireContractPanic(t, "WithRange", func() { WithRange[rune, rune](Func[rune, rune](nil)) })
	})
}

func TestFirst(t *testing.T) {
	r, err := First(words("a", "ab"), FromString("ab"), 0)
	require.NoError(t, err)
	assert.Equal(t, Yield("a", 1), r)

	_, err = First(String("x"), FromString("ab"), 0)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = First(AnyElement[rune](), faultySource{failAt: 0}, 0)
	assert.ErrorIs(t, err, errBoom)
}

func TestDescribe(t *testing.T) {
	t.Run("named compositions keep their children", func(t *testing.T) {
		p := Named("ab", And(Element('a'), Element('b')))
		assert.Equal(t, "ab\n└── All\n    ├── 'a'\n    └── 'b'", Describe(p))
	})

	t.Run("unknown parsers are printed by type", func(t *testing.T) {
		assert.Equal(t, "int", Describe(42))
	})
}

func TestRange(t *testing.T) {
	r := NewRange(1, 3)
	assert.Equal(t, "1..3", r.String())
	assert.Equal(t, "4", NewRange(4, 4).String())
	assert.Equal(t, 2, r.Len())
	assert.True(t, NewRange(0, 5).Contains(r))
	assert.False(t, r.Contains(NewRange(0, 2)))
	assert.Equal(t, []rune("bc"), Slice([]rune("abcd"), r))
	assert.Nil(t, Slice([]rune("a"), r))
}
