package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/rxparse"
)

func matchPattern(t *testing.T, pattern, input string) []string {
	t.Helper()
	p, err := compilePattern(pattern)
	require.NoError(t, err)
	results, err := rxparse.Matches(p, rxparse.FromString(input), 0)
	require.NoError(t, err)
	var out []string
	for _, r := range results {
		out = append(out, rxparse.Text(r.Value))
	}
	return out
}

func TestCompilePattern(t *testing.T) {
	for _, test := range []struct {
		name     string
		pattern  string
		input    string
		expected []string
	}{
		{"literal", "abc", "abcd", []string{"abc"}},
		{"literal mismatch", "abc", "abd", nil},
		{"any rune", "a.c", "axc", []string{"axc"}},
		{"escape", `\.\{`, ".{", []string{".{"}},
		{"escaped dot is literal", `a\.`, "ax", nil},
		{"group in any order", "{ab}", "ba", []string{"ba"}},
		{"group after sequence", "x{ab}", "xba", []string{"xba"}},
		{"groups keep their position", "{12}{34}", "2143", []string{"2143"}},
		{"groups don't mix", "{12}{34}", "3124", nil},
		{"group and trailing rune", "{12}3", "213", []string{"213"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, matchPattern(t, test.pattern, test.input))
		})
	}
}

func TestCompilePatternStructure(t *testing.T) {
	p, err := compilePattern("abc")
	require.NoError(t, err)
	assert.Equal(t, "All\n├── 'a'\n├── 'b'\n└── 'c'", rxparse.Describe(p))

	p, err = compilePattern("{ab}c")
	require.NoError(t, err)
	assert.Equal(t, `AllMany
├── AllUnordered
│   ├── 'a'
│   └── 'b'
└── Amplify
    └── 'c'`, rxparse.Describe(p))
}

func TestCompilePatternErrors(t *testing.T) {
	for pattern, expected := range map[string]string{
		"":      "empty pattern",
		"a{b":   "unclosed group at 1",
		"a}":    "unbalanced `}` at 1",
		"{a{b}": "nested group at 2",
		"a{}":   "empty group at 1",
		`ab\`:   "dangling escape at 2",
	} {
		_, err := compilePattern(pattern)
		assert.EqualError(t, err, expected, pattern)
	}
}
