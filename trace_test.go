package rxparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/tliron/commonlog/simple"
)

func TestTracing(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "trace.log")
	cfg := NewConfig()
	cfg.SetInt("log.verbosity", 4)
	cfg.SetString("log.path", logPath)
	cfg.SetBool("trace.parsers", true)
	ConfigureLogging(cfg)
	t.Cleanup(func() {
		ConfigureLogging(NewConfig())
	})
	require.True(t, tracing.Load())

	t.Run("attempts and matches are logged", func(t *testing.T) {
		assert.Equal(t, []Result[string]{Yield("ab", 2)}, parseString(t, Named("ab", String("ab")), "ab"))
		assert.Empty(t, parseString(t, Named("cd", String("cd")), "ab"))

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		written := string(data)
		assert.Contains(t, written, "ab: attempt at 0")
		assert.Contains(t, written, "ab: match #1 at 0..2")
		assert.Contains(t, written, "cd: no match at 0")
	})

	// tracing must not change what parsers yield, including when the
	// consumer stops early
	t.Run("results are unchanged", func(t *testing.T) {
		p := Ambiguous(Named("ab", String("ab")))
		results := parseSeq(t, p, "abab")
		assert.Equal(t, []seqMatch[string]{
			{Values: []string{"ab"}, Length: 2},
			{Values: []string{"ab"}, Length: 4},
		}, results)

		r, err := First(p, FromString("abab"), 0)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Length)

		_, err = Matches(String("ab"), faultySource{failAt: 1, data: []rune("ab")}, 0)
		assert.ErrorIs(t, err, errBoom)
	})
}
