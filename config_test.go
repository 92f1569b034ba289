package rxparse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, 0, cfg.GetInt("log.verbosity"))
		assert.Equal(t, "", cfg.GetString("log.path"))
		assert.False(t, cfg.GetBool("trace.parsers"))
		assert.True(t, cfg.GetBool("output.color"))
		assert.Equal(t, -1, cfg.GetInt("find.max_count"))
	})

	t.Run("LoadYAML flattens nested mappings", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.LoadYAML([]byte(`
log:
  verbosity: 2
trace:
  parsers: true
find.max_count: 10
`))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.GetInt("log.verbosity"))
		assert.True(t, cfg.GetBool("trace.parsers"))
		assert.Equal(t, 10, cfg.GetInt("find.max_count"))
		assert.True(t, cfg.GetBool("output.color"))
	})

	t.Run("LoadYAML rejects unknown settings", func(t *testing.T) {
		err := NewConfig().LoadYAML([]byte("log:\n  level: 3\n"))
		assert.EqualError(t, err, "unknown setting `log.level`")
	})

	t.Run("LoadYAML rejects values of the wrong type", func(t *testing.T) {
		err := NewConfig().LoadYAML([]byte("output:\n  color: maybe\n"))
		assert.EqualError(t, err, "setting `output.color` expects a bool, got maybe")
	})

	t.Run("LoadYAML rejects malformed documents", func(t *testing.T) {
		err := NewConfig().LoadYAML([]byte("log: [\n"))
		assert.ErrorContains(t, err, "can't parse configuration")
	})

	t.Run("settings can't change type", func(t *testing.T) {
		cfg := NewConfig()
		assert.Panics(t, func() { cfg.SetString("log.verbosity", "2") })
		assert.Panics(t, func() { cfg.GetBool("log.verbosity") })
		assert.Panics(t, func() { cfg.GetInt("nope") })
	})

	t.Run("Debug", func(t *testing.T) {
		var buf bytes.Buffer
		NewConfig().Debug(&buf)
		assert.Equal(t, `Configuration
find.max_count : -1 (int)
log.path       :  (string)
log.verbosity  : 0 (int)
output.color   : true (bool)
trace.parsers  : false (bool)
`, buf.String())
	})
}
