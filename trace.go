package rxparse

import (
	"iter"
	"sync/atomic"

	"github.com/tliron/commonlog"
)

var (
	log     = commonlog.GetLogger("rxparse")
	tracing atomic.Bool
)

// SetTracing turns the debug log of parse attempts on or off.  The
// messages are only written when the log verbosity allows the debug
// level.
func SetTracing(enabled bool) {
	tracing.Store(enabled)
}

// ConfigureLogging sets up the commonlog backend from the `log.*`
// settings and the parser tracing from `trace.parsers`.  A backend
// (e.g. github.com/tliron/commonlog/simple) must be linked by the
// program for anything to be written.
func ConfigureLogging(cfg *Config) {
	var path *string
	if p := cfg.GetString("log.path"); p != "" {
		path = &p
	}
	commonlog.Configure(cfg.GetInt("log.verbosity"), path)
	SetTracing(cfg.GetBool("trace.parsers"))
}

// traced logs the lifecycle of one parse attempt of the parser
// labelled name
func traced[T any](name string, pos int, seq iter.Seq2[Result[T], error]) iter.Seq2[Result[T], error] {
	if !tracing.Load() || !log.AllowLevel(commonlog.Debug) {
		return seq
	}
	return func(yield func(Result[T], error) bool) {
		log.Debugf("%s: attempt at %d", name, pos)
		matched := 0
		for r, err := range seq {
			if err != nil {
				log.Debugf("%s: fault at %d: %s", name, pos, err)
				yield(r, err)
				return
			}
			matched++
			log.Debugf("%s: match #%d at %s", name, matched, r.Range(pos))
			if !yield(r, nil) {
				log.Debugf("%s: cancelled at %d", name, pos)
				return
			}
		}
		if matched == 0 {
			log.Debugf("%s: no match at %d", name, pos)
		}
	}
}
