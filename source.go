package rxparse

import (
	"context"
	"errors"
	"io"
	"sync"
)

// Source is the element sequence parsers read from.  Positions are
// absolute indexes, so a cursor is just a source plus an int and
// backtracking amounts to reusing an older position.
type Source[S any] interface {
	// At returns the element at index i.  It returns io.EOF when i
	// is past the end of the sequence.  Any other error is a fault
	// of the underlying data and is propagated by every combinator
	// unchanged.
	At(i int) (S, error)
}

type sliceSource[S any] []S

// FromSlice adapts an in-memory slice into a Source
func FromSlice[S any](items []S) Source[S] {
	return sliceSource[S](items)
}

func (s sliceSource[S]) At(i int) (S, error) {
	if i < 0 || i >= len(s) {
		var zero S
		return zero, io.EOF
	}
	return s[i], nil
}

// FromString returns a Source over the runes of data.  Indexes count
// runes, not bytes.
func FromString(data string) Source[rune] {
	return sliceSource[rune]([]rune(data))
}

// streamSource buffers elements pulled from a live producer so that
// every position that has been read once can be read again when the
// parsers backtrack.
type streamSource[S any] struct {
	mu   sync.Mutex
	next func() (S, error)
	buf  []S
	err  error
}

// FromReader returns a Source that reads runes lazily from r.  Errors
// other than io.EOF returned by r are faults.
func FromReader(r io.RuneReader) Source[rune] {
	return &streamSource[rune]{next: func() (rune, error) {
		c, _, err := r.ReadRune()
		return c, err
	}}
}

// FromChannel returns a Source fed by ch.  The sequence ends when ch
// is closed.  If ctx is done before the next element arrives, reads
// fail with ctx.Err().
func FromChannel[S any](ctx context.Context, ch <-chan S) Source[S] {
	return &streamSource[S]{next: func() (S, error) {
		select {
		case v, ok := <-ch:
			if !ok {
				var zero S
				return zero, io.EOF
			}
			return v, nil
		case <-ctx.Done():
			var zero S
			return zero, ctx.Err()
		}
	}}
}

func (s *streamSource[S]) At(i int) (S, error) {
	var zero S
	if i < 0 {
		return zero, io.EOF
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i >= len(s.buf) && s.err == nil {
		v, err := s.next()
		if err != nil {
			s.err = err
			break
		}
		s.buf = append(s.buf, v)
	}
	if i < len(s.buf) {
		return s.buf[i], nil
	}
	return zero, s.err
}

// reachable reports whether pos is a valid cursor position in src,
// that is, whether every element before it exists.  The position
// right after the last element is reachable.
func reachable[S any](src Source[S], pos int) (bool, error) {
	if pos <= 0 {
		return pos == 0, nil
	}
	_, err := src.At(pos - 1)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, io.EOF):
		return false, nil
	default:
		return false, err
	}
}
