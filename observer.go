package rxparse

import (
	"context"
	"sync/atomic"
)

// Observer receives the results of a parse pushed to it: any number
// of OnNext calls followed by exactly one of OnError or OnCompleted.
type Observer[T any] interface {
	OnNext(value T)
	OnError(err error)
	OnCompleted()
}

// ObserverFuncs adapts plain functions into an Observer.  Nil fields
// are ignored.
type ObserverFuncs[T any] struct {
	Next      func(T)
	Error     func(error)
	Completed func()
}

func (o ObserverFuncs[T]) OnNext(value T) {
	if o.Next != nil {
		o.Next(value)
	}
}

func (o ObserverFuncs[T]) OnError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}

func (o ObserverFuncs[T]) OnCompleted() {
	if o.Completed != nil {
		o.Completed()
	}
}

// Subscription is the handle of one push based parse
type Subscription struct {
	cancel       context.CancelFunc
	done         chan struct{}
	unsubscribed atomic.Bool
}

// Unsubscribe stops the delivery of results.  Besides a notification
// already in flight, the observer receives nothing else, not even a
// terminal notification.  It doesn't block, so it can be called from
// the observer itself; Done is closed once every parser involved has
// been stopped.
func (s *Subscription) Unsubscribe() {
	s.unsubscribed.Store(true)
	s.cancel()
}

// Done is closed when the parse is over, for whatever reason
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the parse is over
func (s *Subscription) Wait() {
	<-s.done
}

// Subscribe parses src from pos with p and pushes every result to
// observer from a separate goroutine.  Cancelling ctx stops the parse
// and is reported as OnError(ctx.Err()).
func Subscribe[S, T any](
	ctx context.Context,
	p Parser[S, T],
	src Source[S],
	pos int,
	observer Observer[Result[T]],
) *Subscription {
	requireParser("Subscribe", "source", p)
	if observer == nil {
		contractViolation("Subscribe", "observer is nil")
	}
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		defer cancel()
		for r, err := range p.Parse(cancellable[S]{ctx: ctx, src: src}, pos) {
			if sub.unsubscribed.Load() {
				return
			}
			if ctx.Err() != nil {
				break
			}
			if err != nil {
				observer.OnError(err)
				return
			}
			observer.OnNext(r)
		}
		if sub.unsubscribed.Load() {
			return
		}
		if err := ctx.Err(); err != nil {
			observer.OnError(err)
			return
		}
		observer.OnCompleted()
	}()
	return sub
}

// cancellable fails every read once ctx is done, so parsers that keep
// reading without yielding anything unwind through their fault path
type cancellable[S any] struct {
	ctx context.Context
	src Source[S]
}

func (c cancellable[S]) At(i int) (S, error) {
	if err := c.ctx.Err(); err != nil {
		var zero S
		return zero, err
	}
	return c.src.At(i)
}
