package gotry

import (
	"context"
	"fmt"
)

// Promise is an already-started asynchronous computation producing a T. It
// settles exactly once; the settlement is memoized, so Await may be called
// any number of times and from any goroutine.
type Promise[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Go starts fn in its own goroutine and returns the promise of its outcome.
// A panic inside fn settles the promise with a *PanicError instead of
// crashing the process.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.res = Failure[T](&PanicError{Value: r})
			}
		}()
		p.res = New(fn())
	}()
	return p
}

// Resolve returns a promise already settled with value.
func Resolve[T any](value T) *Promise[T] {
	return &Promise[T]{done: closedChan, res: Success(value)}
}

// Reject returns a promise already settled with err. A nil err is coerced to
// ErrNilRejection so a rejection can never be mistaken for success.
func Reject[T any](err error) *Promise[T] {
	if err == nil {
		err = ErrNilRejection
	}
	return &Promise[T]{done: closedChan, res: Failure[T](err)}
}

// Await blocks until the promise settles or ctx ends. Abandoning the wait
// does not stop the computation; in that case Await returns
// ErrAwaitCancelled wrapping ctx.Err().
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.res.Unpack()
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrAwaitCancelled, ctx.Err())
	}
}

func (p *Promise[T]) settle(ctx context.Context) (T, error) { return p.Await(ctx) }

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
