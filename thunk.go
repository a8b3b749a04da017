package gotry

import "context"

// Thunk is the canonical lazy factory shape: a function that, once invoked,
// performs the computation and reports its outcome. A thunk handed to the
// batch executor is invoked only when a worker claims its slot, never during
// sizing or scheduling.
type Thunk[T any] func(context.Context) (T, error)

// Lazy adapts a context-free function to a Thunk.
func Lazy[T any](fn func() (T, error)) Thunk[T] {
	return func(context.Context) (T, error) { return fn() }
}

// LazyValue adapts a context-free, error-free function to a Thunk.
func LazyValue[T any](fn func() T) Thunk[T] {
	return func(context.Context) (T, error) { return fn(), nil }
}

func (t Thunk[T]) settle(ctx context.Context) (T, error) {
	return safeCall(ctx, t)
}

// safeCall invokes fn, converting a panic into a *PanicError settlement for
// the caller's slot. Named returns are required so the deferred recover can
// override the outcome.
func safeCall[T any](ctx context.Context, fn Thunk[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = &PanicError{Value: r}
		}
	}()
	return fn(ctx)
}
