package gotry

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// awaitable is the internal union of the two batch input modes: a pre-started
// Promise settles by waiting, a Thunk settles by being invoked (lazily, at
// claim time).
type awaitable[T any] interface {
	settle(ctx context.Context) (T, error)
}

// TryAll awaits every promise and returns per-slot outcomes in the message
// flavor: errs[i] is "" when promises[i] succeeded and the normalized failure
// message otherwise; values[i] holds the produced value on success and the
// zero value otherwise. Both slices have len(promises) elements, slot i of
// the output always corresponds to slot i of the input, and no failure
// aborts, cancels, or retries any other slot.
//
// Check errs[i] against "", never the paired value: zero values are
// legitimate successes. The residual ambiguity of a computation that panics
// with an empty string is not representable here; use TryAllRaw when the
// lossless nil-vs-non-nil discriminant matters.
func TryAll[T any](ctx context.Context, promises []*Promise[T], opts ...Option) ([]string, []T) {
	cfg := applyOptions(opts)
	return messages(settlePromises(ctx, promises, &cfg))
}

// TryAllRaw is TryAll with failures reported as errors instead of strings:
// errs[i] is nil on success. The error-wrapping policy is configurable via
// WithWrapAll and WithWrapUntagged; by default reasons pass through
// unmodified.
func TryAllRaw[T any](ctx context.Context, promises []*Promise[T], opts ...Option) ([]error, []T) {
	cfg := applyOptions(opts)
	return rawErrors(settlePromises(ctx, promises, &cfg), &cfg)
}

// TryAllFns runs the thunks with at most WithConcurrency(n) in flight at
// once and returns per-slot outcomes in the message flavor, like TryAll.
// Each thunk is invoked exactly once, and only when a worker claims its
// slot — a thunk beyond the concurrency cap is not invoked until an earlier
// slot has settled. A panicking thunk settles its own slot as failed.
func TryAllFns[T any](ctx context.Context, fns []Thunk[T], opts ...Option) ([]string, []T) {
	cfg := applyOptions(opts)
	return messages(settleThunks(ctx, fns, &cfg))
}

// TryAllFnsRaw is TryAllFns with failures reported as errors, honoring the
// same wrapping policies as TryAllRaw.
func TryAllFnsRaw[T any](ctx context.Context, fns []Thunk[T], opts ...Option) ([]error, []T) {
	cfg := applyOptions(opts)
	return rawErrors(settleThunks(ctx, fns, &cfg), &cfg)
}

// settlePromises settles pre-started computations. With no concurrency bound
// there is nothing to schedule: every computation is already running, so the
// slots are awaited in place without pool bookkeeping (the allSettled
// analog). A positive bound still goes through the pool, which then limits
// how many awaits are outstanding.
func settlePromises[T any](ctx context.Context, promises []*Promise[T], cfg *config) []Result[T] {
	if len(promises) == 0 {
		return nil
	}
	if cfg.concurrency <= 0 {
		out := make([]Result[T], len(promises))
		for i, p := range promises {
			out[i] = New(p.Await(ctx))
		}
		return out
	}
	items := make([]awaitable[T], len(promises))
	for i, p := range promises {
		items[i] = p
	}
	return settleAll(ctx, items, cfg.concurrency)
}

func settleThunks[T any](ctx context.Context, fns []Thunk[T], cfg *config) []Result[T] {
	if len(fns) == 0 {
		return nil
	}
	items := make([]awaitable[T], len(fns))
	for i, fn := range fns {
		items[i] = fn
	}
	return settleAll(ctx, items, cfg.concurrency)
}

// settleAll is the general path: workers claim slots through a shared atomic
// cursor and record settlements at their claimed index. Writes land on
// disjoint indices, so no settlement is ever written twice; group Wait
// publishes them to the caller. Workers always return nil — the group never
// cancels, so every slot is attempted exactly once regardless of other
// slots' failures.
func settleAll[T any](ctx context.Context, items []awaitable[T], concurrency int) []Result[T] {
	n := len(items)
	workers := concurrency
	if workers <= 0 || workers > n {
		workers = n
	}

	out := make([]Result[T], n)
	var cursor atomic.Int64
	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(cursor.Add(1)) - 1
				if i >= n {
					return nil
				}
				out[i] = New(items[i].settle(ctx))
			}
		})
	}
	_ = g.Wait()
	return out
}

func messages[T any](settled []Result[T]) ([]string, []T) {
	errs := make([]string, len(settled))
	values := make([]T, len(settled))
	for i, s := range settled {
		if s.Err != nil {
			errs[i] = Message(s.Err)
			continue
		}
		values[i] = s.Value
	}
	return errs, values
}

func rawErrors[T any](settled []Result[T], cfg *config) ([]error, []T) {
	errs := make([]error, len(settled))
	values := make([]T, len(settled))
	for i, s := range settled {
		if s.Err != nil {
			errs[i] = cfg.wrapReason(s.Err)
			continue
		}
		values[i] = s.Value
	}
	return errs, values
}
