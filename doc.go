// Package gotry provides ergonomic wrappers that turn panic-based and
// rejection-based control flow into explicit (value, error) pairs, plus a
// bounded-concurrency batch executor that settles every input slot without
// failing fast.
//
// Single-operation wrappers
//   - Try / TryValue: invoke a function, recovering any panic into an error.
//   - TryMessage: same, but the failure is reported as a display string.
//   - TryOr: same, but failures collapse into a caller-supplied fallback.
//
// Asynchronous computations
//   - Go starts a function in its own goroutine and returns a Promise that
//     settles exactly once; Resolve and Reject build pre-settled promises.
//   - A Thunk is a lazy factory: it is invoked only when a worker claims its
//     slot, never before.
//
// Batch execution
//   - TryAll / TryAllRaw settle a slice of already-started promises.
//   - TryAllFns / TryAllFnsRaw run a slice of thunks, invoking each lazily.
//
// All four return two slices of the same length as the input; slot i of the
// output always corresponds to slot i of the input, regardless of completion
// order. The message flavor marks success with "", the raw flavor with a nil
// error. No individual failure aborts, cancels, or retries any other slot.
//
// Concurrency
// WithConcurrency(n) caps how many computations are in flight at once; zero
// or negative means unlimited. Workers claim slots through an atomic cursor
// and write settlements to disjoint indices.
//
// Error normalization
// Message converts an arbitrary recovered or rejection value into a display
// string; Tagged and NewTagged build discriminant-carrying errors that the
// raw flavor's wrap policies (WithWrapAll, WithWrapUntagged) understand.
package gotry
