package gotry

import "context"

// Try invokes fn and returns its outcome, recovering any panic into a
// *PanicError. Zero values are legitimate successes; check the error, not
// the value.
func Try[T any](fn func() (T, error)) (T, error) {
	return safeCall(context.Background(), Lazy(fn))
}

// TryValue is Try for functions that report failure only by panicking.
func TryValue[T any](fn func() T) (T, error) {
	return Try(func() (T, error) { return fn(), nil })
}

// TryMessage is the message flavor of Try: the failure is reported as a
// normalized display string, "" meaning success.
func TryMessage[T any](fn func() (T, error)) (T, string) {
	v, err := Try(fn)
	if err != nil {
		var zero T
		return zero, Message(err)
	}
	return v, ""
}

// TryOr invokes fn and returns fallback if it errors or panics.
func TryOr[T any](fallback T, fn func() (T, error)) T {
	v, err := Try(fn)
	if err != nil {
		return fallback
	}
	return v
}
