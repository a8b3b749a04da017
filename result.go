package gotry

// Result pairs a value of type T with an error. Err == nil is the absence
// marker meaning success; the discriminant is always the error slot, never a
// truthiness-style check on Value (zero values are legitimate successes).
type Result[T any] struct {
	Value T
	Err   error
}

// New creates a Result from a conventional (value, error) return.
func New[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Err: err}
}

// Success creates a Result representing a successful computation.
func Success[T any](value T) Result[T] { return Result[T]{Value: value} }

// Failure creates a Result representing a failed computation.
func Failure[T any](err error) Result[T] { return Result[T]{Err: err} }

// Unpack returns the pair in conventional (value, error) order.
func (r Result[T]) Unpack() (T, error) { return r.Value, r.Err }

func (r Result[T]) IsSuccess() bool { return r.Err == nil }
func (r Result[T]) IsFailure() bool { return r.Err != nil }

// OrElse returns the value on success and fallback on failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Message returns the normalized failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return Message(r.Err)
}
