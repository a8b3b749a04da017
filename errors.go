package gotry

import "errors"

const Namespace = "gotry"

var (
	ErrAssertion       = errors.New(Namespace + ": assertion failed")
	ErrUnexpectedValue = errors.New(Namespace + ": unexpected value")
	ErrAwaitCancelled  = errors.New(Namespace + ": await cancelled")
	ErrNilRejection    = errors.New(Namespace + ": rejected with nil error")
)

// PanicError carries a recovered panic value through the error return path.
// Value holds the raw panic payload so the raw flavor can inspect it; Error
// reports the normalized message of that payload.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return Message(e.Value) }

// Unwrap exposes the panic payload as a cause when it is itself an error,
// so errors.Is/As see through panics raised with error values.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
