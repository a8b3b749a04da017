package gotry

import (
	"fmt"

	"github.com/ygrebnov/errorc"
)

// Assert panics with an ErrAssertion-based error when cond is false. Pair it
// with Try, which converts the panic back into an explicit error return.
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	panic(errorc.With(ErrAssertion, errorc.String("message", msg)))
}

// AssertNever marks a branch that must be unreachable, such as the default
// case of a switch over a closed set of tags. It always panics with an
// ErrUnexpectedValue-based error carrying the offending value.
func AssertNever(v any) {
	panic(errorc.With(ErrUnexpectedValue, errorc.String("value", fmt.Sprintf("%v", v))))
}
