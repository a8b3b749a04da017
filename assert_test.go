package gotry

import (
	"errors"
	"testing"
)

func TestAssert_TrueDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Assert(true) panicked: %v", r)
		}
	}()
	Assert(true, "never reported")
}

func TestAssert_FalsePanicsWithSentinel(t *testing.T) {
	_, err := TryValue(func() int {
		Assert(false, "invariant broken")
		return 1
	})
	if !errors.Is(err, ErrAssertion) {
		t.Fatalf("recovered error = %v, want ErrAssertion", err)
	}
}

func TestAssertNever_CapturedByTry(t *testing.T) {
	_, err := TryValue(func() string {
		AssertNever("unhandled-tag")
		return ""
	})
	if !errors.Is(err, ErrUnexpectedValue) {
		t.Fatalf("recovered error = %v, want ErrUnexpectedValue", err)
	}
}
