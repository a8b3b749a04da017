package gotry

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTagged_NilCause(t *testing.T) {
	if err := Tagged("NotFoundError", nil); err != nil {
		t.Fatalf("Tagged with nil cause = %v, want nil", err)
	}
}

func TestTagged_MessageAndCause(t *testing.T) {
	cause := errors.New("missing row")
	err := Tagged("NotFoundError", cause)

	if err.Error() != "missing row" {
		t.Fatalf("Error() = %q, want cause message", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("tagged error must unwrap to its cause")
	}
}

func TestTagOf(t *testing.T) {
	cause := errors.New("missing row")
	wrapped := fmt.Errorf("loading user: %w", Tagged("NotFoundError", cause))

	tag, ok := TagOf(wrapped)
	if !ok || tag != "NotFoundError" {
		t.Fatalf("TagOf = (%q, %v), want (NotFoundError, true)", tag, ok)
	}

	if _, ok := TagOf(cause); ok {
		t.Fatalf("TagOf on an untagged error must report false")
	}
	if IsTagged(cause) {
		t.Fatalf("IsTagged on an untagged error must be false")
	}
}

func TestTagged_Formatting(t *testing.T) {
	err := Tagged("TimeoutError", errors.New("deadline"))

	if got := fmt.Sprintf("%s", err); got != "deadline" {
		t.Fatalf("%%s = %q, want %q", got, "deadline")
	}
	if got := fmt.Sprintf("%q", err); got != `"deadline"` {
		t.Fatalf("%%q = %q", got)
	}
	if got := fmt.Sprintf("%+v", err); !strings.HasPrefix(got, "TimeoutError: ") {
		t.Fatalf("%%+v = %q, want tag prefix", got)
	}
}

func TestNewTagged_Factory(t *testing.T) {
	factory := NewTagged("DatabaseError")
	cause := errors.New("connection refused")

	err := factory(cause)
	if tag, _ := TagOf(err); tag != "DatabaseError" {
		t.Fatalf("factory tag = %q, want DatabaseError", tag)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("factory must preserve the cause")
	}
	if factory(nil) != nil {
		t.Fatalf("factory with nil cause must return nil")
	}
}
