package gotry

import (
	"errors"
	"testing"
)

func TestMessage(t *testing.T) {
	type payload struct {
		Code   int
		Reason string
	}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil never becomes empty", in: nil, want: "<nil>"},
		{name: "string passes through unchanged", in: "boom", want: "boom"},
		{name: "error message reused verbatim", in: errors.New("kaboom"), want: "kaboom"},
		{name: "struct is JSON-serialized", in: payload{Code: 7, Reason: "late"}, want: `{"Code":7,"Reason":"late"}`},
		{name: "unserializable falls back to fmt", in: complex(1, 2), want: "(1+2i)"},
		{name: "number is JSON-serialized", in: 42, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.in); got != tt.want {
				t.Fatalf("Message(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	t.Run("nil coerced to ErrNilRejection", func(t *testing.T) {
		if err := AsError(nil); !errors.Is(err, ErrNilRejection) {
			t.Fatalf("AsError(nil) = %v, want ErrNilRejection", err)
		}
	})

	t.Run("error passes through unmodified", func(t *testing.T) {
		sentinel := errors.New("same instance")
		if err := AsError(sentinel); err != sentinel {
			t.Fatalf("AsError(error) = %v, want the original instance", err)
		}
	})

	t.Run("string becomes an error with that message", func(t *testing.T) {
		if err := AsError("boom"); err == nil || err.Error() != "boom" {
			t.Fatalf("AsError(string) = %v, want message %q", err, "boom")
		}
	})
}
