package gotry

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message converts an arbitrary recovered or rejection value into a display
// string:
//   - nil yields "<nil>", never an empty string, so an absent reason can not
//     masquerade as success;
//   - strings pass through unchanged;
//   - errors report Error() verbatim;
//   - anything else is JSON-serialized, falling back to fmt's %v rendering
//     when serialization fails (cycles, channels, funcs).
func Message(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case error:
		return x.Error()
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

// AsError coerces an arbitrary recovered or rejection value into an error.
// Errors pass through unmodified; nil becomes ErrNilRejection; everything
// else becomes an error whose message is Message(v).
func AsError(v any) error {
	switch x := v.(type) {
	case nil:
		return ErrNilRejection
	case error:
		return x
	}
	return errors.New(Message(v))
}
