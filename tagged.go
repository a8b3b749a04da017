package gotry

import (
	"errors"
	"fmt"
)

// TagUnknown is the default discriminant applied by WithWrapUntagged when no
// explicit factory is supplied. It is an ordinary tag value, not a
// privileged type.
const TagUnknown = "UnknownError"

// TagError exposes the discriminant of a tagged failure.
type TagError interface {
	error
	Unwrap() error
	Tag() string
}

type taggedError struct {
	tag   string
	cause error
}

// Tagged wraps cause with a discriminant tag for exhaustive case analysis by
// callers. A nil cause yields nil.
func Tagged(tag string, cause error) error {
	if cause == nil {
		return nil
	}
	return &taggedError{tag: tag, cause: cause}
}

// NewTagged returns an ErrorFactory that tags every cause with tag. The
// returned factory is the "error class" accepted by WithWrapAll and
// WithWrapUntagged.
func NewTagged(tag string) ErrorFactory {
	return func(cause error) error { return Tagged(tag, cause) }
}

func (e *taggedError) Error() string { return e.cause.Error() }
func (e *taggedError) Unwrap() error { return e.cause }
func (e *taggedError) Tag() string   { return e.tag }

func (e *taggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s: %+v", e.tag, e.cause)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// TagOf returns the discriminant tag from err if present.
func TagOf(err error) (string, bool) {
	var te TagError
	if errors.As(err, &te) {
		return te.Tag(), true
	}
	return "", false
}

// IsTagged reports whether err carries a discriminant tag.
func IsTagged(err error) bool {
	_, ok := TagOf(err)
	return ok
}
