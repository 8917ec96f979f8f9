package jsonish

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind categorizes parse and accessor failures. The set is closed:
// every error returned by this package carries exactly one of these kinds.
type ErrorKind string

const (
	// KindEndOfInput means the input ran out in the middle of a construct.
	KindEndOfInput ErrorKind = "end of input"
	// KindSyntaxError means an unexpected character or malformed construct.
	KindSyntaxError ErrorKind = "syntax error"
	// KindNumberParseError means a numeric literal (or \u hex escape) failed to parse.
	KindNumberParseError ErrorKind = "number parse error"
	// KindCastError means the bits were valid but the result is not representable,
	// e.g. a \u escape decoding to something that is not a Unicode scalar value.
	KindCastError ErrorKind = "cast error"
	// KindNotFound means a required key was absent.
	KindNotFound ErrorKind = "not found"
	// KindTypeMismatch means the stored value cannot coerce to the requested shape.
	KindTypeMismatch ErrorKind = "type mismatch"
	// KindValueIsNull means a concrete value was required but null was stored.
	KindValueIsNull ErrorKind = "value is null"
)

// Error is the error type returned by every fallible operation in this package.
// It is immutable once constructed.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so callers can match with errors.Is against a
// bare &Error{Kind: ...} sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newEndOfInput(message string) *Error {
	return &Error{Kind: KindEndOfInput, Message: message}
}

func newSyntaxError(message string) *Error {
	return &Error{Kind: KindSyntaxError, Message: message}
}

func newCastError(message string) *Error {
	return &Error{Kind: KindCastError, Message: message}
}

func newNotFound(key string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("key %q is absent", key)}
}

func newTypeMismatch(want string, got Type) *Error {
	return &Error{Kind: KindTypeMismatch, Message: fmt.Sprintf("cannot use %s value as %s", got, want)}
}

func newValueIsNull(want string) *Error {
	return &Error{Kind: KindValueIsNull, Message: fmt.Sprintf("value is null, %s required", want)}
}

// newNumberError converts a strconv failure into a NumberParseError,
// keeping the underlying error for Unwrap.
func newNumberError(literal string, err error) *Error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return &Error{
		Kind:    KindNumberParseError,
		Message: fmt.Sprintf("cannot parse number %q", literal),
		Err:     err,
	}
}
