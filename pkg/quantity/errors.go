package quantity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors returned by this package.
type ErrorKind string

const (
	// KindInvalidArgument reports a missing or unusable argument.
	KindInvalidArgument ErrorKind = "invalid_argument"
)

// ErrInvalidArgument matches every *Error of kind KindInvalidArgument
// through errors.Is.
var ErrInvalidArgument = &Error{Kind: KindInvalidArgument}

// Error is the structured error type of this package.
type Error struct {
	Kind    ErrorKind
	Op      string
	Arg     string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("quantity: %s", e.Kind)
	}
	if e.Message == "" {
		return fmt.Sprintf("quantity: %s: %s %s", e.Op, e.Kind, e.Arg)
	}
	return fmt.Sprintf("quantity: %s: %s %s: %s", e.Op, e.Kind, e.Arg, e.Message)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func invalidArgument(op, arg, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Arg: arg, Message: message}
}
