// Package apperr defines the error taxonomy surfaced by ledger operations.
//
// Every failure the core reports to its caller carries a Kind and a
// human-readable message. The transport layer maps kinds onto wire codes;
// anything that is not an *Error is treated as an internal failure.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind string

const (
	// KindNotFound means a referenced group or member does not exist, or does
	// not belong to the expected parent.
	KindNotFound Kind = "not_found"

	// KindConflict means a uniqueness rule would be violated.
	KindConflict Kind = "conflict"

	// KindInvalidInput means the request is well-formed but cannot be applied
	// (payer outside the group, nobody to split with, non-positive amount).
	KindInvalidInput Kind = "invalid_input"

	// KindInternal is reported for errors that carry no kind.
	KindInternal Kind = "internal"
)

// Error is a classified operation failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound returns a KindNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a KindConflict error with a formatted message.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput returns a KindInvalidInput error with a formatted message.
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of the first *Error in err's chain,
// or KindInternal if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
