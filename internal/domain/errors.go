package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a business failure so the boundary layer can map it
// to a transport-level response without inspecting message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindNotFound means a referenced entity is absent.
	KindNotFound
	// KindConflict means a business rule was violated: duplicate unique
	// field, motorcycle already rented, rental already closed, ineligible
	// driver, unknown plan.
	KindConflict
	// KindInvalidInput means the request itself is malformed.
	KindInvalidInput
	// KindUnavailable means a downstream dependency (broker, store) failed.
	KindUnavailable
)

// Error is the typed failure returned by services and repositories.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func Unavailable(msg string, err error) *Error {
	return &Error{Kind: KindUnavailable, Message: msg, Err: err}
}

// KindOf extracts the error kind, returning KindUnknown for errors that did
// not originate from this package.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}
