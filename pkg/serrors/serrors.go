// Package serrors carries semantic error kinds across layers. Services return
// them so that callers (the CLI, background workers) can decide whether an
// error is the caller's fault, a state conflict, or worth retrying.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only values built with NewKind implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested funding, plan or payback does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates invalid input, e.g. a plan with a non-positive amount.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the entity is in a state that forbids the operation,
	// e.g. settling a payback that was already cancelled.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a collaborator (database, SMTP relay) is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error carrying a kind, an optional cause and an optional
// message. errors.Is and errors.As match both the kind and the cause.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error carrying only its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is matches the kind sentinel or anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As extracts the kind sentinel or a value from the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, if any.
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the first semantic error in err's chain, or
// ErrInternal when there is none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	return ErrInternal
}

// IsPermanent reports whether retrying the operation that produced err cannot
// succeed without a change of input or state.
func IsPermanent(err error) bool {
	switch KindOf(err) {
	case ErrNotFound, ErrBadRequest, ErrConflict:
		return true
	default:
		return false
	}
}
