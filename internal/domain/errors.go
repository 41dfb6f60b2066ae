// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindAuthMissing
	KindAuthInvalid
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindAuthMissing:
		return "auth_missing"
	case KindAuthInvalid:
		return "auth_invalid"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the tagged error every layer returns for outcomes the client
// should see. Message is safe to show; Detail is optional field-level
// information; Err is the cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func AuthMissing(msg string) *Error {
	return &Error{Kind: KindAuthMissing, Message: msg}
}

func AuthInvalid(err error) *Error {
	return &Error{Kind: KindAuthInvalid, Message: "Invalid or expired token", Err: err}
}

func Validation(msg, detail string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Detail: detail}
}

// NotFound names the missing resource and the value that was looked up.
func NotFound(resource string, value any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %v not found", resource, value)}
}

// Empty is the NotFound returned by list operations with no rows.
func Empty(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong", Err: err}
}

// KindOf reports the kind of err. Untagged errors are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
