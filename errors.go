package thimble

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInvalidConstructor
	ErrCodeTypeMismatch
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:            "UNKNOWN",
	ErrCodeInvalidConstructor: "INVALID_CONSTRUCTOR",
	ErrCodeTypeMismatch:       "TYPE_MISMATCH",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// Error is the only error kind the factory itself produces. Errors raised
// by a real constructor pass through to the caller unwrapped.
type Error struct {
	Code    ErrorCode
	Message string
	Type    string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Type != "" {
		b.WriteString(fmt.Sprintf(" type=%q:", e.Type))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithType(typeName string) *Error {
	e.Type = typeName
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func errInvalidConstructor(typeName, reason string) *Error {
	return newError(
		ErrCodeInvalidConstructor,
		fmt.Sprintf("invalid constructor for %s: %s", typeName, reason),
		nil,
	).WithType(typeName)
}

func errTypeMismatch(typeName string) *Error {
	return newError(
		ErrCodeTypeMismatch,
		fmt.Sprintf("override does not satisfy %s", typeName),
		nil,
	).WithType(typeName)
}

func IsInvalidConstructor(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidConstructor
}

func IsTypeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTypeMismatch
}
