package coerce

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code validation error kind
type Code string

const (
	CodeWrongType         Code = "wrong_type"
	CodeOutOfRange        Code = "out_of_range"
	CodeBadFormat         Code = "bad_format"
	CodePrecisionExceeded Code = "precision_exceeded"
	CodeScaleExceeded     Code = "scale_exceeded"
	CodeRequired          Code = "required"
	CodeNullNotPermitted  Code = "null_not_permitted"
	CodeTooLong           Code = "too_long"
	CodeNotEnumMember     Code = "not_enum_member"
	CodeHostBitsSet       Code = "host_bits_set"
)

// Sentinels for errors.Is, matched by code.
var (
	ErrWrongType         = &Error{Code: CodeWrongType}
	ErrOutOfRange        = &Error{Code: CodeOutOfRange}
	ErrBadFormat         = &Error{Code: CodeBadFormat}
	ErrPrecisionExceeded = &Error{Code: CodePrecisionExceeded}
	ErrScaleExceeded     = &Error{Code: CodeScaleExceeded}
	ErrRequired          = &Error{Code: CodeRequired}
	ErrNullNotPermitted  = &Error{Code: CodeNullNotPermitted}
	ErrTooLong           = &Error{Code: CodeTooLong}
	ErrNotEnumMember     = &Error{Code: CodeNotEnumMember}
	ErrHostBitsSet       = &Error{Code: CodeHostBitsSet}
)

// Error validation error. It is returned, never panicked, and carries the
// column name once a record-level validator has seen it.
type Error struct {
	Code    Code   `json:"code"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// Errorf returns a validation error of the given code.
func Errorf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Column != "" {
		return e.Column + ": " + e.Message
	}
	return e.Message
}

// Is reports whether target is a validation error of the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithColumn returns a copy of e attributed to column.
func (e *Error) WithColumn(column string) *Error {
	c := *e
	c.Column = column
	return &c
}

// CodeOf returns the code of a validation error, "" for other errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func wrongType(want string, raw interface{}) *Error {
	return Errorf(CodeWrongType, "expected %s, received %T", want, raw)
}
