package siteinfo

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL     = "internal"      // unexpected internal failure
	EINVALID      = "invalid"       // validation or malformed input
	ENOTFOUND     = "not_found"     // entity does not exist
	ETIMEOUT      = "timeout"       // deadline exceeded on a network call
	EUNAUTHORIZED = "unauthorized"  // missing or rejected credential
	EUNAVAILABLE  = "unavailable"   // remote answered with a failure status
	EUNREACHABLE  = "unreachable"   // transport-level network failure
)

// Error represents an application-specific error. Errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("siteinfo error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
