package docquery

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// EINTERNAL is reserved for errors that should never reach a caller in
// normal operation; everything else maps to an observable failure mode of
// an external source or a caller contract violation.
const (
	EINTERNAL    = "internal"    // unexpected internal failure
	EINVALID     = "invalid"     // caller supplied invalid input
	ENOTFOUND    = "not_found"   // identifier did not resolve in a source
	EPARSE       = "parse"       // source response body could not be interpreted
	ETIMEOUT     = "timeout"     // per-source or overall deadline exceeded
	EUNAVAILABLE = "unavailable" // network-level failure reaching a source
	EUPSTREAM    = "upstream"    // source answered with a non-success status
)

// Error represents an application-specific error with a machine-readable
// code and a human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docquery error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code if it is an *Error.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message if it is an *Error.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
