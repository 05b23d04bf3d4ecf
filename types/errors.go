package types

import "fmt"

// Codes classifying why a conversion failed. Callers that need to branch on
// the failure match them through the Error interface with errors.As.
const (
	// ErrCodeMalformedTagObject is returned when a DynamoDB-side value is
	// not an object or does not have exactly one key.
	ErrCodeMalformedTagObject = "MalformedTagObject"

	// ErrCodeUnknownTag is returned when the single key of a type object is
	// not a DynamoDB type name.
	ErrCodeUnknownTag = "UnknownTag"

	// ErrCodeInvalidNumberLiteral is returned when an N or NS payload does
	// not parse as a decimal number.
	ErrCodeInvalidNumberLiteral = "InvalidNumberLiteral"

	// ErrCodeTypeMismatch is returned when a type object's payload has the
	// wrong shape for its type, or when a document root is not an object.
	ErrCodeTypeMismatch = "TypeMismatch"

	// ErrCodeUnsupportedNormalValueKind is returned when a plain value has
	// no DynamoDB representation.
	ErrCodeUnsupportedNormalValueKind = "UnsupportedNormalValueKind"
)

// An Error wraps lower level errors with code, message and an original
// error. The underlying concrete error is also wrapped for errors.Is and
// errors.As.
type Error interface {
	// Satisfy the generic error interface.
	error

	// Code returns the short phrase depicting the classification of the
	// error.
	Code() string

	// Message returns the error details message.
	Message() string

	// OrigErr returns the original error if one was set. Nil is returned
	// if no error was set.
	OrigErr() error
}

// NewError returns an Error object described by the code, message, and
// origErr.
func NewError(code, message string, origErr error) Error {
	return &baseError{
		code:    code,
		message: message,
		err:     origErr,
	}
}

// SprintError returns a string of the formatted error code.
//
// Both extra and origErr are optional. If they are included their lines
// will be added, but if they are not included their lines will be ignored.
func SprintError(code, message, extra string, origErr error) string {
	msg := fmt.Sprintf("%s: %s", code, message)
	if extra != "" {
		msg = fmt.Sprintf("%s\n\t%s", msg, extra)
	}

	if origErr != nil {
		msg = fmt.Sprintf("%s\ncaused by: %s", msg, origErr.Error())
	}

	return msg
}

// A baseError wraps the code and message which defines an error. It also
// can be used to wrap an original error object.
type baseError struct {
	// Classification of error.
	code string

	// Detailed information about error.
	message string

	// Original error this error is based off of. Allows callers to
	// inspect the cause of the failure.
	err error
}

// Error returns the string representation of the error.
//
// Satisfies the error interface.
func (b baseError) Error() string {
	return SprintError(b.code, b.message, "", b.err)
}

// String returns the string representation of the error.
// Alias for Error to satisfy the stringer interface.
func (b baseError) String() string {
	return b.Error()
}

// Code returns the short phrase depicting the classification of the error.
func (b baseError) Code() string {
	return b.code
}

// Message returns the error details message.
func (b baseError) Message() string {
	return b.message
}

// OrigErr returns the original error if one was set. Nil is returned if no
// error was set.
func (b baseError) OrigErr() error {
	return b.err
}

// Unwrap returns the original error so errors.Is and errors.As can reach
// through the classification wrapper.
func (b baseError) Unwrap() error {
	return b.err
}
