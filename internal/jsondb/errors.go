// Error taxonomy for store operations.

package jsondb

import "fmt"

// ErrorCode identifies the kind of a store failure.
type ErrorCode string

const (
	// CodeMalformedStore is used when the backing file is not a valid record array.
	CodeMalformedStore ErrorCode = "MALFORMED_STORE"
	// CodePersistence is used when reading or writing the backing file fails.
	CodePersistence ErrorCode = "PERSISTENCE"
	// CodeNotFound is used when no record has the requested identifier.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeInvalidEntity is used when an entity is absent or fails validation.
	CodeInvalidEntity ErrorCode = "INVALID_ENTITY"
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrMalformedStore = &Error{code: CodeMalformedStore, message: "malformed store"}
	ErrPersistence    = &Error{code: CodePersistence, message: "persistence failure"}
	ErrNotFound       = &Error{code: CodeNotFound, message: "record not found"}
	ErrInvalidEntity  = &Error{code: CodeInvalidEntity, message: "invalid entity"}
)

// Error is a store failure with a code, a message and an optional cause.
type Error struct {
	code       ErrorCode
	message    string
	wrappedErr error
}

func newError(code ErrorCode, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap returns a copy of e with err as the underlying cause.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.wrappedErr = err
	return &c
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.wrappedErr != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrappedErr)
	}
	return e.message
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Unwrap returns the wrapped error if any.
func (e *Error) Unwrap() error {
	return e.wrappedErr
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.code == e.code
}

func notFound(id int) *Error {
	return newError(CodeNotFound, fmt.Sprintf("Record with Id:%d not found", id))
}

func invalidEntity(message string) *Error {
	return newError(CodeInvalidEntity, message)
}

func malformed(path string, err error) *Error {
	return newError(CodeMalformedStore, fmt.Sprintf("malformed store %s", path)).Wrap(err)
}

func persistence(message string, err error) *Error {
	return newError(CodePersistence, message).Wrap(err)
}
