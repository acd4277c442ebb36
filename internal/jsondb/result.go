package jsondb

// okMessage is the message carried by plain successful results.
const okMessage = "Ok"

// Result is the outcome of a store operation.
//
// Callers must check Success before using Items. On failure Err holds an
// *Error that matches one of the package sentinels and Message is its text.
type Result[T any] struct {
	Success bool
	Message string
	Items   []T
	Err     error
}

// Ok returns a successful result with no payload.
func Ok[T any]() Result[T] {
	return Result[T]{Success: true, Message: okMessage}
}

// Value returns a successful result carrying items.
func Value[T any](items ...T) Result[T] {
	return Result[T]{Success: true, Message: okMessage, Items: items}
}

// Fail returns a failed result for err.
func Fail[T any](err error) Result[T] {
	return Result[T]{Message: err.Error(), Err: err}
}

// First returns the first item, or false if the result has none.
func (r Result[T]) First() (T, bool) {
	if !r.Success || len(r.Items) == 0 {
		var zero T
		return zero, false
	}
	return r.Items[0], true
}
