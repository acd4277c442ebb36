package jsondb

import "reflect"

// Cloner is implemented by types that can clone themselves.
type Cloner[T any] interface {
	Clone() T
}

// Entity is the capability set a record needs to live in a Store.
//
// SetID is only called by the Store when a record is added.
type Entity[T any] interface {
	Cloner[T]
	GetID() int
	SetID(id int)
}

// Validator is optionally implemented by entities. Add and Update reject
// entities whose Validate returns an error.
type Validator interface {
	Validate() error
}

// isNil reports whether v is a nil interface or a typed nil pointer, map,
// slice or func.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() { //nolint:exhaustive // Only nillable kinds matter.
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
