// Package util provides common utility functions.
package util

import "reflect"

// IsNil reports whether v is nil or an interface holding a nil pointer, map, slice, func or chan.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
