// Package compare provides utilities for comparing values.
package compare

import "reflect"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Values reports whether a and b are equal. If T implements Comparable[T] the
// comparison is delegated to its Equals method, otherwise the values are
// compared with reflect.DeepEqual.
//
// Example:
//
//	compare.Values(1, 1)                     // true
//	compare.Values([]int{1}, []int{1})       // true
//	compare.Values[*int](nil, nil)           // true
//	compare.Values(myComparable, other)      // myComparable.Equals(other)
func Values[T any](a, b T) bool {
	if c, ok := any(a).(Comparable[T]); ok {
		return c.Equals(b)
	}

	return reflect.DeepEqual(a, b)
}
