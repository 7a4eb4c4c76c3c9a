package collectable

import (
	"errors"
	"fmt"
	"hash"
	"reflect"

	"github.com/amp-labs/amp-tuple/compare"
	"github.com/amp-labs/amp-tuple/hashing"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Map or Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// nilMarker is written in place of a nil pointer or interface.
var nilMarker = []byte{0} //nolint:gochecknoglobals

// UpdateHash writes value into h. Hashable values hash themselves, nil
// pointers and interfaces write a fixed marker, non-nil pointers hash what
// they point to, and the built-in numeric, string, []byte and bool types
// are hashed directly. Named types whose underlying type is one of those
// are hashed by their underlying value unless they define an Equals method.
// Strings and byte slices, including hashing.HashableString and
// hashing.HashableBytes, are length-prefixed so that consecutive values
// can't run into each other.
//
// Anything else returns ErrUnsupportedType. For the types hashed here,
// values that are equal under compare.Values produce the same hash. A type
// that implements both hashing.Hashable and compare.Comparable must keep
// the two consistent itself.
func UpdateHash(h hash.Hash, value any) error { //nolint:cyclop,funlen
	switch typedValue := value.(type) {
	case nil:
		_, err := h.Write(nilMarker)

		return err
	case hashing.HashableString:
		return hashFramed(h, []byte(typedValue))
	case hashing.HashableBytes:
		return hashFramed(h, typedValue)
	case hashing.Hashable:
		if rv := reflect.ValueOf(typedValue); rv.Kind() == reflect.Pointer && rv.IsNil() {
			_, err := h.Write(nilMarker)

			return err
		}

		return typedValue.UpdateHash(h)
	case int:
		return hashing.HashableInt(typedValue).UpdateHash(h)
	case int8:
		return hashing.HashableInt8(typedValue).UpdateHash(h)
	case int16:
		return hashing.HashableInt16(typedValue).UpdateHash(h)
	case int32:
		return hashing.HashableInt32(typedValue).UpdateHash(h)
	case int64:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case uint:
		return hashing.HashableUint(typedValue).UpdateHash(h)
	case uint8:
		return hashing.HashableUint8(typedValue).UpdateHash(h)
	case uint16:
		return hashing.HashableUint16(typedValue).UpdateHash(h)
	case uint32:
		return hashing.HashableUint32(typedValue).UpdateHash(h)
	case uint64:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case float32:
		return hashing.HashableFloat32(typedValue).UpdateHash(h)
	case float64:
		return hashing.HashableFloat64(typedValue).UpdateHash(h)
	case string:
		return hashFramed(h, []byte(typedValue))
	case []byte:
		return hashFramed(h, typedValue)
	case bool:
		return hashing.HashableBool(typedValue).UpdateHash(h)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer {
		return updateHashByKind(h, rv)
	}

	if rv.IsNil() {
		_, err := h.Write(nilMarker)

		return err
	}

	// A non-nil pointer is framed with a 1 so it never hashes like nil.
	if _, err := h.Write([]byte{1}); err != nil {
		return err
	}

	return UpdateHash(h, rv.Elem().Interface())
}

// updateHashByKind hashes named types by their underlying primitive value.
// Types with their own Equals may define equality that the underlying value
// doesn't follow, so they must implement hashing.Hashable instead.
func updateHashByKind(h hash.Hash, rv reflect.Value) error { //nolint:cyclop
	if rv.MethodByName("Equals").IsValid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.String:
		return hashFramed(h, []byte(rv.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashing.HashableInt64(rv.Int()).UpdateHash(h)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashing.HashableUint64(rv.Uint()).UpdateHash(h)
	case reflect.Float32, reflect.Float64:
		return hashing.HashableFloat64(rv.Float()).UpdateHash(h)
	case reflect.Bool:
		return hashing.HashableBool(rv.Bool()).UpdateHash(h)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return hashFramed(h, rv.Bytes())
		}
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// hashFramed writes the length of b followed by b.
func hashFramed(h hash.Hash, b []byte) error {
	if err := hashing.HashableInt(len(b)).UpdateHash(h); err != nil {
		return err
	}

	return hashing.HashableBytes(b).UpdateHash(h)
}

// comparableWrapper wraps a comparable value and implements Collectable[T].
type comparableWrapper[T comparable] struct {
	value T
}

// UpdateHash implements hashing.Hashable.
func (w *comparableWrapper[T]) UpdateHash(h hash.Hash) error {
	return UpdateHash(h, w.value)
}

// Equals implements compare.Comparable[T] by using the == operator.
func (w *comparableWrapper[T]) Equals(other T) bool {
	return w.value == other
}

// FromComparable creates a Collectable[T] from any comparable value.
// It supports all numeric types, strings, byte slices, and booleans.
// For unsupported types, the UpdateHash method will return an error.
func FromComparable[T comparable](value T) Collectable[T] {
	return &comparableWrapper[T]{value: value}
}

// anyWrapper wraps a value of any type and implements Collectable[T] using
// compare.Values for equality.
type anyWrapper[T any] struct {
	value T
}

func (w *anyWrapper[T]) UpdateHash(h hash.Hash) error {
	return UpdateHash(h, w.value)
}

func (w *anyWrapper[T]) Equals(other T) bool {
	return compare.Values(w.value, other)
}

// FromAny creates a Collectable[T] from a value that need not be comparable
// with ==. Equality is structural (see compare.Values) and hashing follows
// UpdateHash, so slices, pointers and values implementing hashing.Hashable
// and compare.Comparable are all accepted.
func FromAny[T any](value T) Collectable[T] {
	return &anyWrapper[T]{value: value}
}
