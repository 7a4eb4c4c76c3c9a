// Package tuple provides fixed-arity generic tuples in two flavours.
//
// I1..I4 are immutable: slots are set at construction and only read
// accessors exist. M1..M4 are mutable: each slot has a getter and a
// setter, and tuples are handled through pointers so that writes are
// visible to everyone holding the tuple.
//
//	pair := tuple.Of2("answer", 42)
//	name, value := pair.Unpack()
//
//	counter := tuple.OfM2("hits", 0)
//	counter.SetP2(counter.P2() + 1)
//
// Two tuples are equal when they are the same variant and every slot is equal
// (see compare.Values). Immutable tuples whose slot types are all comparable
// are themselves comparable and can be used as Go map keys directly. Every
// variant is also hashing.Hashable, which makes the immutable ones
// collectable.Collectable.
//
// Tuples provide no synchronization. A mutable tuple shared between
// goroutines needs the same locking as any other mutable struct.
package tuple

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-tuple/hashing"
)

// Tuple is implemented by every variant in this package and by nothing else.
// It carries no slot access; callers work with the concrete variant they
// constructed.
type Tuple interface {
	fmt.Stringer
	hashing.Hashable
	slog.LogValuer

	// Arity returns the number of slots.
	Arity() int

	// IsMutable reports whether the slots can be reassigned.
	IsMutable() bool

	// equalTuple reports whether other is the same variant with equal slots.
	equalTuple(other Tuple) bool
}

// EqualTuples reports whether a and b are the same variant, with the same
// slot types, and hold equal slots. Different arities or mutability classes
// are never equal. Two nil tuples are equal.
func EqualTuples(a, b Tuple) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equalTuple(b)
}
