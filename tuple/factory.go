package tuple

import (
	"errors"
	"fmt"
)

// ErrShortSlice is returned by ToPair when there aren't enough items.
var ErrShortSlice = errors.New("slice too short")

// Of0 returns a single-slot tuple whose slot is absent (a nil *T). It is a
// seed value for starting a pipeline with one item, and it is NOT an empty
// tuple: Arity reports 1.
//
//	seed := tuple.Of0[Request]()
//	seed.P1() == nil // true
func Of0[T any]() I1[*T] {
	return I1[*T]{}
}

// Of returns an immutable tuple holding a1.
func Of[T1 any](a1 T1) I1[T1] {
	return NewI1(a1)
}

// Of2 returns an immutable tuple holding a1 and a2.
func Of2[T1, T2 any](a1 T1, a2 T2) I2[T1, T2] {
	return NewI2(a1, a2)
}

// Of3 returns an immutable tuple holding a1, a2 and a3.
func Of3[T1, T2, T3 any](a1 T1, a2 T2, a3 T3) I3[T1, T2, T3] {
	return NewI3(a1, a2, a3)
}

// Of4 returns an immutable tuple holding a1 through a4.
func Of4[T1, T2, T3, T4 any](a1 T1, a2 T2, a3 T3, a4 T4) I4[T1, T2, T3, T4] {
	return NewI4(a1, a2, a3, a4)
}

// OfM returns a new mutable tuple holding a1.
func OfM[T1 any](a1 T1) *M1[T1] {
	return NewM1(a1)
}

// OfM2 returns a new mutable tuple holding a1 and a2.
func OfM2[T1, T2 any](a1 T1, a2 T2) *M2[T1, T2] {
	return NewM2(a1, a2)
}

// OfM3 returns a new mutable tuple holding a1, a2 and a3.
func OfM3[T1, T2, T3 any](a1 T1, a2 T2, a3 T3) *M3[T1, T2, T3] {
	return NewM3(a1, a2, a3)
}

// OfM4 returns a new mutable tuple holding a1 through a4.
func OfM4[T1, T2, T3, T4 any](a1 T1, a2 T2, a3 T3, a4 T4) *M4[T1, T2, T3, T4] {
	return NewM4(a1, a2, a3, a4)
}

// ToPair returns the first two items as an immutable pair. Any further
// items are ignored.
func ToPair[T any](items []T) (I2[T, T], error) {
	if len(items) < 2 { //nolint:mnd
		return I2[T, T]{}, fmt.Errorf("%w: need 2 items, got %d", ErrShortSlice, len(items))
	}

	return NewI2(items[0], items[1]), nil
}
