//nolint:ireturn
package tuple

import "github.com/amp-labs/amp-tuple/compare"

// NewI1 returns an immutable tuple holding p1.
func NewI1[T1 any](p1 T1) I1[T1] {
	return I1[T1]{p1: p1}
}

// I1 is an immutable tuple of one value.
type I1[T1 any] struct {
	p1 T1
}

func (t I1[T1]) P1() T1 {
	return t.p1
}

// Unpack returns the slot value.
func (t I1[T1]) Unpack() T1 {
	return t.p1
}

// Thaw returns a new mutable tuple holding the same values.
func (t I1[T1]) Thaw() *M1[T1] {
	return NewM1(t.p1)
}

// Equals reports whether both tuples hold equal values.
func (t I1[T1]) Equals(other I1[T1]) bool {
	return compare.Values(t.p1, other.p1)
}

func (I1[T1]) Arity() int      { return 1 }
func (I1[T1]) IsMutable() bool { return false }

func (t I1[T1]) String() string {
	return format(t.p1)
}

func (t I1[T1]) equalTuple(other Tuple) bool {
	o, ok := other.(I1[T1])

	return ok && t.Equals(o)
}

// NewI2 returns an immutable tuple holding p1 and p2.
func NewI2[T1, T2 any](p1 T1, p2 T2) I2[T1, T2] {
	return I2[T1, T2]{p1: p1, p2: p2}
}

// I2 is an immutable tuple of two values.
type I2[T1, T2 any] struct {
	p1 T1
	p2 T2
}

func (t I2[T1, T2]) P1() T1 {
	return t.p1
}

func (t I2[T1, T2]) P2() T2 {
	return t.p2
}

// Unpack returns the slot values in order.
func (t I2[T1, T2]) Unpack() (T1, T2) {
	return t.p1, t.p2
}

// Thaw returns a new mutable tuple holding the same values.
func (t I2[T1, T2]) Thaw() *M2[T1, T2] {
	return NewM2(t.p1, t.p2)
}

// Equals reports whether both tuples hold equal values, slot by slot.
func (t I2[T1, T2]) Equals(other I2[T1, T2]) bool {
	return compare.Values(t.p1, other.p1) &&
		compare.Values(t.p2, other.p2)
}

func (I2[T1, T2]) Arity() int      { return 2 }
func (I2[T1, T2]) IsMutable() bool { return false }

func (t I2[T1, T2]) String() string {
	return format(t.p1, t.p2)
}

func (t I2[T1, T2]) equalTuple(other Tuple) bool {
	o, ok := other.(I2[T1, T2])

	return ok && t.Equals(o)
}

// NewI3 returns an immutable tuple holding p1, p2 and p3.
func NewI3[T1, T2, T3 any](p1 T1, p2 T2, p3 T3) I3[T1, T2, T3] {
	return I3[T1, T2, T3]{p1: p1, p2: p2, p3: p3}
}

// I3 is an immutable tuple of three values.
type I3[T1, T2, T3 any] struct {
	p1 T1
	p2 T2
	p3 T3
}

func (t I3[T1, T2, T3]) P1() T1 {
	return t.p1
}

func (t I3[T1, T2, T3]) P2() T2 {
	return t.p2
}

func (t I3[T1, T2, T3]) P3() T3 {
	return t.p3
}

// Unpack returns the slot values in order.
func (t I3[T1, T2, T3]) Unpack() (T1, T2, T3) {
	return t.p1, t.p2, t.p3
}

// Thaw returns a new mutable tuple holding the same values.
func (t I3[T1, T2, T3]) Thaw() *M3[T1, T2, T3] {
	return NewM3(t.p1, t.p2, t.p3)
}

// Equals reports whether both tuples hold equal values, slot by slot.
func (t I3[T1, T2, T3]) Equals(other I3[T1, T2, T3]) bool {
	return compare.Values(t.p1, other.p1) &&
		compare.Values(t.p2, other.p2) &&
		compare.Values(t.p3, other.p3)
}

func (I3[T1, T2, T3]) Arity() int      { return 3 }
func (I3[T1, T2, T3]) IsMutable() bool { return false }

func (t I3[T1, T2, T3]) String() string {
	return format(t.p1, t.p2, t.p3)
}

func (t I3[T1, T2, T3]) equalTuple(other Tuple) bool {
	o, ok := other.(I3[T1, T2, T3])

	return ok && t.Equals(o)
}

// NewI4 returns an immutable tuple holding p1, p2, p3 and p4.
func NewI4[T1, T2, T3, T4 any](p1 T1, p2 T2, p3 T3, p4 T4) I4[T1, T2, T3, T4] {
	return I4[T1, T2, T3, T4]{p1: p1, p2: p2, p3: p3, p4: p4}
}

// I4 is an immutable tuple of four values.
type I4[T1, T2, T3, T4 any] struct {
	p1 T1
	p2 T2
	p3 T3
	p4 T4
}

func (t I4[T1, T2, T3, T4]) P1() T1 {
	return t.p1
}

func (t I4[T1, T2, T3, T4]) P2() T2 {
	return t.p2
}

func (t I4[T1, T2, T3, T4]) P3() T3 {
	return t.p3
}

func (t I4[T1, T2, T3, T4]) P4() T4 {
	return t.p4
}

// Unpack returns the slot values in order.
func (t I4[T1, T2, T3, T4]) Unpack() (T1, T2, T3, T4) {
	return t.p1, t.p2, t.p3, t.p4
}

// Thaw returns a new mutable tuple holding the same values.
func (t I4[T1, T2, T3, T4]) Thaw() *M4[T1, T2, T3, T4] {
	return NewM4(t.p1, t.p2, t.p3, t.p4)
}

// Equals reports whether both tuples hold equal values, slot by slot.
func (t I4[T1, T2, T3, T4]) Equals(other I4[T1, T2, T3, T4]) bool {
	return compare.Values(t.p1, other.p1) &&
		compare.Values(t.p2, other.p2) &&
		compare.Values(t.p3, other.p3) &&
		compare.Values(t.p4, other.p4)
}

func (I4[T1, T2, T3, T4]) Arity() int      { return 4 }
func (I4[T1, T2, T3, T4]) IsMutable() bool { return false }

func (t I4[T1, T2, T3, T4]) String() string {
	return format(t.p1, t.p2, t.p3, t.p4)
}

func (t I4[T1, T2, T3, T4]) equalTuple(other Tuple) bool {
	o, ok := other.(I4[T1, T2, T3, T4])

	return ok && t.Equals(o)
}
