//nolint:ireturn
package tuple

import "github.com/amp-labs/amp-tuple/compare"

// Mutable tuples are used through pointers. The zero value is a tuple of zero
// values, ready to use. Slots are independent: setting one never touches
// another.

// NewM1 returns a new mutable tuple holding p1.
func NewM1[T1 any](p1 T1) *M1[T1] {
	return &M1[T1]{p1: p1}
}

// M1 is a mutable tuple of one value.
type M1[T1 any] struct {
	p1 T1
}

func (t *M1[T1]) P1() T1 {
	return t.p1
}

func (t *M1[T1]) SetP1(v T1) {
	t.p1 = v
}

// Unpack returns the current slot value.
func (t *M1[T1]) Unpack() T1 {
	return t.p1
}

// Freeze returns an immutable snapshot of the current values.
func (t *M1[T1]) Freeze() I1[T1] {
	return NewI1(t.p1)
}

// Equals reports whether both tuples currently hold equal values.
// A nil tuple only equals another nil tuple.
func (t *M1[T1]) Equals(other *M1[T1]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return compare.Values(t.p1, other.p1)
}

func (*M1[T1]) Arity() int      { return 1 }
func (*M1[T1]) IsMutable() bool { return true }

func (t *M1[T1]) String() string {
	return format(t.p1)
}

func (t *M1[T1]) equalTuple(other Tuple) bool {
	o, ok := other.(*M1[T1])

	return ok && t.Equals(o)
}

// NewM2 returns a new mutable tuple holding p1 and p2.
func NewM2[T1, T2 any](p1 T1, p2 T2) *M2[T1, T2] {
	return &M2[T1, T2]{p1: p1, p2: p2}
}

// M2 is a mutable tuple of two values.
type M2[T1, T2 any] struct {
	p1 T1
	p2 T2
}

func (t *M2[T1, T2]) P1() T1 {
	return t.p1
}

func (t *M2[T1, T2]) SetP1(v T1) {
	t.p1 = v
}

func (t *M2[T1, T2]) P2() T2 {
	return t.p2
}

func (t *M2[T1, T2]) SetP2(v T2) {
	t.p2 = v
}

// Unpack returns the current slot values in order.
func (t *M2[T1, T2]) Unpack() (T1, T2) {
	return t.p1, t.p2
}

// Freeze returns an immutable snapshot of the current values.
func (t *M2[T1, T2]) Freeze() I2[T1, T2] {
	return NewI2(t.p1, t.p2)
}

// Equals reports whether both tuples currently hold equal values.
// A nil tuple only equals another nil tuple.
func (t *M2[T1, T2]) Equals(other *M2[T1, T2]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return compare.Values(t.p1, other.p1) &&
		compare.Values(t.p2, other.p2)
}

func (*M2[T1, T2]) Arity() int      { return 2 }
func (*M2[T1, T2]) IsMutable() bool { return true }

func (t *M2[T1, T2]) String() string {
	return format(t.p1, t.p2)
}

func (t *M2[T1, T2]) equalTuple(other Tuple) bool {
	o, ok := other.(*M2[T1, T2])

	return ok && t.Equals(o)
}

// NewM3 returns a new mutable tuple holding p1, p2 and p3.
func NewM3[T1, T2, T3 any](p1 T1, p2 T2, p3 T3) *M3[T1, T2, T3] {
	return &M3[T1, T2, T3]{p1: p1, p2: p2, p3: p3}
}

// M3 is a mutable tuple of three values.
type M3[T1, T2, T3 any] struct {
	p1 T1
	p2 T2
	p3 T3
}

func (t *M3[T1, T2, T3]) P1() T1 {
	return t.p1
}

func (t *M3[T1, T2, T3]) SetP1(v T1) {
	t.p1 = v
}

func (t *M3[T1, T2, T3]) P2() T2 {
	return t.p2
}

func (t *M3[T1, T2, T3]) SetP2(v T2) {
	t.p2 = v
}

func (t *M3[T1, T2, T3]) P3() T3 {
	return t.p3
}

func (t *M3[T1, T2, T3]) SetP3(v T3) {
	t.p3 = v
}

// Unpack returns the current slot values in order.
func (t *M3[T1, T2, T3]) Unpack() (T1, T2, T3) {
	return t.p1, t.p2, t.p3
}

// Freeze returns an immutable snapshot of the current values.
func (t *M3[T1, T2, T3]) Freeze() I3[T1, T2, T3] {
	return NewI3(t.p1, t.p2, t.p3)
}

// Equals reports whether both tuples currently hold equal values.
// A nil tuple only equals another nil tuple.
func (t *M3[T1, T2, T3]) Equals(other *M3[T1, T2, T3]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return compare.Values(t.p1, other.p1) &&
		compare.Values(t.p2, other.p2) &&
		compare.Values(t.p3, other.p3)
}

func (*M3[T1, T2, T3]) Arity() int      { return 3 }
func (*M3[T1, T2, T3]) IsMutable() bool { return true }

func (t *M3[T1, T2, T3]) String() string {
	return format(t.p1, t.p2, t.p3)
}

func (t *M3[T1, T2, T3]) equalTuple(other Tuple) bool {
	o, ok := other.(*M3[T1, T2, T3])

	return ok && t.Equals(o)
}

// NewM4 returns a new mutable tuple holding p1, p2, p3 and p4.
func NewM4[T1, T2, T3, T4 any](p1 T1, p2 T2, p3 T3, p4 T4) *M4[T1, T2, T3, T4] {
	return &M4[T1, T2, T3, T4]{p1: p1, p2: p2, p3: p3, p4: p4}
}

// M4 is a mutable tuple of four values.
type M4[T1, T2, T3, T4 any] struct {
	p1 T1
	p2 T2
	p3 T3
	p4 T4
}

func (t *M4[T1, T2, T3, T4]) P1() T1 {
	return t.p1
}

func (t *M4[T1, T2, T3, T4]) SetP1(v T1) {
	t.p1 = v
}

func (t *M4[T1, T2, T3, T4]) P2() T2 {
	return t.p2
}

func (t *M4[T1, T2, T3, T4]) SetP2(v T2) {
	t.p2 = v
}

func (t *M4[T1, T2, T3, T4]) P3() T3 {
	return t.p3
}

func (t *M4[T1, T2, T3, T4]) SetP3(v T3) {
	t.p3 = v
}

func (t *M4[T1, T2, T3, T4]) P4() T4 {
	return t.p4
}

func (t *M4[T1, T2, T3, T4]) SetP4(v T4) {
	t.p4 = v
}

// Unpack returns the current slot values in order.
func (t *M4[T1, T2, T3, T4]) Unpack() (T1, T2, T3, T4) {
	return t.p1, t.p2, t.p3, t.p4
}

// Freeze returns an immutable snapshot of the current values.
func (t *M4[T1, T2, T3, T4]) Freeze() I4[T1, T2, T3, T4] {
	return NewI4(t.p1, t.p2, t.p3, t.p4)
}

// Equals reports whether both tuples currently hold equal values.
// A nil tuple only equals another nil tuple.
func (t *M4[T1, T2, T3, T4]) Equals(other *M4[T1, T2, T3, T4]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return compare.Values(t.p1, other.p1) &&
		compare.Values(t.p2, other.p2) &&
		compare.Values(t.p3, other.p3) &&
		compare.Values(t.p4, other.p4)
}

func (*M4[T1, T2, T3, T4]) Arity() int      { return 4 }
func (*M4[T1, T2, T3, T4]) IsMutable() bool { return true }

func (t *M4[T1, T2, T3, T4]) String() string {
	return format(t.p1, t.p2, t.p3, t.p4)
}

func (t *M4[T1, T2, T3, T4]) equalTuple(other Tuple) bool {
	o, ok := other.(*M4[T1, T2, T3, T4])

	return ok && t.Equals(o)
}
