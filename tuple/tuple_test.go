package tuple

import (
	"strings"
	"testing"

	"github.com/amp-labs/amp-tuple/collectable"
	"github.com/amp-labs/amp-tuple/compare"
	"github.com/stretchr/testify/assert"
)

var (
	_ Tuple = I1[int]{}
	_ Tuple = I2[int, string]{}
	_ Tuple = I3[int, string, bool]{}
	_ Tuple = I4[int, string, bool, float64]{}
	_ Tuple = (*M1[int])(nil)
	_ Tuple = (*M2[int, string])(nil)
	_ Tuple = (*M3[int, string, bool])(nil)
	_ Tuple = (*M4[int, string, bool, float64])(nil)

	_ collectable.Collectable[I2[string, int]] = I2[string, int]{}
	_ compare.Comparable[*M2[string, int]]     = (*M2[string, int])(nil)
)

func TestImmutableAccessors(t *testing.T) {
	t.Parallel()

	t1 := NewI1("hello")
	assert.Equal(t, "hello", t1.P1())
	assert.Equal(t, "hello", t1.Unpack())

	t2 := NewI2("hello", 42)
	assert.Equal(t, "hello", t2.P1())
	assert.Equal(t, 42, t2.P2())

	t3 := NewI3("hello", 42, true)
	assert.Equal(t, "hello", t3.P1())
	assert.Equal(t, 42, t3.P2())
	assert.True(t, t3.P3())

	t4 := NewI4("hello", 42, true, 3.14)
	assert.Equal(t, "hello", t4.P1())
	assert.Equal(t, 42, t4.P2())
	assert.True(t, t4.P3())
	assert.InEpsilon(t, 3.14, t4.P4(), 0.0001)

	a, b, c, d := t4.Unpack()
	assert.Equal(t, "hello", a)
	assert.Equal(t, 42, b)
	assert.True(t, c)
	assert.InEpsilon(t, 3.14, d, 0.0001)
}

func TestArityAndMutability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tuple   Tuple
		arity   int
		mutable bool
	}{
		{"I1", Of(1), 1, false},
		{"I2", Of2(1, "a"), 2, false},
		{"I3", Of3(1, "a", true), 3, false},
		{"I4", Of4(1, "a", true, 2.5), 4, false},
		{"M1", OfM(1), 1, true},
		{"M2", OfM2(1, "a"), 2, true},
		{"M3", OfM3(1, "a", true), 3, true},
		{"M4", OfM4(1, "a", true, 2.5), 4, true},
		{"Of0", Of0[string](), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.arity, tt.tuple.Arity())
			assert.Equal(t, tt.mutable, tt.tuple.IsMutable())
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	t.Run("independently built tuples are equal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Of2(1, "x").Equals(Of2(1, "x")))
		assert.True(t, Of3(1, "x", false).Equals(Of3(1, "x", false)))
		assert.True(t, Of4(1, "x", false, 'r').Equals(Of4(1, "x", false, 'r')))
	})

	t.Run("every slot is checked", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Of2(1, "x").Equals(Of2(2, "x")))
		assert.False(t, Of2(1, "x").Equals(Of2(1, "y")))
		assert.False(t, Of4(1, "x", false, 'r').Equals(Of4(1, "x", false, 's')))
	})

	t.Run("different arities are never equal", func(t *testing.T) {
		t.Parallel()

		assert.False(t, EqualTuples(Of(1), Of2(1, 2)))
		assert.False(t, EqualTuples(Of2(1, 2), Of3(1, 2, 0)))
	})

	t.Run("different mutability classes are never equal", func(t *testing.T) {
		t.Parallel()

		assert.False(t, EqualTuples(Of2(1, "x"), OfM2(1, "x")))
		assert.False(t, EqualTuples(OfM2(1, "x"), Of2(1, "x")))
	})

	t.Run("different slot types are never equal", func(t *testing.T) {
		t.Parallel()

		assert.False(t, EqualTuples(Of(1), Of(int64(1))))
	})

	t.Run("dynamic equality of the same variant", func(t *testing.T) {
		t.Parallel()

		assert.True(t, EqualTuples(Of2(1, "x"), Of2(1, "x")))
		assert.True(t, EqualTuples(OfM2(1, "x"), OfM2(1, "x")))
		assert.True(t, EqualTuples(nil, nil))
		assert.False(t, EqualTuples(Of(1), nil))
		assert.False(t, EqualTuples(nil, OfM(1)))
	})

	t.Run("slots without == compare structurally", func(t *testing.T) {
		t.Parallel()

		a := Of2([]int{1, 2}, map[string]int{"k": 1})
		b := Of2([]int{1, 2}, map[string]int{"k": 1})
		c := Of2([]int{1, 2}, map[string]int{"k": 2})

		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})

	t.Run("slot Equals is honoured", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Of2(folded("Go"), 1).Equals(Of2(folded("GO"), 1)))
		assert.False(t, Of2(folded("Go"), 1).Equals(Of2(folded("Rust"), 1)))
	})

	t.Run("nested tuples", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Of2(Of(1), OfM2("a", 2)).Equals(Of2(Of(1), OfM2("a", 2))))
		assert.False(t, Of2(Of(1), OfM2("a", 2)).Equals(Of2(Of(1), OfM2("a", 3))))
	})

	t.Run("absent slots", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Of2[*int, error](nil, nil).Equals(Of2[*int, error](nil, nil)))
	})
}

func TestComparableSlotsWorkWithBuiltins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Of2("x", 1), Of2("x", 1))
	assert.True(t, Of2("x", 1) == Of2("x", 1)) //nolint:testifylint

	seen := map[I2[string, int]]bool{}
	seen[Of2("x", 1)] = true

	assert.True(t, seen[Of2("x", 1)])
	assert.False(t, seen[Of2("x", 2)])
}

func TestThawAndFreeze(t *testing.T) {
	t.Parallel()

	frozen := Of3("a", 1, true)
	thawed := frozen.Thaw()

	thawed.SetP2(2)

	assert.Equal(t, 1, frozen.P2())
	assert.Equal(t, 2, thawed.P2())

	snapshot := thawed.Freeze()
	thawed.SetP1("b")

	assert.Equal(t, Of3("a", 2, true), snapshot)
	assert.True(t, Of(7).Thaw().Freeze().Equals(Of(7)))
	assert.True(t, Of2(7, "x").Thaw().Freeze().Equals(Of2(7, "x")))
	assert.True(t, Of4(7, "x", 1.5, false).Thaw().Freeze().Equals(Of4(7, "x", 1.5, false)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(1)", Of(1).String())
	assert.Equal(t, "(1, x)", Of2(1, "x").String())
	assert.Equal(t, "(1, x, true)", OfM3(1, "x", true).String())
	assert.Equal(t, "(1, x, true, <nil>)", Of4[int, string, bool, error](1, "x", true, nil).String())
	assert.Equal(t, "((1, 2), [a b])", Of2(Of2(1, 2), []string{"a", "b"}).String())
}

// folded compares case-insensitively.
type folded string

func (f folded) Equals(other folded) bool {
	return strings.EqualFold(string(f), string(other))
}
