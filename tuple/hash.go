package tuple

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-tuple/collectable"
)

// updateHash writes a variant tag (mutability class, then arity) followed by
// every slot. Equal tuples of the same variant always hash the same.
func updateHash(h hash.Hash, mutable bool, slots ...any) error {
	tag := byte('I')
	if mutable {
		tag = 'M'
	}

	if _, err := h.Write([]byte{tag, byte(len(slots))}); err != nil {
		return err
	}

	for i, slot := range slots {
		if err := collectable.UpdateHash(h, slot); err != nil {
			return fmt.Errorf("slot p%d: %w", i+1, err)
		}
	}

	return nil
}

func (t I1[T1]) UpdateHash(h hash.Hash) error {
	return updateHash(h, false, t.p1)
}

func (t I2[T1, T2]) UpdateHash(h hash.Hash) error {
	return updateHash(h, false, t.p1, t.p2)
}

func (t I3[T1, T2, T3]) UpdateHash(h hash.Hash) error {
	return updateHash(h, false, t.p1, t.p2, t.p3)
}

func (t I4[T1, T2, T3, T4]) UpdateHash(h hash.Hash) error {
	return updateHash(h, false, t.p1, t.p2, t.p3, t.p4)
}

// Hashing a mutable tuple hashes its current values. Changing a slot after
// the tuple was stored under its hash makes it unreachable by that hash.

func (t *M1[T1]) UpdateHash(h hash.Hash) error {
	return updateHash(h, true, t.p1)
}

func (t *M2[T1, T2]) UpdateHash(h hash.Hash) error {
	return updateHash(h, true, t.p1, t.p2)
}

func (t *M3[T1, T2, T3]) UpdateHash(h hash.Hash) error {
	return updateHash(h, true, t.p1, t.p2, t.p3)
}

func (t *M4[T1, T2, T3, T4]) UpdateHash(h hash.Hash) error {
	return updateHash(h, true, t.p1, t.p2, t.p3, t.p4)
}
