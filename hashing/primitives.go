package hashing

import (
	"bytes"
	"encoding/binary"
	"hash"
	"math"
)

// Fixed-width values are written big-endian. Platform-sized ints are widened
// to 64 bits so the same value hashes the same on every architecture.

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return bytes.Equal(b, other)
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	if b {
		return writeBytes(h, 1)
	}

	return writeBytes(h, 0)
}

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return HashableInt64(i).UpdateHash(h)
}

type HashableInt8 int8

func (i HashableInt8) UpdateHash(h hash.Hash) error {
	return writeBytes(h, byte(i))
}

type HashableInt16 int16

func (i HashableInt16) UpdateHash(h hash.Hash) error {
	return HashableUint16(uint16(i)).UpdateHash(h) //nolint:gosec
}

type HashableInt32 int32

func (i HashableInt32) UpdateHash(h hash.Hash) error {
	return HashableUint32(uint32(i)).UpdateHash(h) //nolint:gosec
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return HashableUint64(uint64(i)).UpdateHash(h) //nolint:gosec
}

type HashableUint uint

func (u HashableUint) UpdateHash(h hash.Hash) error {
	return HashableUint64(u).UpdateHash(h)
}

type HashableUint8 uint8

func (u HashableUint8) UpdateHash(h hash.Hash) error {
	return writeBytes(h, byte(u))
}

type HashableUint16 uint16

func (u HashableUint16) UpdateHash(h hash.Hash) error {
	return writeBytes(h, binary.BigEndian.AppendUint16(nil, uint16(u))...)
}

type HashableUint32 uint32

func (u HashableUint32) UpdateHash(h hash.Hash) error {
	return writeBytes(h, binary.BigEndian.AppendUint32(nil, uint32(u))...)
}

type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	return writeBytes(h, binary.BigEndian.AppendUint64(nil, uint64(u))...)
}

type HashableFloat32 float32

func (f HashableFloat32) UpdateHash(h hash.Hash) error {
	if f == 0 {
		f = 0 // -0 == +0
	}

	return HashableUint32(math.Float32bits(float32(f))).UpdateHash(h)
}

type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	if f == 0 {
		f = 0 // -0 == +0
	}

	return HashableUint64(math.Float64bits(float64(f))).UpdateHash(h)
}

func writeBytes(h hash.Hash, b ...byte) error {
	_, err := h.Write(b)

	return err
}
