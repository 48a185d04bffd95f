package binaccess

import (
	"math"

	"github.com/binaccess/binaccess/endian"
)

// ReadEndianFloat32 reads a 4-byte IEEE-754 value as a bit-exact
// reinterpretation of a 32-bit unsigned integer read: no numeric
// rounding, only an endianness-aware byte swap of the 4-byte pattern.
func ReadEndianFloat32(a *Accessor, e endian.Endianness) (float32, error) {
	bits, err := ReadEndianUInt32(a, e)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadEndianFloat64 is the 8-byte counterpart of ReadEndianFloat32.
func ReadEndianFloat64(a *Accessor, e endian.Endianness) (float64, error) {
	bits, err := ReadEndianUInt64(a, e)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// WriteEndianFloat32 writes x's IEEE-754 bit pattern as a 4-byte
// value using e.
func WriteEndianFloat32(a *Accessor, e endian.Endianness, x float32) error {
	return WriteEndianUInt32(a, e, math.Float32bits(x))
}

// WriteEndianFloat64 writes x's IEEE-754 bit pattern as an 8-byte
// value using e.
func WriteEndianFloat64(a *Accessor, e endian.Endianness, x float64) error {
	return WriteEndianUInt64(a, e, math.Float64bits(x))
}

// ReadFloat32/64 and WriteFloat32/64 use a's current endianness.
func ReadFloat32(a *Accessor) (float32, error) { return ReadEndianFloat32(a, a.endianness) }
func ReadFloat64(a *Accessor) (float64, error) { return ReadEndianFloat64(a, a.endianness) }

func WriteFloat32(a *Accessor, x float32) error { return WriteEndianFloat32(a, a.endianness, x) }
func WriteFloat64(a *Accessor, x float64) error { return WriteEndianFloat64(a, a.endianness, x) }
