package binaccess

import (
	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/errs"
)

// ReadUInt8 reads one byte as an unsigned 8-bit value.
func ReadUInt8(a *Accessor) (uint8, error) {
	buf, err := a.readSlice(1)
	if err != nil {
		return 0, err
	}
	v := buf[0]
	a.advanceRead(1)
	return v, nil
}

// ReadInt8 reads one byte as a signed 8-bit value.
func ReadInt8(a *Accessor) (int8, error) {
	v, err := ReadUInt8(a)
	return int8(v), err
}

// WriteUInt8 writes one byte.
func WriteUInt8(a *Accessor, x uint8) error {
	buf, err := a.writeSlice(1)
	if err != nil {
		return err
	}
	buf[0] = x
	return nil
}

// WriteInt8 writes one byte.
func WriteInt8(a *Accessor, x int8) error {
	return WriteUInt8(a, uint8(x))
}

// ReadEndianUInt reads an n-byte unsigned integer (n in [1, endian.MaxWidth])
// using e.
func ReadEndianUInt(a *Accessor, e endian.Endianness, n int) (uint64, error) {
	if n < 1 || n > endian.MaxWidth {
		return 0, errs.New("read endian uint", errs.InvalidParameter)
	}
	buf, err := a.readSlice(uint64(n))
	if err != nil {
		return 0, err
	}
	v := endian.ReadUint(buf, n, e)
	a.advanceRead(uint64(n))
	return v, nil
}

// ReadEndianInt reads an n-byte signed integer (n in [1, endian.MaxWidth])
// using e, sign-extending from bit n*8-1.
func ReadEndianInt(a *Accessor, e endian.Endianness, n int) (int64, error) {
	if n < 1 || n > endian.MaxWidth {
		return 0, errs.New("read endian int", errs.InvalidParameter)
	}
	buf, err := a.readSlice(uint64(n))
	if err != nil {
		return 0, err
	}
	v := endian.ReadInt(buf, n, e)
	a.advanceRead(uint64(n))
	return v, nil
}

// WriteEndianUInt writes the low n bytes of x using e.
func WriteEndianUInt(a *Accessor, e endian.Endianness, n int, x uint64) error {
	if n < 1 || n > endian.MaxWidth {
		return errs.New("write endian uint", errs.InvalidParameter)
	}
	buf, err := a.writeSlice(uint64(n))
	if err != nil {
		return err
	}
	endian.WriteUint(buf, n, e, x)
	return nil
}

// WriteEndianInt writes the low n bytes of x using e.
func WriteEndianInt(a *Accessor, e endian.Endianness, n int, x int64) error {
	return WriteEndianUInt(a, e, n, uint64(x))
}

// ReadUInt/WriteUInt and ReadInt/WriteIntN are the endianness-less
// variants that delegate to a's current endianness.
func ReadUInt(a *Accessor, n int) (uint64, error)       { return ReadEndianUInt(a, a.endianness, n) }
func ReadInt(a *Accessor, n int) (int64, error)         { return ReadEndianInt(a, a.endianness, n) }
func WriteUInt(a *Accessor, n int, x uint64) error      { return WriteEndianUInt(a, a.endianness, n, x) }
func WriteIntN(a *Accessor, n int, x int64) error       { return WriteEndianInt(a, a.endianness, n, x) }

// Width-specialised forms. Each one calls the generic
// ReadEndianUInt/Int or WriteEndianUInt/Int above with a fixed width,
// so it cannot diverge from it; codec_int_test.go checks the 16/32/64-bit
// writers against the generic writer.

func ReadEndianUInt16(a *Accessor, e endian.Endianness) (uint16, error) {
	v, err := ReadEndianUInt(a, e, 2)
	return uint16(v), err
}

func ReadEndianInt16(a *Accessor, e endian.Endianness) (int16, error) {
	v, err := ReadEndianInt(a, e, 2)
	return int16(v), err
}

func ReadEndianUInt24(a *Accessor, e endian.Endianness) (uint32, error) {
	v, err := ReadEndianUInt(a, e, 3)
	return uint32(v), err
}

func ReadEndianInt24(a *Accessor, e endian.Endianness) (int32, error) {
	v, err := ReadEndianInt(a, e, 3)
	return int32(v), err
}

func ReadEndianUInt32(a *Accessor, e endian.Endianness) (uint32, error) {
	v, err := ReadEndianUInt(a, e, 4)
	return uint32(v), err
}

func ReadEndianInt32(a *Accessor, e endian.Endianness) (int32, error) {
	v, err := ReadEndianInt(a, e, 4)
	return int32(v), err
}

func ReadEndianUInt64(a *Accessor, e endian.Endianness) (uint64, error) {
	return ReadEndianUInt(a, e, 8)
}

func ReadEndianInt64(a *Accessor, e endian.Endianness) (int64, error) {
	return ReadEndianInt(a, e, 8)
}

func WriteEndianUInt16(a *Accessor, e endian.Endianness, x uint16) error {
	return WriteEndianUInt(a, e, 2, uint64(x))
}

func WriteEndianInt16(a *Accessor, e endian.Endianness, x int16) error {
	return WriteEndianInt(a, e, 2, int64(x))
}

func WriteEndianUInt24(a *Accessor, e endian.Endianness, x uint32) error {
	return WriteEndianUInt(a, e, 3, uint64(x))
}

func WriteEndianInt24(a *Accessor, e endian.Endianness, x int32) error {
	return WriteEndianInt(a, e, 3, int64(x))
}

func WriteEndianUInt32(a *Accessor, e endian.Endianness, x uint32) error {
	return WriteEndianUInt(a, e, 4, uint64(x))
}

func WriteEndianInt32(a *Accessor, e endian.Endianness, x int32) error {
	return WriteEndianInt(a, e, 4, int64(x))
}

func WriteEndianUInt64(a *Accessor, e endian.Endianness, x uint64) error {
	return WriteEndianUInt(a, e, 8, x)
}

func WriteEndianInt64(a *Accessor, e endian.Endianness, x int64) error {
	return WriteEndianInt(a, e, 8, x)
}

// ReadUInt16 etc. use a's current endianness.
func ReadUInt16(a *Accessor) (uint16, error)  { return ReadEndianUInt16(a, a.endianness) }
func ReadInt16(a *Accessor) (int16, error)    { return ReadEndianInt16(a, a.endianness) }
func ReadUInt24(a *Accessor) (uint32, error)  { return ReadEndianUInt24(a, a.endianness) }
func ReadInt24(a *Accessor) (int32, error)    { return ReadEndianInt24(a, a.endianness) }
func ReadUInt32(a *Accessor) (uint32, error)  { return ReadEndianUInt32(a, a.endianness) }
func ReadInt32(a *Accessor) (int32, error)    { return ReadEndianInt32(a, a.endianness) }
func ReadUInt64(a *Accessor) (uint64, error)  { return ReadEndianUInt64(a, a.endianness) }
func ReadInt64(a *Accessor) (int64, error)    { return ReadEndianInt64(a, a.endianness) }

func WriteUInt16(a *Accessor, x uint16) error { return WriteEndianUInt16(a, a.endianness, x) }
func WriteInt16(a *Accessor, x int16) error   { return WriteEndianInt16(a, a.endianness, x) }
func WriteUInt24(a *Accessor, x uint32) error { return WriteEndianUInt24(a, a.endianness, x) }
func WriteInt24(a *Accessor, x int32) error   { return WriteEndianInt24(a, a.endianness, x) }
func WriteUInt32(a *Accessor, x uint32) error { return WriteEndianUInt32(a, a.endianness, x) }
func WriteInt32(a *Accessor, x int32) error   { return WriteEndianInt32(a, a.endianness, x) }
func WriteUInt64(a *Accessor, x uint64) error { return WriteEndianUInt64(a, a.endianness, x) }
func WriteInt64(a *Accessor, x int64) error   { return WriteEndianInt64(a, a.endianness, x) }
