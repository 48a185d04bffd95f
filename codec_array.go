package binaccess

import (
	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/utils"
)

// ReadEndianUInt16Array reads count 16-bit elements, byte-swapping
// each when e requires it relative to the host: every element is
// decoded in host order and then swapped, with a single coverage
// record for the array.
func ReadEndianUInt16Array(a *Accessor, e endian.Endianness, count int) ([]uint16, error) {
	const elemSize = 2
	total, err := utils.SafeMultiply(uint64(count), elemSize)
	if err != nil {
		return nil, err
	}
	buf, err := a.readSlice(total)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, count)
	reverse := endian.NativeOrReverse(e) == endian.Reverse
	for i := 0; i < count; i++ {
		v := endian.ReadUint(buf[i*elemSize:], elemSize, endian.Native)
		if reverse {
			v = uint64(endian.SwapUInt16(uint16(v)))
		}
		out[i] = uint16(v)
	}
	a.advanceRead(total)
	return out, nil
}

// ReadEndianUInt32Array is the 32-bit counterpart.
func ReadEndianUInt32Array(a *Accessor, e endian.Endianness, count int) ([]uint32, error) {
	const elemSize = 4
	total, err := utils.SafeMultiply(uint64(count), elemSize)
	if err != nil {
		return nil, err
	}
	buf, err := a.readSlice(total)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	reverse := endian.NativeOrReverse(e) == endian.Reverse
	for i := 0; i < count; i++ {
		v := endian.ReadUint(buf[i*elemSize:], elemSize, endian.Native)
		if reverse {
			v = uint64(endian.SwapUInt32(uint32(v)))
		}
		out[i] = uint32(v)
	}
	a.advanceRead(total)
	return out, nil
}

// ReadEndianUInt64Array is the 64-bit counterpart.
func ReadEndianUInt64Array(a *Accessor, e endian.Endianness, count int) ([]uint64, error) {
	const elemSize = 8
	total, err := utils.SafeMultiply(uint64(count), elemSize)
	if err != nil {
		return nil, err
	}
	buf, err := a.readSlice(total)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, count)
	reverse := endian.NativeOrReverse(e) == endian.Reverse
	for i := 0; i < count; i++ {
		v := endian.ReadUint(buf[i*elemSize:], elemSize, endian.Native)
		if reverse {
			v = endian.SwapUInt64(v)
		}
		out[i] = v
	}
	a.advanceRead(total)
	return out, nil
}

// ReadEndianUInt24Array decodes each element directly with e rather
// than in host order followed by a swap, since 24-bit elements do not
// map onto a native Go integer type.
func ReadEndianUInt24Array(a *Accessor, e endian.Endianness, count int) ([]uint32, error) {
	const elemSize = 3
	total, err := utils.SafeMultiply(uint64(count), elemSize)
	if err != nil {
		return nil, err
	}
	buf, err := a.readSlice(total)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	for i := 0; i < count; i++ {
		out[i] = uint32(endian.ReadUint(buf[i*elemSize:], elemSize, e))
	}
	a.advanceRead(total)
	return out, nil
}

// WriteEndianUInt16Array writes values as count contiguous 16-bit
// elements using e.
func WriteEndianUInt16Array(a *Accessor, e endian.Endianness, values []uint16) error {
	buf, err := a.writeSlice(uint64(len(values)) * 2)
	if err != nil {
		return err
	}
	for i, v := range values {
		endian.WriteUint(buf[i*2:], 2, e, uint64(v))
	}
	return nil
}

// WriteEndianUInt32Array writes values as count contiguous 32-bit
// elements using e.
func WriteEndianUInt32Array(a *Accessor, e endian.Endianness, values []uint32) error {
	buf, err := a.writeSlice(uint64(len(values)) * 4)
	if err != nil {
		return err
	}
	for i, v := range values {
		endian.WriteUint(buf[i*4:], 4, e, uint64(v))
	}
	return nil
}

// WriteEndianUInt64Array writes values as count contiguous 64-bit
// elements using e.
func WriteEndianUInt64Array(a *Accessor, e endian.Endianness, values []uint64) error {
	buf, err := a.writeSlice(uint64(len(values)) * 8)
	if err != nil {
		return err
	}
	for i, v := range values {
		endian.WriteUint(buf[i*8:], 8, e, v)
	}
	return nil
}

// WriteEndianUInt24Array writes values as count contiguous 24-bit
// elements using e, element-by-element.
func WriteEndianUInt24Array(a *Accessor, e endian.Endianness, values []uint32) error {
	buf, err := a.writeSlice(uint64(len(values)) * 3)
	if err != nil {
		return err
	}
	for i, v := range values {
		endian.WriteUint(buf[i*3:], 3, e, uint64(v))
	}
	return nil
}
