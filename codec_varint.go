package binaccess

import (
	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/errs"
)

// maxVarIntBytes is ⌈maxWidthBits/7⌉ for an 8-byte (64-bit)
// accumulator: 10 bytes.
const maxVarIntBytes = (endian.MaxWidth*8 + 6) / 7

// ReadVarInt reads an unsigned LEB128 varint: 7 payload bits per
// byte, least-significant group first, continuation bit 0x80. If the
// continuation bit is still set after maxVarIntBytes groups without
// terminating, the read fails with InvalidReadData.
func ReadVarInt(a *Accessor) (uint64, error) {
	var result uint64
	for i := 0; i < maxVarIntBytes; i++ {
		b, err := ReadUInt8(a)
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << uint(i*7)
		if b&0x80 == 0 {
			return result, nil
		}
	}
	return 0, errs.New("read varint", errs.InvalidReadData)
}

// WriteVarInt writes x as an unsigned LEB128 varint.
func WriteVarInt(a *Accessor, x uint64) error {
	for {
		b := byte(x & 0x7f)
		x >>= 7
		if x != 0 {
			b |= 0x80
		}
		if err := WriteUInt8(a, b); err != nil {
			return err
		}
		if x == 0 {
			return nil
		}
	}
}

// ReadZigZag reads an unsigned varint and maps it back to a signed
// value: (u>>1) XOR -(u AND 1).
func ReadZigZag(a *Accessor) (int64, error) {
	u, err := ReadVarInt(a)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

// WriteZigZag writes x as a zig-zag-encoded unsigned varint:
// x>=0 -> x<<1, x<0 -> ^(x<<1).
func WriteZigZag(a *Accessor, x int64) error {
	var u uint64
	if x >= 0 {
		u = uint64(x) << 1
	} else {
		u = uint64(^(x << 1))
	}
	return WriteVarInt(a, u)
}
