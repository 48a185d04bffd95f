package binaccess

import (
	"bytes"

	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/errs"
)

// ReadCString scans forward for a zero byte, copies the bytes and the
// terminator into a freshly allocated buffer, and returns the string
// excluding the terminator. Returns BeyondEnd if no terminator is
// found within the window.
func ReadCString(a *Accessor) (string, error) {
	avail := a.peekAvailable()
	idx := bytes.IndexByte(avail, 0)
	if idx < 0 {
		return "", errs.New("read c-string", errs.BeyondEnd)
	}
	s := string(avail[:idx])
	a.advanceRead(uint64(idx + 1))
	return s, nil
}

// WriteCString writes s followed by a zero terminator.
func WriteCString(a *Accessor, s string) error {
	buf, err := a.writeSlice(uint64(len(s)) + 1)
	if err != nil {
		return err
	}
	copy(buf, s)
	buf[len(s)] = 0
	return nil
}

// ReadPString reads a Pascal-style string: one length byte L followed
// by L payload bytes.
func ReadPString(a *Accessor) (string, error) {
	l, err := ReadUInt8(a)
	if err != nil {
		return "", err
	}
	buf, err := a.readSlice(uint64(l))
	if err != nil {
		return "", err
	}
	s := string(buf)
	a.advanceRead(uint64(l))
	return s, nil
}

// WritePString writes s as a Pascal-style string. Fails with
// InvalidParameter if len(s) > 255.
func WritePString(a *Accessor, s string) error {
	if len(s) > 255 {
		return errs.New("write p-string", errs.InvalidParameter)
	}
	if err := WriteUInt8(a, uint8(len(s))); err != nil {
		return err
	}
	return WriteBytes(a, []byte(s))
}

// ReadFixedLengthString reads exactly length bytes, verbatim
// (embedded zeros are preserved, and the returned length is not
// adjusted).
func ReadFixedLengthString(a *Accessor, length int) (string, error) {
	buf, err := a.readSlice(uint64(length))
	if err != nil {
		return "", err
	}
	s := string(buf)
	a.advanceRead(uint64(length))
	return s, nil
}

// WriteFixedLengthString writes s verbatim with no length prefix and
// no terminator.
func WriteFixedLengthString(a *Accessor, s string) error {
	return WriteBytes(a, []byte(s))
}

// ReadPaddedString reads length bytes, then trims trailing padByte
// occurrences, returning the trimmed string and its trimmed length.
func ReadPaddedString(a *Accessor, length int, padByte byte) (string, int, error) {
	buf, err := a.readSlice(uint64(length))
	if err != nil {
		return "", 0, err
	}
	trimmed := length
	for trimmed > 0 && buf[trimmed-1] == padByte {
		trimmed--
	}
	s := string(buf[:trimmed])
	a.advanceRead(uint64(length))
	return s, trimmed, nil
}

// WritePaddedString writes s, then pads with padByte up to totalLen.
// Fails with InvalidParameter if len(s) > totalLen.
func WritePaddedString(a *Accessor, s string, totalLen int, padByte byte) error {
	if len(s) > totalLen {
		return errs.New("write padded string", errs.InvalidParameter)
	}
	buf, err := a.writeSlice(uint64(totalLen))
	if err != nil {
		return err
	}
	n := copy(buf, s)
	for ; n < totalLen; n++ {
		buf[n] = padByte
	}
	return nil
}

// ReadEndianString16 scans forward reading 16-bit code units with e
// until a zero unit, and returns the units read (excluding the
// terminator). The whole scan is recorded as a single coverage entry,
// like array reads do.
func ReadEndianString16(a *Accessor, e endian.Endianness) ([]uint16, error) {
	const elemSize = 2
	avail := a.peekAvailable()
	var units []uint16
	consumed := uint64(0)
	for {
		if consumed+elemSize > uint64(len(avail)) {
			return nil, errs.New("read endian string16", errs.BeyondEnd)
		}
		u := uint16(endian.ReadUint(avail[consumed:], elemSize, e))
		consumed += elemSize
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	a.advanceRead(consumed)
	return units, nil
}

// WriteEndianString16 writes units followed by a zero-unit
// terminator, using e.
func WriteEndianString16(a *Accessor, e endian.Endianness, units []uint16) error {
	return WriteEndianString16WithLength(a, e, units)
}

// WriteEndianString16WithLength writes exactly len(units) units plus
// a zero terminator, trusting the caller's length rather than
// scanning units for an embedded terminator.
func WriteEndianString16WithLength(a *Accessor, e endian.Endianness, units []uint16) error {
	buf, err := a.writeSlice(uint64(len(units)+1) * 2)
	if err != nil {
		return err
	}
	for i, u := range units {
		endian.WriteUint(buf[i*2:], 2, e, uint64(u))
	}
	endian.WriteUint(buf[len(units)*2:], 2, e, 0)
	return nil
}

// ReadEndianString32 is the 32-bit-code-unit counterpart of
// ReadEndianString16.
func ReadEndianString32(a *Accessor, e endian.Endianness) ([]uint32, error) {
	const elemSize = 4
	avail := a.peekAvailable()
	var units []uint32
	consumed := uint64(0)
	for {
		if consumed+elemSize > uint64(len(avail)) {
			return nil, errs.New("read endian string32", errs.BeyondEnd)
		}
		u := uint32(endian.ReadUint(avail[consumed:], elemSize, e))
		consumed += elemSize
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	a.advanceRead(consumed)
	return units, nil
}

// WriteEndianString32 writes units followed by a zero-unit
// terminator, using e.
func WriteEndianString32(a *Accessor, e endian.Endianness, units []uint32) error {
	return WriteEndianString32WithLength(a, e, units)
}

// WriteEndianString32WithLength writes exactly len(units) units plus
// a zero terminator, trusting the caller's length.
func WriteEndianString32WithLength(a *Accessor, e endian.Endianness, units []uint32) error {
	buf, err := a.writeSlice(uint64(len(units)+1) * 4)
	if err != nil {
		return err
	}
	for i, u := range units {
		endian.WriteUint(buf[i*4:], 4, e, uint64(u))
	}
	endian.WriteUint(buf[len(units)*4:], 4, e, 0)
	return nil
}
