package binaccess

import (
	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/utils"
)

// maxAllocatedRead bounds a single ReadAllocatedBytes/
// ReadAllocatedEndianBytes call: count is normally driven by a
// length field read from the data itself, so it is validated against
// this ceiling before make() ever runs, rather than after an
// allocation has already been attempted.
const maxAllocatedRead = 1 << 32

// ReadBytes copies count bytes into dst (which must have length
// count).
func ReadBytes(a *Accessor, dst []byte) error {
	buf, err := a.readSlice(uint64(len(dst)))
	if err != nil {
		return err
	}
	copy(dst, buf)
	a.advanceRead(uint64(len(dst)))
	return nil
}

// ReadEndianBytes copies len(dst) bytes into dst and, when e is
// byte-reversed relative to the host, reverses dst's contents as a
// whole afterward.
func ReadEndianBytes(a *Accessor, dst []byte, e endian.Endianness) error {
	if err := ReadBytes(a, dst); err != nil {
		return err
	}
	if endian.NativeOrReverse(e) == endian.Reverse {
		endian.SwapBytes(dst, len(dst))
	}
	return nil
}

// ReadAllocatedBytes allocates and returns count bytes read from a.
// A count too large to plausibly allocate fails with OutOfMemory
// before make() is ever called; a count that fits the ceiling but not
// the window still fails with BeyondEnd from the subsequent read.
func ReadAllocatedBytes(a *Accessor, count int) ([]byte, error) {
	if err := utils.ValidateBufferSize(uint64(count), maxAllocatedRead, "read allocated bytes"); err != nil {
		return nil, errs.Wrap("read allocated bytes", errs.OutOfMemory, err)
	}
	dst := make([]byte, count)
	if err := ReadBytes(a, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ReadAllocatedEndianBytes allocates, reads, and conditionally
// reverses count bytes using e, subject to the same ceiling as
// ReadAllocatedBytes.
func ReadAllocatedEndianBytes(a *Accessor, count int, e endian.Endianness) ([]byte, error) {
	if err := utils.ValidateBufferSize(uint64(count), maxAllocatedRead, "read allocated endian bytes"); err != nil {
		return nil, errs.Wrap("read allocated endian bytes", errs.OutOfMemory, err)
	}
	dst := make([]byte, count)
	if err := ReadEndianBytes(a, dst, e); err != nil {
		return nil, err
	}
	return dst, nil
}

// WriteBytes writes src verbatim.
func WriteBytes(a *Accessor, src []byte) error {
	buf, err := a.writeSlice(uint64(len(src)))
	if err != nil {
		return err
	}
	copy(buf, src)
	return nil
}

// WriteEndianBytes writes src, reversed as a whole first if e is
// byte-reversed relative to the host.
func WriteEndianBytes(a *Accessor, src []byte, e endian.Endianness) error {
	if endian.NativeOrReverse(e) != endian.Reverse {
		return WriteBytes(a, src)
	}
	reversed := utils.GetBuffer(len(src))
	defer utils.ReleaseBuffer(reversed)
	copy(reversed, src)
	endian.SwapBytes(reversed, len(reversed))
	return WriteBytes(a, reversed)
}

// GetPointerForBytesToRead returns a slice covering the next n bytes
// and advances the cursor, recording coverage. The slice is only
// valid until the next cursor-moving operation on a or its base.
func GetPointerForBytesToRead(a *Accessor, n uint64) ([]byte, error) {
	buf, err := a.readSlice(n)
	if err != nil {
		return nil, err
	}
	a.advanceRead(n)
	return buf, nil
}

// GetPointerForBytesToWrite returns a writable slice covering the
// next n bytes, growing the base and advancing the cursor as needed.
// The slice is only valid until the next growing operation on a's
// base.
func GetPointerForBytesToWrite(a *Accessor, n uint64) ([]byte, error) {
	return a.writeSlice(n)
}
