package binaccess

import (
	"bytes"

	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/errs"
)

// LookAheadBytes copies up to len(dst) bytes starting at a's cursor
// into dst without moving the cursor, and returns the number of bytes
// actually copied. It never fails: if fewer than len(dst) bytes remain
// in the window, only those are copied.
func LookAheadBytes(a *Accessor, dst []byte) int {
	avail := a.peekAvailable()
	n := copy(dst, avail)
	return n
}

// LookAheadEndianBytes is LookAheadBytes followed by a whole-buffer
// reverse when e is byte-reversed relative to the host.
func LookAheadEndianBytes(a *Accessor, dst []byte, e endian.Endianness) int {
	n := LookAheadBytes(a, dst)
	if endian.NativeOrReverse(e) == endian.Reverse {
		endian.SwapBytes(dst[:n], n)
	}
	return n
}

// LookAheadAvailableBytes returns the bytes remaining in a's window as
// a slice, without moving the cursor, plus their count. The slice is
// only valid until the next cursor-moving or growing operation on a or
// its base.
func LookAheadAvailableBytes(a *Accessor) ([]byte, uint64) {
	avail := a.peekAvailable()
	return avail, uint64(len(avail))
}

// LookAheadCountBytesBeforeDelimiter scans forward from a's cursor for
// the first occurrence of delim[0:dlen), searching at most
// limit+dlen bytes (limit == UntilEnd means availableBytes - dlen),
// and returns the number of bytes preceding it. dlen must be at least
// 1. Fails with BeyondEnd if availableBytes < dlen, or if the
// delimiter is not found within the search bound.
func LookAheadCountBytesBeforeDelimiter(a *Accessor, limit uint64, delim []byte, dlen int) (uint64, error) {
	if dlen < 1 {
		return 0, errs.New("look ahead count before delimiter", errs.InvalidParameter)
	}
	avail := a.peekAvailable()
	if uint64(len(avail)) < uint64(dlen) {
		return 0, errs.New("look ahead count before delimiter", errs.BeyondEnd)
	}
	if limit == UntilEnd {
		limit = uint64(len(avail)) - uint64(dlen)
	}
	searchSpan := limit + uint64(dlen)
	if searchSpan > uint64(len(avail)) {
		searchSpan = uint64(len(avail))
	}
	haystack := avail[:searchSpan]

	var idx int
	switch dlen {
	case 1:
		idx = bytes.IndexByte(haystack, delim[0])
	case 2:
		idx = indexDelim2(haystack, delim[0], delim[1])
	default:
		idx = bytes.Index(haystack, delim[:dlen])
	}
	if idx < 0 || uint64(idx) > limit {
		return 0, errs.New("look ahead count before delimiter", errs.BeyondEnd)
	}
	return uint64(idx), nil
}

// indexDelim2 finds the first occurrence of the two-byte sequence
// (d0, d1) in haystack, or -1.
func indexDelim2(haystack []byte, d0, d1 byte) int {
	for i := 0; i+1 < len(haystack); i++ {
		if haystack[i] == d0 && haystack[i+1] == d1 {
			return i
		}
	}
	return -1
}
