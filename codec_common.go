package binaccess

import (
	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/storage"
)

// readSlice returns the n bytes starting at a's cursor without
// advancing it, bounds-checked against AvailableBytes.
func (a *Accessor) readSlice(n uint64) ([]byte, error) {
	if a.AvailableBytes() < n {
		return nil, errs.New("read", errs.BeyondEnd)
	}
	start := a.baseWindowOffset + a.cursor
	return a.base.Data[start : start+n], nil
}

// advanceRead moves a's cursor forward by n and records an implicit
// coverage entry for the range just consumed.
func (a *Accessor) advanceRead(n uint64) {
	pre := a.cursor
	a.cursor += n
	a.coverage.RecordImplicit(pre, n)
}

// peekAvailable returns the bytes remaining in a's window without
// moving the cursor, for scan-ahead string reads.
func (a *Accessor) peekAvailable() []byte {
	start := a.baseWindowOffset + a.cursor
	return a.base.Data[start : start+a.AvailableBytes()]
}

// writeSlice returns n writable bytes at a's cursor, growing the
// underlying base and extending the window as needed, and advances
// the cursor. Fails with ReadOnlyError if a is not writable.
func (a *Accessor) writeSlice(n uint64) ([]byte, error) {
	if !a.writable() {
		return nil, errs.New("write", errs.ReadOnlyError)
	}
	needed := a.baseWindowOffset + a.cursor + n
	if needed > a.base.DataMaxSize {
		if err := storage.Grow(a.base, needed); err != nil {
			return nil, errs.Wrap("write: grow", errs.OutOfMemory, err)
		}
	}
	if a.cursor+n > a.windowSize {
		a.windowSize = a.cursor + n
	}
	start := a.baseWindowOffset + a.cursor
	buf := a.base.Data[start : start+n]
	a.cursor += n
	return buf, nil
}
