package binaccess

import (
	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/storage"
)

// Seek repositions a's cursor per whence. For a
// write-enabled accessor, seeking past windowSize grows the
// underlying base as needed and zero-fills the newly exposed region;
// for a read-only accessor, seeking past windowSize fails with
// BeyondEnd and the cursor is left unchanged.
//
// The offset arithmetic deliberately wraps on underflow when offset
// is negative and whence is SeekCur/SeekEnd with a magnitude larger
// than the current position, preserving unsigned wrap-around so
// relative negative seeks behave the way callers of the original
// size_t-based cursor relied on; see DESIGN.md.
func Seek(a *Accessor, offset int64, whence Whence) error {
	var base int64
	switch whence {
	case SeekSet:
		base = 0
	case SeekCur:
		base = int64(a.cursor)
	case SeekEnd:
		base = int64(a.windowSize)
	default:
		return errs.New("seek", errs.InvalidParameter)
	}

	newCursor := uint64(base + offset)

	if a.writable() {
		if newCursor > a.windowSize {
			needed := a.baseWindowOffset + newCursor
			if needed > a.base.DataMaxSize {
				if err := storage.Grow(a.base, needed); err != nil {
					return errs.Wrap("seek: grow", errs.OutOfMemory, err)
				}
			}
			zeroStart := a.baseWindowOffset + a.windowSize
			zeroEnd := a.baseWindowOffset + newCursor
			for i := zeroStart; i < zeroEnd; i++ {
				a.base.Data[i] = 0
			}
			a.windowSize = newCursor
		}
	} else if newCursor > a.windowSize {
		return errs.New("seek", errs.BeyondEnd)
	}

	a.cursor = newCursor
	return nil
}

// Truncate sets windowSize to the current cursor, for write-enabled
// accessors only.
func Truncate(a *Accessor) error {
	if !a.writable() {
		return errs.New("truncate", errs.ReadOnlyError)
	}
	a.windowSize = a.cursor
	return nil
}

// PushCursor saves a's current cursor on its cursor stack.
func PushCursor(a *Accessor) {
	a.cursorStack = append(a.cursorStack, a.cursor)
}

// PopCursor restores the most recently pushed cursor via a SeekSet
// (so a write-enabled accessor may grow on pop).
// Popping an empty stack returns InvalidParameter.
func PopCursor(a *Accessor) error {
	n := len(a.cursorStack)
	if n == 0 {
		return errs.New("pop cursor", errs.InvalidParameter)
	}
	top := a.cursorStack[n-1]
	a.cursorStack = a.cursorStack[:n-1]
	return Seek(a, int64(top), SeekSet)
}

// DropCursor discards the most recently pushed cursor without
// restoring it. Dropping an empty stack returns InvalidParameter.
func DropCursor(a *Accessor) error {
	n := len(a.cursorStack)
	if n == 0 {
		return errs.New("drop cursor", errs.InvalidParameter)
	}
	a.cursorStack = a.cursorStack[:n-1]
	return nil
}

// PopCursors is DropCursors(n-1) followed by PopCursor.
func PopCursors(a *Accessor, n int) error {
	if n <= 0 {
		return errs.New("pop cursors", errs.InvalidParameter)
	}
	if n > 1 {
		if err := DropCursors(a, n-1); err != nil {
			return err
		}
	}
	return PopCursor(a)
}

// DropCursors drops n saved cursors.
func DropCursors(a *Accessor, n int) error {
	if n <= 0 {
		return errs.New("drop cursors", errs.InvalidParameter)
	}
	for i := 0; i < n; i++ {
		if err := DropCursor(a); err != nil {
			return err
		}
	}
	return nil
}
