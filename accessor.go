// Package binaccess implements a cursor-based reader/writer for typed
// binary data over an in-memory buffer or a file, with endianness
// control, nested read-only sub-views sharing the same underlying
// storage, and a coverage recorder that tracks which byte ranges have
// been consumed and why.
package binaccess

import (
	"os"

	"github.com/binaccess/binaccess/coverage"
	"github.com/binaccess/binaccess/endian"
	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/pathbuilder"
	"github.com/binaccess/binaccess/internal/storage"
	"github.com/binaccess/binaccess/internal/utils"
)

// UntilEnd is the sentinel size value meaning "everything left in the
// enclosing window", accepted by most of the Open* and read functions
// below.
const UntilEnd = ^uint64(0)

// Whence selects how Seek interprets its offset argument.
type Whence int

const (
	SeekSet Whence = iota
	SeekCur
	SeekEnd
)

// Accessor is a cursor, window, and endianness bound to a shared
// Base storage. A newly opened accessor is a "base" accessor; calling
// OpenReadingAccessorBytes/Window against it produces a "sub-view"
// sharing the same Base but with its own, contained window.
type Accessor struct {
	base *storage.Base

	superAccessor *Accessor // nil for a base accessor
	refCount      int       // live direct sub-views of this accessor
	pendingClose  bool
	closed        bool

	windowOffset     uint64 // offset inside the super's window; for a base, the window's offset into base.Data
	baseWindowOffset uint64 // cumulative offset into base.Data
	windowSize       uint64
	cursor           uint64

	endianness  endian.Endianness
	cursorStack []uint64

	coverage coverage.Recorder
}

func newBaseAccessor(base *storage.Base, windowOffset, windowSize uint64) *Accessor {
	return &Accessor{
		base:             base,
		windowOffset:     windowOffset,
		baseWindowOffset: windowOffset,
		windowSize:       windowSize,
		endianness:       endian.DefaultEndianness(),
	}
}

// writable reports whether write operations are permitted on a: its
// base must be write-enabled, and a must not itself be a sub-view,
// since sub-views are always read-only even over a write-enabled base.
func (a *Accessor) writable() bool {
	return a.superAccessor == nil && a.base.WriteEnabled
}

// Endianness returns a's current endianness.
func (a *Accessor) Endianness() endian.Endianness {
	return a.endianness
}

// SetEndianness changes a's endianness for subsequent typed
// operations.
func (a *Accessor) SetEndianness(e endian.Endianness) {
	a.endianness = e
}

// Coverage returns a's coverage recorder, for callers that want to
// toggle it, set usage tags, add explicit records, or summarize it
// directly.
func (a *Accessor) Coverage() *coverage.Recorder {
	return &a.coverage
}

// Cursor returns a's current cursor position.
func (a *Accessor) Cursor() uint64 {
	return a.cursor
}

// WindowSize returns a's current window size.
func (a *Accessor) WindowSize() uint64 {
	return a.windowSize
}

// AvailableBytes returns windowSize - cursor.
func (a *Accessor) AvailableBytes() uint64 {
	return a.windowSize - a.cursor
}

// RootWindowOffset returns the logical byte position of a's cursor-0
// in the original file or memory region.
func (a *Accessor) RootWindowOffset() uint64 {
	return a.baseWindowOffset + a.base.DataFileOffset
}

// OpenReadingMemory wraps an existing byte slice for reading. If size
// is UntilEnd it becomes len(data)-off.
func OpenReadingMemory(data []byte, freeOnClose bool, off, size uint64) (*Accessor, error) {
	total := uint64(len(data))
	if size == UntilEnd {
		if off > total {
			return nil, errs.New("open reading memory", errs.BeyondEnd)
		}
		size = total - off
	}
	if !utils.ContainsRange(off, size, total) {
		return nil, errs.New("open reading memory", errs.BeyondEnd)
	}
	base := storage.OpenBorrowed(data, freeOnClose)
	return newBaseAccessor(base, off, size), nil
}

// OpenReadingFile resolves basePath/path via the path builder, opens
// the result for reading, and returns an accessor over [off, off+size)
// of its content, mmap-backed when the window is large enough and the
// platform supports it.
func OpenReadingFile(basePath, path string, opts pathbuilder.Options, off, size uint64) (*Accessor, error) {
	resolved, err := pathbuilder.Build(basePath, path, opts)
	if err != nil {
		return nil, err
	}
	if size == UntilEnd {
		info, statErr := os.Stat(resolved)
		if statErr != nil {
			return nil, errs.WrapHost("stat file", statErr)
		}
		fileSize := uint64(info.Size())
		if off > fileSize {
			return nil, errs.New("open reading file", errs.BeyondEnd)
		}
		size = fileSize - off
	}
	base, windowOffset, err := storage.OpenReadingFile(resolved, off, size)
	if err != nil {
		return nil, err
	}
	return newBaseAccessor(base, windowOffset, size), nil
}

// OpenWritingMemory creates a write-enabled accessor backed by a
// growable heap buffer.
func OpenWritingMemory(initAlloc, granularity uint64) *Accessor {
	base := storage.OpenGrowable(initAlloc, granularity)
	return newBaseAccessor(base, 0, 0)
}

// OpenWritingFile resolves basePath/path, creates/truncates it, and
// returns a write-enabled accessor whose buffer is flushed to the
// file when it is closed.
func OpenWritingFile(basePath, path string, opts pathbuilder.Options, mode os.FileMode, initAlloc, granularity uint64) (*Accessor, error) {
	resolved, err := pathbuilder.Build(basePath, path, opts)
	if err != nil {
		return nil, err
	}
	base, err := storage.OpenWritingFile(resolved, mode, initAlloc, granularity)
	if err != nil {
		return nil, err
	}
	return newBaseAccessor(base, 0, 0), nil
}

// WriteToFile snapshots [off, off+size) of a's window to a freshly
// created/truncated file at basePath/path, without modifying a
// without touching it otherwise.
func WriteToFile(a *Accessor, basePath, path string, opts pathbuilder.Options, mode os.FileMode, off, size uint64) error {
	if size == UntilEnd {
		if off > a.windowSize {
			return errs.New("write to file", errs.BeyondEnd)
		}
		size = a.windowSize - off
	}
	if !utils.ContainsRange(off, size, a.windowSize) {
		return errs.New("write to file", errs.BeyondEnd)
	}
	resolved, err := pathbuilder.Build(basePath, path, opts)
	if err != nil {
		return err
	}
	start := a.baseWindowOffset + off
	return storage.WriteSnapshot(resolved, mode, a.base.Data[start:start+size])
}

// OpenReadingAccessorBytes slices count bytes starting at super's
// cursor into a new read-only sub-view, advances super's cursor by
// count, and records one coverage entry against super for the
// consumed range. super must not be write-enabled: sub-views are
// only exposed over read-only supers by this entry point.
func OpenReadingAccessorBytes(super *Accessor, count uint64) (*Accessor, error) {
	if super.writable() {
		return nil, errs.New("open reading accessor bytes", errs.InvalidParameter)
	}
	if count == UntilEnd {
		count = super.AvailableBytes()
	} else if count > super.AvailableBytes() {
		return nil, errs.New("open reading accessor bytes", errs.BeyondEnd)
	}

	sub := &Accessor{
		base:             super.base,
		superAccessor:    super,
		windowOffset:     super.cursor,
		baseWindowOffset: super.baseWindowOffset + super.cursor,
		windowSize:       count,
		endianness:       super.endianness,
	}
	super.refCount++
	super.coverage.RecordImplicit(super.cursor, count)
	super.cursor += count
	return sub, nil
}

// OpenReadingAccessorWindow creates a read-only sub-view over the
// explicit [off, off+size) range of super's window, without moving
// super's cursor or recording coverage against it.
func OpenReadingAccessorWindow(super *Accessor, off, size uint64) (*Accessor, error) {
	if super.writable() {
		return nil, errs.New("open reading accessor window", errs.InvalidParameter)
	}
	if size == UntilEnd {
		if off > super.windowSize {
			return nil, errs.New("open reading accessor window", errs.BeyondEnd)
		}
		size = super.windowSize - off
	}
	if !utils.ContainsRange(off, size, super.windowSize) {
		return nil, errs.New("open reading accessor window", errs.BeyondEnd)
	}

	sub := &Accessor{
		base:             super.base,
		superAccessor:    super,
		windowOffset:     off,
		baseWindowOffset: super.baseWindowOffset + off,
		windowSize:       size,
		endianness:       super.endianness,
	}
	super.refCount++
	return sub, nil
}

// Close releases a. If a still has live sub-views, destruction is
// deferred: the caller's handle is detached but the underlying
// storage stays alive until every sub-view (recursively) closes too.
func Close(a *Accessor) error {
	if a == nil || a.closed {
		return nil
	}
	if a.refCount > 0 {
		a.pendingClose = true
		a.closed = true
		return nil
	}
	return a.teardown()
}

func (a *Accessor) teardown() error {
	a.closed = true
	if a.superAccessor != nil {
		super := a.superAccessor
		super.refCount--
		if super.refCount == 0 && super.pendingClose {
			return super.teardown()
		}
		return nil
	}
	return storage.Close(a.base, a.windowSize)
}

// Swap exchanges the states of a and b in place. If either was not
// write-enabled before the swap, both are forced to read-only
// afterward, so that a "write-to-file on close" accessor built via b
// and swapped into a read-only placeholder a becomes a read-only view
// of the data just written.
func Swap(a, b *Accessor) {
	aWritable := a.writable()
	bWritable := b.writable()
	*a, *b = *b, *a
	if !aWritable || !bWritable {
		a.base.WriteEnabled = false
		b.base.WriteEnabled = false
	}
}
