// Package storage implements the base byte storages an accessor can
// be opened over: a borrowed slice, an owned heap buffer, a memory-
// mapped file region, or a write-growable heap buffer.
package storage

import (
	"os"

	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/utils"
)

// Kind identifies which concrete storage a Base wraps.
type Kind int

const (
	Borrowed Kind = iota
	Owned
	Mapped
	Growable
)

// DefaultGranularity64 and DefaultGranularity32 are the grow-chunk
// defaults for writing-memory accessors on 64-bit and 32-bit builds
// respectively. This module only targets
// 64-bit builds in practice, but both constants are kept so callers
// can make the choice explicit.
const (
	DefaultGranularity64 = 64 * 1024
	DefaultGranularity32 = 4 * 1024

	// MaxInitialAllocation is a deliberately preserved cap: initAlloc is
	// clamped to at most 1/16 MiB before rounding to granularity.
	MaxInitialAllocation = (1024 * 1024) / 16
)

// Base is the root storage shared by a base accessor and every
// sub-view chained underneath it.
type Base struct {
	Kind Kind

	// Data is the full retained byte buffer. Its length is always
	// DataMaxSize; for Growable bases it is replaced wholesale by Grow.
	Data []byte

	DataMaxSize    uint64
	DataFileOffset uint64 // logical offset of Data[0] in the source file
	Granularity    uint64

	IsMapped         bool
	MayBeReallocated bool
	FreeOnClose      bool
	WriteOnClose     bool
	WriteEnabled     bool

	InputFile  *os.File
	OutputFile *os.File
	OutputPath string

	// RefCount is not updated by this package or by binaccess: live
	// sub-views are counted on each Accessor instead.
	RefCount int

	mmapRegion []byte // the raw mmap'd region, for Munmap; nil otherwise
}

// OpenBorrowed wraps an existing slice without copying it. freeOnClose
// only affects whether Close releases the caller's reference (Go's GC
// owns the memory regardless); the flag is kept to preserve the
// spec's close-semantics contract.
func OpenBorrowed(data []byte, freeOnClose bool) *Base {
	return &Base{
		Kind:             Borrowed,
		Data:             data,
		DataMaxSize:      uint64(len(data)),
		MayBeReallocated: false,
		FreeOnClose:      freeOnClose,
	}
}

// OpenOwned copies data into a heap buffer the Base owns outright.
func OpenOwned(data []byte) *Base {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Base{
		Kind:             Owned,
		Data:             owned,
		DataMaxSize:      uint64(len(owned)),
		MayBeReallocated: false,
		FreeOnClose:      true,
	}
}

// OpenGrowable allocates a zero-initialised heap buffer for a write
// accessor: initAlloc is clamped to at most MaxInitialAllocation and
// rounded up to a non-null
// multiple of granularity (which itself defaults to
// DefaultGranularity64 when zero).
func OpenGrowable(initAlloc, granularity uint64) *Base {
	if granularity == 0 {
		granularity = DefaultGranularity64
	}
	if initAlloc > MaxInitialAllocation {
		initAlloc = MaxInitialAllocation
	}
	size := utils.RoundUp(initAlloc, granularity)
	return &Base{
		Kind:             Growable,
		Data:             make([]byte, size),
		DataMaxSize:      size,
		Granularity:      granularity,
		MayBeReallocated: true,
		FreeOnClose:      true,
		WriteEnabled:     true,
	}
}

// Grow is a no-op if newSize already fits, otherwise a bounds check
// against MayBeReallocated, a round-up to a multiple of Granularity,
// and a reallocation that preserves existing content. On success
// DataMaxSize is updated; on failure Data and DataMaxSize are left
// unchanged: a failed grow leaves data untouched.
func Grow(b *Base, newSize uint64) error {
	if newSize <= b.DataMaxSize {
		return nil
	}
	if !b.MayBeReallocated {
		return errs.New("grow", errs.InvalidParameter)
	}
	rounded := utils.RoundUp(newSize, b.Granularity)
	grown := make([]byte, rounded)
	copy(grown, b.Data)
	b.Data = grown
	b.DataMaxSize = rounded
	return nil
}

// Close releases whatever resources b holds: unmaps a Mapped region,
// closes any open descriptors, and (for a write-on-close base) writes
// the accumulated buffer to OutputFile first.
func Close(b *Base, windowSize uint64) error {
	var flushErr error
	if b.WriteOnClose && b.OutputFile != nil {
		if _, err := b.OutputFile.Write(b.Data[:windowSize]); err != nil {
			flushErr = errs.Wrap("flush on close", errs.WriteError, err)
		}
	}
	if b.OutputFile != nil {
		_ = b.OutputFile.Close()
	}
	if b.InputFile != nil {
		_ = b.InputFile.Close()
	}
	if b.IsMapped && b.mmapRegion != nil {
		if err := munmapRegion(b.mmapRegion); err != nil && flushErr == nil {
			flushErr = errs.WrapHost("munmap", err)
		}
		b.mmapRegion = nil
	}
	b.Data = nil
	return flushErr
}

// WriteSnapshot writes data[off:off+size] of b's window to path,
// creating/truncating it first: a point-in-time snapshot that never
// mutates b.
func WriteSnapshot(path string, mode os.FileMode, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errs.WrapHost("open snapshot file", err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return errs.Wrap("write snapshot", errs.WriteError, err)
	}
	return nil
}
