package storage

import (
	"io"
	"os"

	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/utils"
)

// MmapThreshold is the minimum window size before OpenReadingFile
// prefers mmap over a buffered read.
const MmapThreshold = 64 * 1024

// maxReadChunk bounds a single read(2) call to at most 1 GiB.
const maxReadChunk = 1 << 30

// OpenReadingFile opens path for reading and builds a Base covering
// [off, off+size) of its content: mmap when the window is at least
// MmapThreshold and the platform supports it, otherwise a buffered
// read. windowOffset is the intra-page skew the caller must add to
// the accessor's WindowOffset when the result came from mmap (0 for
// a buffered read).
func OpenReadingFile(path string, off, size uint64) (base *Base, windowOffset uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errs.WrapHost("open file", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, errs.WrapHost("stat file", err)
	}
	fileSize := uint64(info.Size())
	if !utils.ContainsRange(off, size, fileSize) {
		f.Close()
		return nil, 0, errs.New("open reading file: window exceeds file size", errs.BeyondEnd)
	}

	if size >= MmapThreshold && mmapSupported {
		region, mapOffset, skew, mErr := mmapFile(f, off, size)
		if mErr == nil {
			return &Base{
				Kind:             Mapped,
				Data:             region,
				DataMaxSize:      uint64(len(region)),
				DataFileOffset:   mapOffset,
				MayBeReallocated: false,
				IsMapped:         true,
				InputFile:        f,
				mmapRegion:       region,
			}, skew, nil
		}
		// Fall through to buffered read on mmap failure; the platform
		// advertised support but the call itself failed (e.g. resource
		// limits), which is recoverable by falling back.
	}

	buf := make([]byte, maxu64(size, 1))
	if _, err := f.Seek(int64(off), io.SeekStart); err != nil {
		f.Close()
		return nil, 0, errs.WrapHost("seek file", err)
	}
	var read uint64
	for read < size {
		chunk := size - read
		if chunk > maxReadChunk {
			chunk = maxReadChunk
		}
		n, rErr := io.ReadFull(f, buf[read:read+chunk])
		read += uint64(n)
		if rErr != nil {
			f.Close()
			return nil, 0, errs.WrapHost("read file", rErr)
		}
	}
	return &Base{
		Kind:             Owned,
		Data:             buf,
		DataMaxSize:      uint64(len(buf)),
		DataFileOffset:   off,
		MayBeReallocated: false,
		FreeOnClose:      true,
		InputFile:        f,
	}, 0, nil
}

// OpenWritingFile opens (creating/truncating) path for writing and
// returns a Growable base that writes its buffer to the file on
// Close.
func OpenWritingFile(path string, mode os.FileMode, initAlloc, granularity uint64) (*Base, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, errs.WrapHost("open output file", err)
	}
	base := OpenGrowable(initAlloc, granularity)
	base.WriteOnClose = true
	base.OutputFile = f
	base.OutputPath = path
	return base, nil
}

func maxu64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
