//go:build unix

package storage

import (
	"os"

	"golang.org/x/sys/unix"
)

const mmapSupported = true
const pageSize = 4096

// mmapFile maps [off, off+size) of f read-only, private, file-backed,
// rounding the start down to the nearest boundary of the host page
// size ps (from unix.Getpagesize, not the pageSize constant):
// fileMapOffset = off - (off mod ps),
// fileMapSize = size + (off mod ps). It returns the mapped
// region, the logical file offset of region[0] (fileMapOffset), and
// the intra-page skew (off mod ps) the caller must fold into
// the accessor's WindowOffset.
func mmapFile(f *os.File, off, size uint64) (region []byte, fileMapOffset, skew uint64, err error) {
	ps := uint64(realPageSize())
	skew = off % ps
	fileMapOffset = off - skew
	fileMapSize := size + skew

	region, err = unix.Mmap(int(f.Fd()), int64(fileMapOffset), int(fileMapSize), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, 0, 0, err
	}
	return region, fileMapOffset, skew, nil
}

func munmapRegion(region []byte) error {
	return unix.Munmap(region)
}

func realPageSize() int {
	return unix.Getpagesize()
}
