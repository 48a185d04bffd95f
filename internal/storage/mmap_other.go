//go:build !unix

package storage

import "os"

// mmapSupported is false on non-unix builds: OpenReadingFile falls
// back to a buffered read uniformly.
const mmapSupported = false

func mmapFile(f *os.File, off, size uint64) (region []byte, fileMapOffset, skew uint64, err error) {
	panic("mmapFile called with mmapSupported == false")
}

func munmapRegion(region []byte) error {
	return nil
}
