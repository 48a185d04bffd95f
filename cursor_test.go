package binaccess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeekSetCurEnd(t *testing.T) {
	a, err := OpenReadingMemory([]byte{0, 1, 2, 3, 4, 5, 6, 7}, false, 0, UntilEnd)
	require.NoError(t, err)

	require.NoError(t, Seek(a, 3, SeekSet))
	require.Equal(t, uint64(3), a.Cursor())

	require.NoError(t, Seek(a, 2, SeekCur))
	require.Equal(t, uint64(5), a.Cursor())

	require.NoError(t, Seek(a, -1, SeekCur))
	require.Equal(t, uint64(4), a.Cursor())

	require.NoError(t, Seek(a, 0, SeekEnd))
	require.Equal(t, uint64(8), a.Cursor())

	require.NoError(t, Seek(a, -1, SeekEnd))
	require.Equal(t, uint64(7), a.Cursor())
}

func TestSeekEndThenReadBoundary(t *testing.T) {
	a, err := OpenReadingMemory([]byte{0, 1, 2}, false, 0, UntilEnd)
	require.NoError(t, err)

	require.NoError(t, Seek(a, 0, SeekEnd))
	_, err = ReadUInt8(a)
	require.Error(t, err)

	require.NoError(t, Seek(a, -1, SeekEnd))
	_, err = ReadUInt8(a)
	require.NoError(t, err)
}

func TestSeekPastWindowOnReadOnlyFails(t *testing.T) {
	a, err := OpenReadingMemory([]byte{0, 1, 2}, false, 0, UntilEnd)
	require.NoError(t, err)

	err = Seek(a, 100, SeekSet)
	require.Error(t, err)
}

func TestSeekPastWindowOnWritableGrowsAndZeroFills(t *testing.T) {
	a := OpenWritingMemory(0, 0)
	require.NoError(t, WriteUInt8(a, 0xff))
	require.NoError(t, Seek(a, 5, SeekSet))
	require.Equal(t, uint64(5), a.WindowSize())

	require.NoError(t, Seek(a, 1, SeekSet))
	buf := make([]byte, 4)
	require.NoError(t, ReadBytes(a, buf))
	require.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestTruncateSetsWindowSizeToCursor(t *testing.T) {
	a := OpenWritingMemory(0, 0)
	require.NoError(t, WriteUInt32(a, 0x11223344))
	require.NoError(t, Seek(a, 2, SeekSet))
	require.NoError(t, Truncate(a))
	require.Equal(t, uint64(2), a.WindowSize())

	_, err := ReadUInt32(a)
	require.Error(t, err)
}

func TestTruncateRejectedOnReadOnly(t *testing.T) {
	a, err := OpenReadingMemory([]byte{1, 2, 3}, false, 0, UntilEnd)
	require.NoError(t, err)
	require.Error(t, Truncate(a))
}

func TestCursorStackLIFO(t *testing.T) {
	a, err := OpenReadingMemory([]byte{0, 1, 2, 3, 4}, false, 0, UntilEnd)
	require.NoError(t, err)

	require.NoError(t, Seek(a, 1, SeekSet))
	PushCursor(a)
	require.NoError(t, Seek(a, 3, SeekSet))
	PushCursor(a)
	require.NoError(t, Seek(a, 4, SeekSet))

	require.NoError(t, PopCursor(a))
	require.Equal(t, uint64(3), a.Cursor())

	require.NoError(t, PopCursor(a))
	require.Equal(t, uint64(1), a.Cursor())

	require.Error(t, PopCursor(a))
}

func TestPopCursorsIsDropCursorsThenPopCursor(t *testing.T) {
	a, err := OpenReadingMemory([]byte{0, 1, 2, 3, 4}, false, 0, UntilEnd)
	require.NoError(t, err)

	PushCursor(a) // saved at 0
	require.NoError(t, Seek(a, 1, SeekSet))
	PushCursor(a) // saved at 1
	require.NoError(t, Seek(a, 2, SeekSet))
	PushCursor(a) // saved at 2
	require.NoError(t, Seek(a, 3, SeekSet))

	require.NoError(t, PopCursors(a, 2))
	require.Equal(t, uint64(1), a.Cursor())
	require.NoError(t, PopCursor(a))
	require.Equal(t, uint64(0), a.Cursor())
}

func TestDropCursorsOnEmptyStackFails(t *testing.T) {
	a, err := OpenReadingMemory([]byte{0, 1, 2}, false, 0, UntilEnd)
	require.NoError(t, err)
	require.Error(t, DropCursor(a))
	require.Error(t, DropCursors(a, 1))
}
