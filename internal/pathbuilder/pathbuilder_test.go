package pathbuilder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildJoinsBaseAndPath(t *testing.T) {
	got, err := Build("/tmp", "sub/file.bin", Options{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp", "sub/file.bin"), got)
}

func TestBuildUsesParentWhenBaseIsAFile(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "existing.bin")
	require.NoError(t, os.WriteFile(basePath, []byte("x"), 0o644))

	got, err := Build(basePath, "sibling.bin", Options{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "sibling.bin"), got)
}

func TestBuildSlashifiesBackslashes(t *testing.T) {
	got, err := Build(`C:\base`, `sub\file.bin`, Options{Slashify: true})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("C:/base", "sub/file.bin"), got)
}

func TestBuildMakesParents(t *testing.T) {
	dir := t.TempDir()
	got, err := Build(dir, "a/b/c.bin", Options{MakeParents: true})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(got))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
