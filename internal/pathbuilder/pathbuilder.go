// Package pathbuilder normalises a basePath/path pair into a single
// filesystem path, with optional backslash conversion and optional
// parent-directory creation.
package pathbuilder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/binaccess/binaccess/internal/errs"
)

// Options controls how Build normalises and (optionally) prepares its
// result.
type Options struct {
	// Slashify converts backslashes to forward slashes in both
	// basePath and path before joining, for Windows-style input
	// accepted on any host.
	Slashify bool

	// MakeParents creates the parent directory tree of the result
	// (mode 0777) before returning.
	MakeParents bool
}

// Build joins basePath and path into a single normalised path. If
// basePath names an existing non-directory, its parent is used
// instead.
func Build(basePath, path string, opts Options) (string, error) {
	if opts.Slashify {
		basePath = strings.ReplaceAll(basePath, `\`, "/")
		path = strings.ReplaceAll(path, `\`, "/")
	}

	if basePath != "" {
		if info, err := os.Stat(basePath); err == nil && !info.IsDir() {
			basePath = filepath.Dir(basePath)
		}
	}

	full := filepath.Join(basePath, path)

	if opts.MakeParents {
		if err := os.MkdirAll(filepath.Dir(full), 0o777); err != nil {
			return "", errs.WrapHost("make parent directories", err)
		}
	}

	return full, nil
}
