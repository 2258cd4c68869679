package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sociograph/core"
)

// FormatOf infers the format from a path's extension, case-insensitively.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// LoadFile opens path and dispatches to ReadCSV or ReadJSON by extension.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	return LoadFileAs(path, format, opts...)
}

// LoadFileAs reads path in the given format ("csv" or "json"), ignoring the
// extension.
func LoadFileAs(path, format string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case FormatCSV:
		return ReadCSV(f, opts...)
	case FormatJSON:
		return ReadJSON(f, opts...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
