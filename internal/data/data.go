// Package data provides the bundled ETF analysis document and the decoder that
// turns it into model.Analysis.
package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
)

// BundledFile is the name of the analysis document shipped with the binary.
const BundledFile = "etf_analysis_20251205.json"

//go:embed etf_analysis_20251205.json
var bundled embed.FS

// Source yields the raw bytes of an analysis document.
// Read returns an error wrapping apperrors.ErrResourceNotFound when the
// document does not exist.
type Source interface {
	Read() ([]byte, error)
	Name() string
}

// FSSource reads a named file from a filesystem.
type FSSource struct {
	FS   fs.FS
	File string
}

// Bundled returns the source for the document embedded in the binary.
func Bundled() FSSource {
	return FSSource{FS: bundled, File: BundledFile}
}

// FromPath returns a source reading the document at path on disk.
func FromPath(path string) FSSource {
	return FSSource{FS: os.DirFS(filepath.Dir(path)), File: filepath.Base(path)}
}

// NewSource returns the on-disk source when path is set, otherwise the bundled one.
func NewSource(path string) Source {
	if path == "" {
		return Bundled()
	}
	return FromPath(path)
}

func (s FSSource) Read() ([]byte, error) {
	b, err := fs.ReadFile(s.FS, s.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrResourceNotFound, s.File)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.File, err)
	}
	return b, nil
}

func (s FSSource) Name() string {
	return s.File
}
