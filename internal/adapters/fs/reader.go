// Package fs implements filesystem adapters: source reading, content
// signing, and candidate file discovery.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader implements ports.SourceReader against the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText returns the full text of baseDir/relPath.
func (r *Reader) ReadText(baseDir, relPath string) (string, error) {
	path := filepath.Join(baseDir, relPath)
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from project discovery
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrSourceRead, err), "path", path)
	}
	return string(data), nil
}
