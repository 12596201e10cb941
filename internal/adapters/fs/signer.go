package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Signer = (*Signer)(nil)

// Signer computes XXHash content signatures. Signatures detect content
// change only; they are not collision-resistant against adversaries.
type Signer struct{}

// NewSigner creates a new Signer.
func NewSigner() *Signer {
	return &Signer{}
}

// SignText computes the signature of in-memory text.
func (s *Signer) SignText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// SignFile computes the signature of the file at path by streaming its
// content.
func (s *Signer) SignFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrSourceRead, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrSourceRead, err), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
