package extract

import (
	"sync"

	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
)

var _ ports.TagExtractor = (*Memoized)(nil)

// Memoized wraps a TagExtractor with a cache keyed on file identity and
// content signature, so repeated extraction of unchanged text returns the
// prior spans without re-scanning. It is an optimization layer only: a miss
// always falls through to the wrapped extractor. Safe for concurrent use by
// multiple parser instances sharing one extractor.
type Memoized struct {
	inner  ports.TagExtractor
	signer ports.Signer

	mu      sync.RWMutex
	entries map[memoKey][]domain.LiteralSpan
}

// memoKey identifies one extraction result. Options are part of the key
// because they change what the extractor accepts.
type memoKey struct {
	path          string
	signature     string
	validateNames bool
}

// NewMemoized wraps the given extractor.
func NewMemoized(inner ports.TagExtractor, signer ports.Signer) *Memoized {
	return &Memoized{
		inner:   inner,
		signer:  signer,
		entries: make(map[memoKey][]domain.LiteralSpan),
	}
}

// Extract returns cached spans for unchanged text, delegating to the
// wrapped extractor on miss. Extraction failures are never cached.
func (m *Memoized) Extract(text, baseDir string, file domain.File, opts domain.ExtractOptions) ([]domain.LiteralSpan, error) {
	key := memoKey{
		path:          file.RelPath,
		signature:     m.signer.SignText(text),
		validateNames: opts.ValidateNames,
	}

	m.mu.RLock()
	spans, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return spans, nil
	}

	spans, err := m.inner.Extract(text, baseDir, file, opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.entries[key] = spans
	m.mu.Unlock()

	return spans, nil
}

// Forget drops all cached extractions for the given file path, regardless
// of signature. The watch layer calls it when a file is deleted.
func (m *Memoized) Forget(relPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		if key.path == relPath {
			delete(m.entries, key)
		}
	}
}
