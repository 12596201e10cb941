// Package astcache keeps the last successfully parsed document per file,
// keyed by content signature, and deduplicates concurrent parses of the
// same file through single-flight execution.
package astcache

import (
	"context"
	"path/filepath"
	"sync"

	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// ParseFunc is the cache's miss strategy, normally parser.ParseFile.
type ParseFunc func(ctx context.Context, baseDir string, file domain.File) (*domain.Document, error)

// entry is one cached parse result. Entries are replaced whole, never
// merged, when the signature changes.
type entry struct {
	signature string
	document  *domain.Document
}

// Cache is the top-level entry point the build layer parses through. It is
// process-local; eviction for deleted files is the watch layer's job via
// Remove.
type Cache struct {
	baseDir string
	parse   ParseFunc
	signer  ports.Signer

	mu      sync.RWMutex
	entries map[string]entry

	group singleflight.Group
}

// New creates a Cache over baseDir with the given miss strategy.
func New(baseDir string, parse ParseFunc, signer ports.Signer) *Cache {
	return &Cache{
		baseDir: baseDir,
		parse:   parse,
		signer:  signer,
		entries: make(map[string]entry),
	}
}

// Get returns the cached document for the file when its content signature
// is unchanged, parsing it otherwise. Concurrent calls for the same file
// share a single parse and all receive the same document or the same
// error; calls for different files never block each other. A failed parse
// is not cached: the entry keeps whatever value it had before the attempt.
func (c *Cache) Get(ctx context.Context, file domain.File) (*domain.Document, error) {
	sig := file.Signature
	if sig == "" {
		var err error
		sig, err = c.signer.SignFile(filepath.Join(c.baseDir, file.RelPath))
		if err != nil {
			return nil, err
		}
	}

	c.mu.RLock()
	cached, ok := c.entries[file.RelPath]
	c.mu.RUnlock()
	if ok && cached.signature == sig {
		return cached.document, nil
	}

	// The signature rides in the singleflight key so a write landing
	// between signing and parsing starts a fresh flight instead of
	// piggybacking on a stale one.
	key := file.RelPath + "\x00" + sig
	result, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller on the same flight key may have completed
		// while this one was queued behind the map lock.
		c.mu.RLock()
		cached, ok := c.entries[file.RelPath]
		c.mu.RUnlock()
		if ok && cached.signature == sig {
			return cached.document, nil
		}

		doc, err := c.parse(ctx, c.baseDir, file.WithSignature(sig))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[file.RelPath] = entry{signature: sig, document: doc}
		c.mu.Unlock()

		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.Document), nil
}

// Peek returns the cached document for a path without validating its
// signature or parsing. The second result reports whether an entry exists.
func (c *Cache) Peek(relPath string) (*domain.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[relPath]
	if !ok {
		return nil, false
	}
	return cached.document, true
}

// Remove evicts the entry for a deleted file.
func (c *Cache) Remove(relPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, relPath)
}

// Invalidate drops the entries for the given relative paths so the next
// Get re-parses even if a stale signature was cached.
func (c *Cache) Invalidate(relPaths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range relPaths {
		delete(c.entries, p)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
