package fs

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/zerr"
)

// skipDirectories are directory names never descended into, independent of
// the exclude patterns.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// compiledPattern keeps the source pattern alongside its compiled glob for
// error messages.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks a project tree and yields candidate files matching the
// include patterns and none of the exclude patterns. Paths are returned
// relative to the root, in walk order.
type Discovery struct {
	include []compiledPattern
	exclude []compiledPattern
}

// NewDiscovery compiles the given include and exclude glob patterns.
func NewDiscovery(include, exclude []string) (*Discovery, error) {
	d := &Discovery{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidPattern, err), "pattern", pattern)
		}
		d.include = append(d.include, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidPattern, err), "pattern", pattern)
		}
		d.exclude = append(d.exclude, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Discover walks root and returns the relative paths of all candidate
// files.
func (d *Discovery) Discover(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable subtrees rather than aborting discovery.
			return nil //nolint:nilerr // Intentional
		}
		if entry.IsDir() {
			if skipDirectories[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil //nolint:nilerr // Paths outside root are not candidates
		}
		rel = filepath.ToSlash(rel)

		if d.matches(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk project tree"), "root", root)
	}

	return files, nil
}

// Matches reports whether a single relative path is a discovery candidate.
// The watch layer uses it to vet changed paths without a full walk.
func (d *Discovery) Matches(relPath string) bool {
	return d.matches(filepath.ToSlash(relPath))
}

func (d *Discovery) matches(rel string) bool {
	for _, p := range d.exclude {
		if p.glob.Match(rel) {
			return false
		}
	}
	for _, p := range d.include {
		if p.glob.Match(rel) {
			return true
		}
	}
	return false
}
