package ports

// SourceReader reads project source files.
//
//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type SourceReader interface {
	// ReadText returns the full text of the file at relPath under
	// baseDir. Missing or unreadable files fail with domain.ErrSourceRead
	// wrapping the underlying I/O error.
	ReadText(baseDir, relPath string) (string, error)
}
