package domain

// LiteralSpan is a substring of a source file recognized as embedded
// GraphQL. The originating file path travels with the span so errors can be
// attributed without re-deriving context.
type LiteralSpan struct {
	// Text is the raw GraphQL source between the template delimiters.
	Text string

	// Name is the host-language declaration the literal was assigned to,
	// when the extractor could resolve one. Empty otherwise.
	Name string

	// FilePath is the relative path of the originating file.
	FilePath string

	// Offset is the byte offset of the literal's first character within
	// the file text.
	Offset int
}

// ExtractOptions configures tag extraction.
type ExtractOptions struct {
	// ValidateNames requires every discovered literal to carry a
	// resolvable host-language name. Extraction fails with ErrExtraction
	// for literals that cannot be named.
	ValidateNames bool
}
