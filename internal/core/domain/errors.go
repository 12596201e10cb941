package domain

import "errors"

// Sentinels are plain errors, not zerr values: zerr.With rebuilds zerr
// errors when attaching metadata, which would detach a zerr sentinel from
// the chain and break errors.Is. Plain sentinels survive as the cause of
// any zerr decoration.
var (
	// ErrPreconditionViolated is returned when the parser is invoked on a
	// file that does not contain the literal marker. The file filter is
	// expected to exclude such files before the parser ever sees them, so
	// this indicates a caller bug rather than bad user source.
	ErrPreconditionViolated = errors.New("file does not contain the literal marker; the file filter must run before parsing")

	// ErrMalformedLiteral is returned when an extracted literal parses to
	// zero definitions or is rejected by the GraphQL parser.
	ErrMalformedLiteral = errors.New("embedded literal is not a valid GraphQL document")

	// ErrExtraction is returned when a literal fails extractor-level
	// validation, e.g. it has no resolvable declaration name while name
	// validation is enabled.
	ErrExtraction = errors.New("literal extraction failed")

	// ErrSourceRead is returned when a source file cannot be read.
	ErrSourceRead = errors.New("failed to read source file")

	// ErrConfigNotFound is returned when no gqltag.yaml can be found in
	// the working directory or any parent.
	ErrConfigNotFound = errors.New("could not find " + ConfigFileName)

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = errors.New("failed to parse config file")

	// ErrUnknownExtractor is returned when the config names an extractor
	// kind that is not registered.
	ErrUnknownExtractor = errors.New("unknown extractor kind")

	// ErrInvalidPattern is returned when an include or exclude glob
	// pattern does not compile.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrScanFailed is returned when one or more files fail to parse
	// during a scan pass.
	ErrScanFailed = errors.New("scan completed with errors")
)
