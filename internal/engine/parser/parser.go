// Package parser implements the source module parser: it reads a candidate
// file, extracts its embedded GraphQL literals, parses each literal through
// the grammar parser, and assembles one combined document per file.
package parser

import (
	"context"
	"strings"

	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

// Parser orchestrates one file's extraction and parsing. It holds the tag
// extractor capability by interface and never branches on its concrete
// type; callers normally hand it an extract.Memoized so unchanged files do
// not re-scan.
type Parser struct {
	reader    ports.SourceReader
	extractor ports.TagExtractor
	grammar   ports.DocumentParser
	marker    string
	opts      domain.ExtractOptions
}

// New creates a Parser. marker is the substring a candidate file must
// contain; an empty marker accepts every file (used with whole-file
// extractors).
func New(
	reader ports.SourceReader,
	extractor ports.TagExtractor,
	grammar ports.DocumentParser,
	marker string,
	opts domain.ExtractOptions,
) *Parser {
	return &Parser{
		reader:    reader,
		extractor: extractor,
		grammar:   grammar,
		marker:    marker,
		opts:      opts,
	}
}

// ParseFile parses every literal in the file and returns the combined
// document. See ParseFileWithSources for the contract.
func (p *Parser) ParseFile(ctx context.Context, baseDir string, file domain.File) (*domain.Document, error) {
	doc, _, err := p.ParseFileWithSources(ctx, baseDir, file)
	return doc, err
}

// ParseFileWithSources parses every literal in the file and returns the
// combined document plus the raw literal texts in extraction order
// (sources[i] belongs to span i).
//
// The file's text must contain the marker: the file filter is expected to
// exclude non-candidates upstream, so a missing marker fails with
// domain.ErrPreconditionViolated rather than an empty result. Any literal
// that parses to zero definitions fails the whole file with
// domain.ErrMalformedLiteral; no partial document is ever returned.
func (p *Parser) ParseFileWithSources(_ context.Context, baseDir string, file domain.File) (*domain.Document, []string, error) {
	text, err := p.reader.ReadText(baseDir, file.RelPath)
	if err != nil {
		return nil, nil, err
	}

	if !strings.Contains(text, p.marker) {
		return nil, nil, zerr.With(
			zerr.With(domain.ErrPreconditionViolated, "path", file.RelPath),
			"marker", p.marker,
		)
	}

	spans, err := p.extractor.Extract(text, baseDir, file, p.opts)
	if err != nil {
		return nil, nil, err
	}

	combined := &domain.Document{}
	sources := make([]string, 0, len(spans))

	// A parse pass runs to completion once started; callers needing
	// cancellation race the enclosing cache call and discard the result.
	for _, span := range spans {
		doc, err := p.grammar.Parse(span.Text, span.FilePath)
		if err != nil {
			return nil, nil, err
		}
		if len(doc.Definitions) == 0 {
			return nil, nil, zerr.With(
				zerr.With(domain.ErrMalformedLiteral, "path", span.FilePath),
				"literal", span.Text,
			)
		}

		combined.Append(doc)
		sources = append(sources, span.Text)
	}

	return combined, sources, nil
}

// FileFilter returns a cheap predicate reporting whether a file is a
// parsing candidate: true iff its text contains the marker checked by
// ParseFileWithSources. Unreadable files are not candidates. The build and
// watch layers run this before ever invoking the parser.
func (p *Parser) FileFilter(baseDir string) func(domain.File) bool {
	return func(file domain.File) bool {
		text, err := p.reader.ReadText(baseDir, file.RelPath)
		if err != nil {
			return false
		}
		return strings.Contains(text, p.marker)
	}
}
