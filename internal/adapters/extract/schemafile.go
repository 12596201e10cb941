package extract

import (
	"path/filepath"
	"strings"

	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TagExtractor = (*SchemaFile)(nil)

// SchemaFile treats an entire .graphql document file as a single literal
// span. Projects using it configure an empty marker, since standalone
// documents need no embedding convention.
type SchemaFile struct{}

// NewSchemaFile creates a new SchemaFile extractor.
func NewSchemaFile() *SchemaFile {
	return &SchemaFile{}
}

// Extract returns one span covering the whole file. The span name is the
// file's base name without extension.
func (e *SchemaFile) Extract(text, _ string, file domain.File, opts domain.ExtractOptions) ([]domain.LiteralSpan, error) {
	if strings.TrimSpace(text) == "" {
		if opts.ValidateNames {
			return nil, zerr.With(domain.ErrExtraction, "path", file.RelPath)
		}
		return nil, nil
	}

	base := filepath.Base(file.RelPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return []domain.LiteralSpan{{
		Text:     text,
		Name:     name,
		FilePath: file.RelPath,
		Offset:   0,
	}}, nil
}
