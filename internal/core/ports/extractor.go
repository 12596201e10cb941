// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/gqltag/internal/core/domain"

// TagExtractor locates embedded GraphQL literals in raw file text. It is
// pure with respect to its inputs: no hidden state, no I/O. Different host
// languages embed literals differently, so multiple implementations exist;
// the pipeline holds a TagExtractor and never inspects its concrete type.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type TagExtractor interface {
	// Extract returns the literal spans found in text, in the order they
	// appear. The file identifies the origin for error attribution.
	Extract(text, baseDir string, file domain.File, opts domain.ExtractOptions) ([]domain.LiteralSpan, error)
}
