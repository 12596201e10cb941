package ports

import "go.trai.ch/gqltag/internal/core/domain"

// DocumentParser is the external GraphQL grammar parser. The pipeline
// treats it as opaque: text in, definitions or a syntax error out. Syntax
// errors keep the parser's own location format; callers only attach
// file-level context when re-raising.
//
//go:generate mockgen -source=grammar.go -destination=mocks/mock_grammar.go -package=mocks
type DocumentParser interface {
	// Parse parses one literal's text. originPath names the file the
	// literal came from and is used for error attribution only.
	Parse(source, originPath string) (*domain.Document, error)
}
