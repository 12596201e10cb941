// Package graphql adapts the gqlparser library to the pipeline's grammar
// parser port. The pipeline treats GraphQL parsing as opaque; this adapter
// only reshapes results and attaches file context to failures.
package graphql

import (
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentParser = (*Parser)(nil)

// Parser implements ports.DocumentParser using gqlparser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses one literal's text into its definitions. The syntax error
// message produced by gqlparser is preserved verbatim; only the file path
// is attached.
func (p *Parser) Parse(source, originPath string) (*domain.Document, error) {
	queryDoc, err := parser.ParseQuery(&ast.Source{Name: originPath, Input: source})
	if err != nil {
		return nil, zerr.With(
			zerr.With(fmt.Errorf("%w: %w", domain.ErrMalformedLiteral, err), "path", originPath),
			"literal", source,
		)
	}

	return toDomain(queryDoc, originPath, source), nil
}

// positioned pairs a definition with its source offset so operations and
// fragments can be emitted in the order they appear in the literal, not
// grouped by kind.
type positioned struct {
	def   domain.Definition
	start int
}

func toDomain(queryDoc *ast.QueryDocument, originPath, source string) *domain.Document {
	defs := make([]positioned, 0, len(queryDoc.Operations)+len(queryDoc.Fragments))

	for _, op := range queryDoc.Operations {
		defs = append(defs, positioned{
			def: domain.Definition{
				Kind:     operationKind(op.Operation),
				Name:     op.Name,
				FilePath: originPath,
				Source:   source,
			},
			start: positionStart(op.Position),
		})
	}

	for _, frag := range queryDoc.Fragments {
		defs = append(defs, positioned{
			def: domain.Definition{
				Kind:     domain.KindFragment,
				Name:     frag.Name,
				FilePath: originPath,
				Source:   source,
			},
			start: positionStart(frag.Position),
		})
	}

	sort.SliceStable(defs, func(i, j int) bool { return defs[i].start < defs[j].start })

	doc := &domain.Document{Definitions: make([]domain.Definition, len(defs))}
	for i, d := range defs {
		doc.Definitions[i] = d.def
	}
	return doc
}

func operationKind(op ast.Operation) domain.DefinitionKind {
	switch op {
	case ast.Mutation:
		return domain.KindMutation
	case ast.Subscription:
		return domain.KindSubscription
	default:
		return domain.KindQuery
	}
}

func positionStart(pos *ast.Position) int {
	if pos == nil {
		return 0
	}
	return pos.Start
}
