package domain

// DefinitionKind distinguishes the kinds of executable definitions a
// literal can contain.
type DefinitionKind string

const (
	// KindQuery is a query operation definition.
	KindQuery DefinitionKind = "query"
	// KindMutation is a mutation operation definition.
	KindMutation DefinitionKind = "mutation"
	// KindSubscription is a subscription operation definition.
	KindSubscription DefinitionKind = "subscription"
	// KindFragment is a fragment definition.
	KindFragment DefinitionKind = "fragment"
)

// Definition is one named unit parsed out of a literal span.
type Definition struct {
	Kind DefinitionKind
	Name string

	// FilePath is the relative path of the file the definition came from.
	FilePath string

	// Source is the raw text of the literal span that produced this
	// definition. Definitions from the same span share the same Source.
	Source string
}

// Document is the ordered concatenation of all definitions parsed from one
// file's literal spans. Span order matches the order literals appear in the
// file text; per-span definition order is preserved.
type Document struct {
	Definitions []Definition
}

// Append adds the definitions of another document, preserving order.
func (d *Document) Append(other *Document) {
	d.Definitions = append(d.Definitions, other.Definitions...)
}

// Names returns the definition names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Definitions))
	for i, def := range d.Definitions {
		names[i] = def.Name
	}
	return names
}
