package extract

import (
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
)

// Kinds of extractor the configuration can name.
const (
	KindJavaScript = "javascript"
	KindSchemaFile = "schemafile"
)

// ForProject constructs the tag extractor named by the project
// configuration. The rest of the pipeline is polymorphic over the result.
func ForProject(project *domain.Project) (ports.TagExtractor, error) {
	switch project.Extractor {
	case KindJavaScript, "":
		return NewJavaScript(project.Marker), nil
	case KindSchemaFile:
		return NewSchemaFile(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownExtractor, "extractor", project.Extractor)
	}
}
