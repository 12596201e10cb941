package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "gqltag.yaml"

	// DefaultMarker is the substring a file must contain to be considered
	// a parsing candidate. This mirrors the tagged-template convention
	// (graphql`...`); the check is a cheap guard, not a guarantee, and
	// may false-positive on files that mention the marker outside a
	// literal.
	DefaultMarker = "graphql"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultIncludes are the glob patterns scanned when the config declares
// none.
var DefaultIncludes = []string{"**.js", "**.jsx", "**.ts", "**.tsx"}

// DefaultExcludes are directory patterns never scanned.
var DefaultExcludes = []string{"**node_modules/**", "**.git/**"}
