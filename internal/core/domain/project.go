package domain

// Project holds the resolved configuration for one scanned project.
type Project struct {
	// Root is the absolute base directory all file paths are relative to.
	Root string

	// Extractor is the registered name of the tag extractor to install.
	Extractor string

	// Marker is the substring used by the file filter and the parser's
	// precondition check.
	Marker string

	// Include and Exclude are glob patterns controlling file discovery.
	Include []string
	Exclude []string

	// ValidateNames is passed through to the tag extractor.
	ValidateNames bool
}

// NewProject returns a Project with defaults applied for the given root.
func NewProject(root string) *Project {
	return &Project{
		Root:      root,
		Extractor: "javascript",
		Marker:    DefaultMarker,
		Include:   DefaultIncludes,
		Exclude:   DefaultExcludes,
	}
}
