package config

// Tagfile represents the structure of the gqltag.yaml configuration file.
type Tagfile struct {
	Version   string   `yaml:"version"`
	Root      string   `yaml:"root"`
	Extractor string   `yaml:"extractor"`
	Marker    *string  `yaml:"marker"`
	Include   []string `yaml:"include"`
	Exclude   []string `yaml:"exclude"`
	Options   Options  `yaml:"options"`
}

// Options holds the extraction options passed through to the tag extractor.
type Options struct {
	ValidateNames bool `yaml:"validateNames"`
}
