// Package config provides the configuration loader for gqltag.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd to the nearest gqltag.yaml and returns the
// resolved project configuration with defaults applied.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var tagfile Tagfile
	if err := readAndUnmarshalYAML(configPath, &tagfile); err != nil {
		return nil, err
	}

	project := domain.NewProject(resolveRoot(configPath, tagfile.Root))

	if tagfile.Extractor != "" {
		project.Extractor = tagfile.Extractor
	}
	if len(tagfile.Include) > 0 {
		project.Include = tagfile.Include
	}
	if len(tagfile.Exclude) > 0 {
		project.Exclude = tagfile.Exclude
	}
	project.ValidateNames = tagfile.Options.ValidateNames
	project.Marker = resolveMarker(tagfile.Marker, project.Extractor)

	if project.Marker == "" && project.Extractor != "schemafile" {
		l.Logger.Warn(fmt.Sprintf("empty marker in %s disables the candidate pre-filter, every matched file will be parsed", domain.ConfigFileName))
	}

	return project, nil
}

// resolveMarker applies the marker default. Whole-file extractors default
// to an empty marker (every discovered file is a candidate); embedded-tag
// extractors default to the tag identifier itself. An explicit value in the
// config always wins, including an explicit empty string.
func resolveMarker(configured *string, extractor string) string {
	if configured != nil {
		return *configured
	}
	if extractor == "schemafile" {
		return ""
	}
	return domain.DefaultMarker
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// resolveRoot resolves the project root relative to the config file's
// directory.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target
// struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigNotFound, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
