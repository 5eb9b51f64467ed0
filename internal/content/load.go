package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ishan.sh/internal/models"
)

// LoadFile reads a projects file. YAML and JSON are both accepted
func LoadFile(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a projects document
func Parse(data []byte) (*models.ProjectList, error) {
	var projects models.ProjectList
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}
	if len(projects.Projects) == 0 {
		return nil, fmt.Errorf("failed to parse projects: document has no projects")
	}
	if err := projects.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid projects: %w", err)
	}
	return &projects, nil
}

// Load returns the projects from path, or the built-in defaults when path is
// empty
func Load(path string) (*models.ProjectList, error) {
	if path == "" {
		return Defaults(), nil
	}
	return LoadFile(path)
}
