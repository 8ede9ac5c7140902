package core

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest describes a job template for documentation purposes. It
// ships next to the template file in each scheduler package.
type Manifest struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Variables   []TemplateVar `yaml:"variables,omitempty"`
}

// TemplateVar documents one placeholder of a template.
type TemplateVar struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	Required    bool   `yaml:"required"`
}

func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, errors.Wrap(err, "core: cannot parse template manifest")
	}
	if len(manifest.Name) == 0 {
		return Manifest{}, errors.New("core: template manifest missing name")
	}
	return manifest, nil
}
