package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description the CLI consumes: generation settings
// plus routes with inline documentation records.
type Manifest struct {
	Config Config          `yaml:"config"`
	Routes []ManifestRoute `yaml:"routes"`
}

// ManifestRoute pairs a route definition with an optional inline
// documentation record. Routes without one stay undocumented.
type ManifestRoute struct {
	Method string     `yaml:"method"`
	URL    string     `yaml:"url"`
	Doc    *DocRecord `yaml:"doc"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("core: read manifest %q: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("core: parse manifest %q: %w", path, err)
	}
	return &m, nil
}

// Registry builds a route registry from the manifest, describing each inline
// documentation record under its canonical route reference.
func (m *Manifest) Registry() *Registry {
	reg := NewRegistry()
	for _, rt := range m.Routes {
		ref := ""
		if rt.Doc != nil {
			ref = RouteRef(rt.Method, rt.URL)
			reg.Describe(ref, *rt.Doc)
		}
		reg.Handle(rt.Method, rt.URL, ref)
	}
	return reg
}
