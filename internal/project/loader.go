package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML project file from the given path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Project.
func Parse(data []byte) (*Project, error) {
	var p Project

	err := yaml.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in inferred and default values after parsing: the
// owning library of every source, the file kind from the extension, and the
// VHDL standard.
func applyDefaults(p *Project) {
	if p.Version == "" {
		p.Version = "1"
	}

	for i := range p.Libraries {
		lib := &p.Libraries[i]
		for j := range lib.Sources {
			src := &lib.Sources[j]
			src.Library = lib.Name

			if src.Kind == KindUnknown {
				src.Kind = KindFromPath(src.Path)
			}

			if src.Kind == KindVHDL && src.Standard == "" {
				src.Standard = DefaultVHDLStandard
			}
		}
	}
}

// Marshal serializes a Project to YAML.
func Marshal(p *Project) ([]byte, error) {
	return yaml.Marshal(p)
}
