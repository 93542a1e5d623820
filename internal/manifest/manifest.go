// Package manifest reads and rewrites registry package manifests
// (package.json files).
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the subset of a package.json this layer cares about.
type Manifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Dependencies         map[string]string `json:"dependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// DeclaredVersion returns the version this manifest pins for pkg,
// checking optional dependencies first since that is where platform
// packages are declared. Returns "" when pkg is not declared.
func (m *Manifest) DeclaredVersion(pkg string) string {
	for _, deps := range []map[string]string{m.OptionalDependencies, m.Dependencies, m.DevDependencies} {
		if v, ok := deps[pkg]; ok {
			return v
		}
	}
	return ""
}
