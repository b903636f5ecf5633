package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/doxyrst"
	"gopkg.in/yaml.v3"
)

// Manifest describes a documentation build to post-process.
type Manifest struct {
	Doxyfile   string      `yaml:"doxyfile"`
	Components []Component `yaml:"components"`
}

// Component is one documented unit of the build: the headers whose XML
// output is post-processed together, and the generated docstring files
// that get their formulas substituted back in.
type Component struct {
	Name     string   `yaml:"name"`
	Headers  []string `yaml:"headers,omitempty"`
	XMLDir   string   `yaml:"xml_dir,omitempty"`   // overrides the doxyfile XML output directory
	LatexDir string   `yaml:"latex_dir,omitempty"` // directory holding formula dictionaries
	DocFiles []string `yaml:"doc_files,omitempty"` // generated docstring files to substitute
}

// LoadManifest loads a manifest from the YAML file at path. Relative paths
// in the manifest resolve against the manifest's own directory; headers
// are left untouched since only their base name matters for XML lookup.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", filepath.Base(path), err)
	}

	// Resolve paths against the manifest directory
	dir := filepath.Dir(path)
	m.Doxyfile = resolvePath(dir, m.Doxyfile)
	for i := range m.Components {
		c := &m.Components[i]
		c.XMLDir = resolvePath(dir, c.XMLDir)
		c.LatexDir = resolvePath(dir, c.LatexDir)
		for j, f := range c.DocFiles {
			c.DocFiles[j] = resolvePath(dir, f)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate returns an error if the manifest is incomplete.
func (m *Manifest) Validate() error {
	if m.Doxyfile == "" {
		return doxyrst.Errorf(doxyrst.EINVALID, "manifest doxyfile required")
	}
	if len(m.Components) == 0 {
		return doxyrst.Errorf(doxyrst.EINVALID, "manifest has no components")
	}
	for i, c := range m.Components {
		if c.Name == "" {
			return doxyrst.Errorf(doxyrst.EINVALID, "component %d missing name", i)
		}
		if len(c.Headers) == 0 && len(c.DocFiles) == 0 {
			return doxyrst.Errorf(doxyrst.EINVALID, "component %s has no headers or doc files", c.Name)
		}
	}
	return nil
}

// resolvePath joins path onto dir unless path is empty or already absolute.
func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
