package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names inside a theme directory.
const (
	MetadataFile    = "theme.yaml"
	ColorSystemFile = "colorsystem.yaml"
	MappingsFile    = "mappings.yaml"
)

// Loader reads theme directories below a themes root.
type Loader struct {
	Root string
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// Dir returns the directory of the named theme.
func (l *Loader) Dir(name string) string {
	return filepath.Join(l.Root, name)
}

// Exists reports whether the named theme directory holds a theme.yaml.
func (l *Loader) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(l.Dir(name), MetadataFile))
	return err == nil
}

// List returns the names of all theme directories under the root in
// sorted order. A directory counts as a theme when it carries a
// theme.yaml.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("reading themes dir %s: %w", l.Root, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if l.Exists(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Load reads and decodes all three theme files.
func (l *Loader) Load(name string) (*Theme, error) {
	meta, err := l.LoadMetadata(name)
	if err != nil {
		return nil, err
	}

	t := &Theme{Name: name, Metadata: *meta}

	if err := l.decodeFile(name, ColorSystemFile, &t.Colors, false); err != nil {
		return nil, err
	}
	if err := l.decodeFile(name, MappingsFile, &t.Mappings, true); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadMetadata reads just theme.yaml.
func (l *Loader) LoadMetadata(name string) (*Metadata, error) {
	var meta Metadata
	if err := l.decodeFile(name, MetadataFile, &meta, true); err != nil {
		return nil, err
	}
	if meta.Name == "" {
		meta.Name = name
	}
	return &meta, nil
}

// decodeFile reads one YAML file of a theme. With strict set, unknown
// fields are rejected; the color system stays lenient since its palette
// names are free-form.
func (l *Loader) decodeFile(name, file string, out interface{}, strict bool) error {
	path := filepath.Join(l.Dir(name), file)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("theme %q: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("theme %q: parsing %s: %w", name, file, err)
	}
	return nil
}
