package theme

import (
	"sort"
	"strconv"
	"strings"
)

// Variants flags which palette variants a theme supports.
type Variants struct {
	Dark  bool `yaml:"dark"`
	Light bool `yaml:"light"`
}

// Enabled returns the supported variant names in dark, light order.
func (v Variants) Enabled() []string {
	var out []string
	if v.Dark {
		out = append(out, VariantDark)
	}
	if v.Light {
		out = append(out, VariantLight)
	}
	return out
}

// Supports reports whether the named variant is enabled.
func (v Variants) Supports(variant string) bool {
	switch variant {
	case VariantDark:
		return v.Dark
	case VariantLight:
		return v.Light
	}
	return false
}

// Variant names used throughout the theme model.
const (
	VariantDark  = "dark"
	VariantLight = "light"
)

// Metadata mirrors theme.yaml.
type Metadata struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"display_name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Version     string   `yaml:"version"`
	License     string   `yaml:"license"`
	Tags        []string `yaml:"tags,omitempty"`
	Variants    Variants `yaml:"variants"`
}

// Ramp is one named palette: B-step keys to hex colors.
type Ramp map[string]string

// Steps returns the ramp's step keys in ascending numeric order
// (B0, B10, ..., B150). Keys without a numeric suffix sort last.
func (r Ramp) Steps() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := stepValue(keys[i]), stepValue(keys[j])
		if a != b {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

func stepValue(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "B"))
	if err != nil {
		return 1 << 20
	}
	return n
}

// ColorSystem is the full palette table of a theme, keyed by palette
// name. Seed ramps carry 16 steps (B0-B150), group palettes 12
// (B10-B120), syntax 16 (B10-B160) and logos 5 (B10-B50).
type ColorSystem map[string]Ramp

// Palettes returns the palette names in sorted order.
func (cs ColorSystem) Palettes() []string {
	names := make([]string, 0, len(cs))
	for name := range cs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mappings mirrors mappings.yaml: the class indirection table plus one
// semantic mapping table per variant.
type Mappings struct {
	ColorClasses     map[string]string                  `yaml:"color_classes"`
	SemanticMappings map[string]map[string]MappingValue `yaml:"semantic_mappings"`
}

// Variant returns the semantic mapping table for a variant, or nil.
func (m Mappings) Variant(name string) map[string]MappingValue {
	return m.SemanticMappings[name]
}

// Theme is a fully loaded theme directory.
type Theme struct {
	Name     string
	Metadata Metadata
	Colors   ColorSystem
	Mappings Mappings
}
