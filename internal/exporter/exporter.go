// Package exporter flattens themes into standalone color documents.
//
// For every exported variant the semantic mapping table is resolved
// through the color system into a flat token -> value document and
// written below the build dir as <theme>/<variant>.<format>. Values are
// hex strings, pass-through numbers, or color/bold/italic objects for
// the formatted editor tokens.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"themeweaver/internal/theme"
	"themeweaver/pkg/logging"
)

// Format selects the output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q (want yaml or json)", s)
}

// FormattedColor is the document shape of a styled editor token.
type FormattedColor struct {
	Color  string `yaml:"color" json:"color"`
	Bold   bool   `yaml:"bold" json:"bold"`
	Italic bool   `yaml:"italic" json:"italic"`
}

// Exporter writes flattened theme documents below a build dir.
type Exporter struct {
	BuildDir string
	Loader   *theme.Loader
}

// New returns an Exporter reading themes through loader and writing
// below buildDir.
func New(loader *theme.Loader, buildDir string) *Exporter {
	return &Exporter{BuildDir: buildDir, Loader: loader}
}

// ExportTheme resolves and writes the requested variants of a theme.
// A nil variants slice means every variant the metadata enables.
// The result maps variant names to the files written.
func (e *Exporter) ExportTheme(name string, variants []string, format Format) (map[string]string, error) {
	th, err := e.Loader.Load(name)
	if err != nil {
		return nil, err
	}

	if variants == nil {
		variants = th.Metadata.Variants.Enabled()
	} else {
		for _, v := range variants {
			if !th.Metadata.Variants.Supports(v) {
				return nil, fmt.Errorf("variant %q not supported by theme %q", v, name)
			}
		}
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("no variants to export for theme %q", name)
	}

	exportDir := filepath.Join(e.BuildDir, name)
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	written := make(map[string]string, len(variants))
	for _, variant := range variants {
		resolved, err := th.Resolve(variant)
		if err != nil {
			return nil, fmt.Errorf("exporting %s/%s: %w", name, variant, err)
		}

		path := filepath.Join(exportDir, fmt.Sprintf("%s.%s", variant, format))
		if err := writeDocument(path, flatten(resolved), format); err != nil {
			return nil, err
		}
		logging.Debug("Exporter", "Wrote %s", path)
		written[variant] = path
	}
	return written, nil
}

// ExportAll exports every theme under the loader root.
func (e *Exporter) ExportAll(format Format) (map[string]map[string]string, error) {
	names, err := e.Loader.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]string, len(names))
	for _, name := range names {
		files, err := e.ExportTheme(name, nil, format)
		if err != nil {
			return nil, fmt.Errorf("theme %q: %w", name, err)
		}
		out[name] = files
	}
	return out, nil
}

// flatten turns resolved values into their plain document shapes.
func flatten(resolved map[string]theme.ResolvedValue) map[string]interface{} {
	doc := make(map[string]interface{}, len(resolved))
	for token, v := range resolved {
		switch v.Kind {
		case theme.KindNumber:
			doc[token] = v.Number
		case theme.KindFormatted:
			doc[token] = FormattedColor{Color: v.Color, Bold: v.Bold, Italic: v.Italic}
		default:
			doc[token] = v.Color
		}
	}
	return doc
}

func writeDocument(path string, doc map[string]interface{}, format Format) error {
	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
