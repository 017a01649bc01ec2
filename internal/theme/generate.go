package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"themeweaver/internal/color"
	"themeweaver/internal/naming"
)

// Palette sizes of a generated color system.
const (
	groupPaletteSize  = 12
	syntaxPaletteSize = 16
)

// Mockable for deterministic tests.
var paletteNameFor = naming.PaletteName

// Request carries the seed colors and metadata for theme generation.
type Request struct {
	Name        string
	DisplayName string
	Description string
	Author      string
	Tags        []string

	Primary   string
	Secondary string
	Error     string
	Success   string
	Warning   string
	Group     string

	// SimpleNames switches palette naming from the creative
	// adjective+name form to plain color names.
	SimpleNames bool

	// SyntaxSeed picks the base color for the generated syntax palette.
	// Empty means the neutral default. SyntaxColors, when set, must hold
	// exactly 16 colors and is used verbatim instead.
	SyntaxSeed   string
	SyntaxColors []string

	// Logos overrides the stock logo palette.
	Logos Ramp
}

// Generator builds theme directories below a themes root.
type Generator struct {
	ThemesDir string
}

// NewGenerator returns a Generator writing below themesDir.
func NewGenerator(themesDir string) *Generator {
	return &Generator{ThemesDir: themesDir}
}

// DefaultLogos returns the stock logo palette.
func DefaultLogos() Ramp {
	return Ramp{
		"B10": "#3775A9",
		"B20": "#FFD444",
		"B30": "#414141",
		"B40": "#FAFAFA",
		"B50": "#EE0000",
	}
}

// NewMetadata fills the metadata defaults for a generated theme.
func NewMetadata(name, displayName, description, author string, tags []string) Metadata {
	if displayName == "" {
		displayName = titleCase(strings.ReplaceAll(name, "_", " "))
	}
	if description == "" {
		description = fmt.Sprintf("Generated theme: %s", name)
	}
	if len(tags) == 0 {
		tags = []string{"dark", "light", "generated"}
	}
	return Metadata{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Author:      author,
		Version:     "1.0.0",
		License:     "MIT",
		Tags:        tags,
		Variants:    Variants{Dark: true, Light: true},
	}
}

// GenerateFromColors builds a complete theme from the seed colors:
// 16-step lightness ramps for the five seed palettes, golden-angle
// group palettes from the group seed, a 16-color syntax palette, and
// the default semantic mapping tables wired up through creatively named
// color classes. Nothing is written to disk; use Write for that.
func (g *Generator) GenerateFromColors(req Request) (*Theme, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("theme name is required")
	}
	if strings.ContainsAny(req.Name, `/\`) {
		return nil, fmt.Errorf("theme name %q must not contain path separators", req.Name)
	}

	seeds := []SeedColor{
		{Role: "primary", Hex: req.Primary},
		{Role: "secondary", Hex: req.Secondary},
		{Role: "error", Hex: req.Error},
		{Role: "success", Hex: req.Success},
		{Role: "warning", Hex: req.Warning},
		{Role: "group", Hex: req.Group},
	}
	syntaxSeed := req.SyntaxSeed
	if len(req.SyntaxColors) > 0 {
		if len(req.SyntaxColors) != syntaxPaletteSize {
			return nil, fmt.Errorf("syntax palette needs exactly %d colors, got %d", syntaxPaletteSize, len(req.SyntaxColors))
		}
		for i, hex := range req.SyntaxColors {
			seeds = append(seeds, SeedColor{Role: fmt.Sprintf("syntax_%d", i+1), Hex: hex})
		}
	} else if syntaxSeed != "" {
		seeds = append(seeds, SeedColor{Role: "syntax", Hex: syntaxSeed})
	}
	if err := ValidateInputColors(seeds); err != nil {
		return nil, err
	}

	names := newNameSet(req.SimpleNames)
	primaryName, err := names.pick(req.Primary)
	if err != nil {
		return nil, err
	}
	secondaryName, err := names.pick(req.Secondary)
	if err != nil {
		return nil, err
	}
	errorName, err := names.pick(req.Error)
	if err != nil {
		return nil, err
	}
	successName, err := names.pick(req.Success)
	if err != nil {
		return nil, err
	}
	warningName, err := names.pick(req.Warning)
	if err != nil {
		return nil, err
	}
	groupBase, err := names.pick(req.Group)
	if err != nil {
		return nil, err
	}
	groupDarkName := groupBase + "Dark"
	groupLightName := groupBase + "Light"

	cs := ColorSystem{}
	for _, p := range []struct{ name, seed string }{
		{primaryName, req.Primary},
		{secondaryName, req.Secondary},
		{errorName, req.Error},
		{successName, req.Success},
		{warningName, req.Warning},
	} {
		ramp, err := seedRamp(p.seed)
		if err != nil {
			return nil, err
		}
		cs[p.name] = ramp
	}

	groupDark, groupLight, err := color.GenerateGroupPalettes(req.Group, groupPaletteSize)
	if err != nil {
		return nil, err
	}
	cs[groupDarkName] = Ramp(groupDark)
	cs[groupLightName] = Ramp(groupLight)

	syntaxName, syntaxRamp, err := syntaxPalette(names, syntaxSeed, req.SyntaxColors)
	if err != nil {
		return nil, err
	}
	cs[syntaxName] = syntaxRamp

	if req.Logos != nil {
		cs["Logos"] = req.Logos
	} else {
		cs["Logos"] = DefaultLogos()
	}

	t := &Theme{
		Name:     req.Name,
		Metadata: NewMetadata(req.Name, req.DisplayName, req.Description, req.Author, req.Tags),
		Colors:   cs,
		Mappings: Mappings{
			ColorClasses: map[string]string{
				"Primary":    primaryName,
				"Secondary":  secondaryName,
				"Success":    successName,
				"Error":      errorName,
				"Warning":    warningName,
				"GroupDark":  groupDarkName,
				"GroupLight": groupLightName,
				"Syntax":     syntaxName,
				"Logos":      "Logos",
			},
			SemanticMappings: defaultSemanticMappings(),
		},
	}
	return t, nil
}

// syntaxPalette picks the syntax palette name and colors. Explicit
// colors win over a seed; without either, the neutral default seed
// yields the literal "DefaultSyntax" palette.
func syntaxPalette(names *nameSet, seed string, explicit []string) (string, Ramp, error) {
	if len(explicit) > 0 {
		base, err := names.pick(explicit[0])
		if err != nil {
			return "", nil, err
		}
		canonical := make([]string, len(explicit))
		for i, hex := range explicit {
			c, err := color.ParseHex(hex)
			if err != nil {
				return "", nil, err
			}
			canonical[i] = color.Hex(c)
		}
		return base + "Syntax", stepRamp(canonical, 10), nil
	}

	name := "DefaultSyntax"
	if seed != "" {
		base, err := names.pick(seed)
		if err != nil {
			return "", nil, err
		}
		name = base + "Syntax"
	} else {
		seed = color.DefaultSyntaxSeed
	}
	colors, err := color.GenerateSyntaxPalette(seed, syntaxPaletteSize)
	if err != nil {
		return "", nil, err
	}
	return name, stepRamp(colors, 10), nil
}

// Write persists the theme under the themes root and returns the theme
// directory. Without overwrite, an existing directory is an error.
func (g *Generator) Write(t *Theme, overwrite bool) (string, error) {
	dir := filepath.Join(g.ThemesDir, t.Name)
	if !overwrite {
		if _, err := os.Stat(dir); err == nil {
			return "", fmt.Errorf("theme %q already exists at %s", t.Name, dir)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating theme dir: %w", err)
	}

	files := []struct {
		name string
		data interface{}
	}{
		{MetadataFile, t.Metadata},
		{ColorSystemFile, t.Colors},
		{MappingsFile, t.Mappings},
	}
	for _, f := range files {
		if err := writeYAMLFile(filepath.Join(dir, f.name), f.data); err != nil {
			return "", err
		}
	}
	return dir, nil
}

func writeYAMLFile(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// seedRamp expands a seed color into its 16-step B0-B150 ramp.
func seedRamp(seed string) (Ramp, error) {
	grad, err := color.GenerateLightnessGradient(seed)
	if err != nil {
		return nil, err
	}
	ramp := make(Ramp, len(grad))
	for i, hex := range grad {
		ramp[fmt.Sprintf("B%d", i*10)] = hex
	}
	return ramp, nil
}

// stepRamp keys colors as B<first>, B<first+10>, ...
func stepRamp(colors []string, first int) Ramp {
	ramp := make(Ramp, len(colors))
	for i, hex := range colors {
		ramp[fmt.Sprintf("B%d", first+i*10)] = hex
	}
	return ramp
}

// nameSet hands out palette names, deduplicating with a numeric
// suffix when two seeds land on the same name.
type nameSet struct {
	taken  map[string]bool
	simple bool
}

func newNameSet(simple bool) *nameSet {
	return &nameSet{taken: map[string]bool{"Logos": true}, simple: simple}
}

func (s *nameSet) pick(hex string) (string, error) {
	base, err := paletteNameFor(hex, !s.simple)
	if err != nil {
		return "", err
	}
	name := base
	for i := 2; s.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	s.taken[name] = true
	return name, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
