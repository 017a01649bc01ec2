package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeweaver/internal/color"
)

// stubNames pins palette names to their seed hex so generation is
// deterministic under test.
func stubNames(t *testing.T) {
	t.Helper()
	orig := paletteNameFor
	paletteNameFor = func(hex string, creative bool) (string, error) {
		return "P" + strings.ToUpper(strings.TrimPrefix(hex, "#")), nil
	}
	t.Cleanup(func() { paletteNameFor = orig })
}

func baseRequest() Request {
	return Request{
		Name:      "test_theme",
		Author:    "QA",
		Primary:   "#DC143C",
		Secondary: "#4169E1",
		Error:     "#B22222",
		Success:   "#2E8B57",
		Warning:   "#DAA520",
		Group:     "#3CB371",
	}
}

func TestGenerateFromColors(t *testing.T) {
	stubNames(t)

	th, err := NewGenerator(t.TempDir()).GenerateFromColors(baseRequest())
	require.NoError(t, err)

	classes := th.Mappings.ColorClasses
	assert.Equal(t, "PDC143C", classes["Primary"])
	assert.Equal(t, "P4169E1", classes["Secondary"])
	assert.Equal(t, "PB22222", classes["Error"])
	assert.Equal(t, "P2E8B57", classes["Success"])
	assert.Equal(t, "PDAA520", classes["Warning"])
	assert.Equal(t, "P3CB371Dark", classes["GroupDark"])
	assert.Equal(t, "P3CB371Light", classes["GroupLight"])
	assert.Equal(t, "DefaultSyntax", classes["Syntax"])
	assert.Equal(t, "Logos", classes["Logos"])

	// Seed ramps run B0-B150 with forced black and white ends and the
	// seed itself somewhere inside.
	primary := th.Colors["PDC143C"]
	require.Len(t, primary, 16)
	assert.Equal(t, "#000000", primary["B0"])
	assert.Equal(t, "#FFFFFF", primary["B150"])
	assert.Contains(t, rampValues(primary), "#DC143C")

	groupDark := th.Colors["P3CB371Dark"]
	require.Len(t, groupDark, groupPaletteSize)
	assert.Equal(t, "#3CB371", groupDark["B10"])
	require.Len(t, th.Colors["P3CB371Light"], groupPaletteSize)

	syntax := th.Colors["DefaultSyntax"]
	require.Len(t, syntax, syntaxPaletteSize)
	assert.Contains(t, syntax, "B10")
	assert.Contains(t, syntax, "B160")
	assert.NotContains(t, syntax, "B0")

	assert.Equal(t, DefaultLogos(), th.Colors["Logos"])

	meta := th.Metadata
	assert.Equal(t, "test_theme", meta.Name)
	assert.Equal(t, "Test Theme", meta.DisplayName)
	assert.Equal(t, "Generated theme: test_theme", meta.Description)
	assert.Equal(t, "QA", meta.Author)
	assert.Equal(t, "1.0.0", meta.Version)
	assert.Equal(t, "MIT", meta.License)
	assert.Equal(t, []string{"dark", "light", "generated"}, meta.Tags)
	assert.True(t, meta.Variants.Dark)
	assert.True(t, meta.Variants.Light)

	require.NoError(t, th.Validate())

	resolved, err := th.Resolve(VariantDark)
	require.NoError(t, err)
	assert.Equal(t, primary["B10"], resolved["COLOR_BACKGROUND_1"].Color)
	assert.Equal(t, 230, resolved["OPACITY_TOOLTIP"].Number)
	assert.True(t, resolved["EDITOR_KEYWORD"].Bold)
}

func TestGenerateFromColorsDeduplicatesNames(t *testing.T) {
	stubNames(t)

	req := baseRequest()
	req.Secondary = req.Primary

	th, err := NewGenerator(t.TempDir()).GenerateFromColors(req)
	require.NoError(t, err)

	classes := th.Mappings.ColorClasses
	assert.Equal(t, "PDC143C", classes["Primary"])
	assert.Equal(t, "PDC143C2", classes["Secondary"])
	assert.Contains(t, th.Colors, "PDC143C")
	assert.Contains(t, th.Colors, "PDC143C2")
}

func TestGenerateFromColorsSimpleNames(t *testing.T) {
	var sawCreative []bool
	orig := paletteNameFor
	paletteNameFor = func(hex string, creative bool) (string, error) {
		sawCreative = append(sawCreative, creative)
		return "P" + strings.ToUpper(strings.TrimPrefix(hex, "#")), nil
	}
	t.Cleanup(func() { paletteNameFor = orig })

	req := baseRequest()
	req.SimpleNames = true

	_, err := NewGenerator(t.TempDir()).GenerateFromColors(req)
	require.NoError(t, err)

	require.NotEmpty(t, sawCreative)
	for _, creative := range sawCreative {
		assert.False(t, creative, "simple naming must not request creative names")
	}
}

func TestGenerateFromColorsSyntaxSeed(t *testing.T) {
	stubNames(t)

	req := baseRequest()
	req.SyntaxSeed = "#22AA66"

	th, err := NewGenerator(t.TempDir()).GenerateFromColors(req)
	require.NoError(t, err)

	assert.Equal(t, "P22AA66Syntax", th.Mappings.ColorClasses["Syntax"])
	require.Len(t, th.Colors["P22AA66Syntax"], syntaxPaletteSize)
	require.NoError(t, th.Validate())
}

func TestGenerateFromColorsExplicitSyntaxColors(t *testing.T) {
	stubNames(t)

	colors, err := color.GenerateSyntaxPalette(color.DefaultSyntaxSeed, syntaxPaletteSize)
	require.NoError(t, err)

	req := baseRequest()
	req.SyntaxColors = colors

	th, err := NewGenerator(t.TempDir()).GenerateFromColors(req)
	require.NoError(t, err)

	name := th.Mappings.ColorClasses["Syntax"]
	assert.True(t, strings.HasSuffix(name, "Syntax"))

	ramp := th.Colors[name]
	require.Len(t, ramp, syntaxPaletteSize)
	for i, hex := range colors {
		assert.Equal(t, hex, ramp[stepKey(10+i*10)])
	}
}

func TestGenerateFromColorsRejectsBadInput(t *testing.T) {
	stubNames(t)
	gen := NewGenerator(t.TempDir())

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr string
	}{
		{"empty name", func(r *Request) { r.Name = "" }, "name is required"},
		{"path separator", func(r *Request) { r.Name = "a/b" }, "path separators"},
		{"invalid primary", func(r *Request) { r.Primary = "red" }, "primary"},
		{"too dark group", func(r *Request) { r.Group = "#050505" }, "too dark"},
		{"too light warning", func(r *Request) { r.Warning = "#FEFEFE" }, "too light"},
		{"short syntax list", func(r *Request) { r.SyntaxColors = []string{"#DC143C"} }, "exactly 16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			_, err := gen.GenerateFromColors(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGeneratorWriteRoundTrip(t *testing.T) {
	stubNames(t)

	root := t.TempDir()
	gen := NewGenerator(root)

	th, err := gen.GenerateFromColors(baseRequest())
	require.NoError(t, err)

	dir, err := gen.Write(th, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "test_theme"), dir)

	for _, f := range []string{MetadataFile, ColorSystemFile, MappingsFile} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err)
	}

	// A second write without overwrite refuses to clobber.
	_, err = gen.Write(th, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = gen.Write(th, true)
	require.NoError(t, err)

	back, err := NewLoader(root).Load("test_theme")
	require.NoError(t, err)
	assert.Equal(t, th.Metadata, back.Metadata)
	assert.Equal(t, th.Colors, back.Colors)
	assert.Equal(t, th.Mappings, back.Mappings)
	require.NoError(t, back.Validate())
}

func TestNewMetadataDefaults(t *testing.T) {
	meta := NewMetadata("solar_flare", "", "", "", nil)
	assert.Equal(t, "Solar Flare", meta.DisplayName)
	assert.Equal(t, "Generated theme: solar_flare", meta.Description)
	assert.Equal(t, "1.0.0", meta.Version)
	assert.Equal(t, "MIT", meta.License)
	assert.Equal(t, []string{"dark", "light", "generated"}, meta.Tags)

	custom := NewMetadata("x", "My X", "About", "QA", []string{"demo"})
	assert.Equal(t, "My X", custom.DisplayName)
	assert.Equal(t, "About", custom.Description)
	assert.Equal(t, []string{"demo"}, custom.Tags)
}

func rampValues(r Ramp) []string {
	out := make([]string, 0, len(r))
	for _, v := range r {
		out = append(out, v)
	}
	return out
}

func stepKey(n int) string {
	return fmt.Sprintf("B%d", n)
}
