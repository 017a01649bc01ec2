package color

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hueDiff is the angular distance between two hues in degrees.
func hueDiff(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func requireAllValid(t *testing.T, colors []string) {
	t.Helper()
	for i, c := range colors {
		_, err := ParseHex(c)
		require.NoError(t, err, "color %d (%q) is not a valid hex color", i, c)
	}
}

func TestParseTheme(t *testing.T) {
	for _, want := range Themes() {
		got, err := ParseTheme(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseTheme("solarized")
	assert.Error(t, err)
}

func TestGenerateThemeColors(t *testing.T) {
	for _, theme := range Themes() {
		for _, uniform := range []bool{true, false} {
			colors, err := GenerateThemeColors(theme, 12, AutoHue, uniform)
			require.NoError(t, err)
			require.Len(t, colors, 12)
			requireAllValid(t, colors)
		}
	}

	_, err := GenerateThemeColors(ThemeDark, 0, AutoHue, true)
	assert.Error(t, err)
}

func TestGenerateThemeColorsAutoHue(t *testing.T) {
	auto, err := GenerateThemeColors(ThemeDark, 6, AutoHue, true)
	require.NoError(t, err)
	explicit, err := GenerateThemeColors(ThemeDark, 6, 37, true)
	require.NoError(t, err)
	assert.Equal(t, explicit, auto, "AutoHue should resolve to the dark default of 37")
}

func TestGenerateUniformPaletteHueWheel(t *testing.T) {
	colors, err := GenerateUniformPalette(ThemeDark, 12)
	require.NoError(t, err)
	require.Len(t, colors, 12)

	for i, hex := range colors {
		lch, err := ParseHexLCH(hex)
		require.NoError(t, err)
		want := math.Mod(37+float64(i)*30, 360)
		assert.LessOrEqual(t, hueDiff(want, lch.H), 2.0,
			"color %d hue %.1f, want about %.1f", i, lch.H, want)
	}
}

func TestGeneratePerceptualPalette(t *testing.T) {
	colors, err := GeneratePerceptualPalette(ThemeLight, 8, AutoHue)
	require.NoError(t, err)
	require.Len(t, colors, 8)
	requireAllValid(t, colors)

	again, err := GeneratePerceptualPalette(ThemeLight, 8, AutoHue)
	require.NoError(t, err)
	assert.Equal(t, colors, again, "generation must be deterministic")

	_, err = GeneratePerceptualPalette(ThemeLight, -3, AutoHue)
	assert.Error(t, err)
}

func TestGenerateOptimizedColorsDistinguishability(t *testing.T) {
	for _, theme := range Themes() {
		colors, err := GenerateOptimizedColors(theme, 12, 25, AutoHue)
		require.NoError(t, err)
		require.Len(t, colors, 12)
		requireAllValid(t, colors)

		// Every pair, not just neighbors, must clear the floor.
		for i := 0; i < len(colors); i++ {
			for j := i + 1; j < len(colors); j++ {
				d, err := DeltaEHex(colors[i], colors[j])
				require.NoError(t, err)
				assert.GreaterOrEqual(t, d, DistinguishabilityFloor,
					"%s colors %d (%s) and %d (%s)", theme, i, colors[i], j, colors[j])
			}
		}
	}
}

func TestGenerateOptimizedColorsStartHue(t *testing.T) {
	colors, err := GenerateOptimizedColors(ThemeDark, 5, 25, 37)
	require.NoError(t, err)

	first, err := ParseHexLCH(colors[0])
	require.NoError(t, err)
	assert.LessOrEqual(t, hueDiff(37, first.H), 3.0,
		"first color hue %.1f should sit at the requested 37", first.H)
}

func TestGenerateOptimizedColorsDeterministic(t *testing.T) {
	a, err := GenerateOptimizedColors(ThemeDark, 12, 25, AutoHue)
	require.NoError(t, err)
	b, err := GenerateOptimizedColors(ThemeDark, 12, 25, AutoHue)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateSyntaxPalette(t *testing.T) {
	colors, err := GenerateSyntaxPalette("", 16)
	require.NoError(t, err)
	require.Len(t, colors, 16)
	requireAllValid(t, colors)

	// The seed contributes the starting hue.
	seed, err := ParseHexLCH("#E74C3C")
	require.NoError(t, err)
	colors, err = GenerateSyntaxPalette("#E74C3C", 8)
	require.NoError(t, err)
	first, err := ParseHexLCH(colors[0])
	require.NoError(t, err)
	assert.LessOrEqual(t, hueDiff(seed.H, first.H), 2.0)

	_, err = GenerateSyntaxPalette("oops", 8)
	assert.Error(t, err)
	_, err = GenerateSyntaxPalette("", 0)
	assert.Error(t, err)
}

func TestGenerateGroupPalettes(t *testing.T) {
	dark, light, err := GenerateGroupPalettes("#3775A9", 12)
	require.NoError(t, err)
	require.Len(t, dark, 12)
	require.Len(t, light, 12)

	// The seed itself anchors the dark palette.
	assert.Equal(t, "#3775A9", dark["B10"])

	// Matching key sets B10..B120 on both sides.
	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf("B%d", i*10)
		require.Contains(t, dark, key)
		require.Contains(t, light, key)
		_, err := ParseHex(dark[key])
		assert.NoError(t, err)
		_, err = ParseHex(light[key])
		assert.NoError(t, err)
	}

	// The light anchor is a brighter take on the seed.
	darkAnchor, err := ParseHexLCH(dark["B10"])
	require.NoError(t, err)
	lightAnchor, err := ParseHexLCH(light["B10"])
	require.NoError(t, err)
	assert.Greater(t, lightAnchor.L, darkAnchor.L)
	assert.LessOrEqual(t, hueDiff(darkAnchor.H, lightAnchor.H), 2.0,
		"both anchors should keep the seed hue")
}

func TestGenerateGroupPalettesArgs(t *testing.T) {
	_, _, err := GenerateGroupPalettes("nope", 12)
	assert.Error(t, err)
	_, _, err = GenerateGroupPalettes("#3775A9", 0)
	assert.Error(t, err)

	dark, light, err := GenerateGroupPalettes("#3775A9", 1)
	require.NoError(t, err)
	assert.Len(t, dark, 1)
	assert.Len(t, light, 1)
}

func TestGenerateLightnessGradient(t *testing.T) {
	colors, err := GenerateLightnessGradient("#E74C3C")
	require.NoError(t, err)

	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#FFFFFF", colors[GradientSteps-1])
	assert.Equal(t, "#E74C3C", colors[8], "seed belongs at its natural position")

	prev := -1.0
	for i, hex := range colors {
		lch, err := ParseHexLCH(hex)
		require.NoError(t, err)
		assert.Greater(t, lch.L, prev, "lightness must climb at step %d", i)
		prev = lch.L
	}
}

func TestGenerateLightnessGradientNearBlackSeed(t *testing.T) {
	// A nearly black seed cannot occupy position 0; it lands on 1 and
	// black keeps the head of the ramp.
	colors, err := GenerateLightnessGradient("#050505")
	require.NoError(t, err)
	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#050505", colors[1])
	assert.Equal(t, "#FFFFFF", colors[15])
}

func TestGenerateLightnessGradientInvalidSeed(t *testing.T) {
	_, err := GenerateLightnessGradient("#12")
	assert.Error(t, err)
}

func TestValidateGradientUniqueness(t *testing.T) {
	colors, err := GenerateLightnessGradient("#3775A9")
	require.NoError(t, err)
	ok, report := ValidateGradientUniqueness(colors[:])
	assert.True(t, ok)
	assert.Nil(t, report)

	ok, report = ValidateGradientUniqueness([]string{"#000000", "#FFFFFF", "#000000"})
	assert.False(t, ok)
	require.NotNil(t, report)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Unique)
	assert.Equal(t, []string{"#000000"}, report.Duplicates)
}

func BenchmarkGenerateLightnessGradient(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateLightnessGradient("#E74C3C"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateOptimizedColors(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateOptimizedColors(ThemeDark, 12, 25, AutoHue); err != nil {
			b.Fatal(err)
		}
	}
}
