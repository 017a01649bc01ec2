package color

import (
	"fmt"
	"math"
)

// Theme selects the background family a palette is generated for. Dark
// palettes sit in a lower lightness band so they read well on dark
// editor backgrounds, light palettes in a higher one.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// GoldenRatio is the fraction of the hue wheel separating consecutive
// colors in the golden-ratio walk. Because it is irrational the walk
// never revisits a hue, so palettes of any size stay spread out.
const GoldenRatio = 0.618033988749895

// AutoHue asks a generator to pick the per-theme default start hue.
const AutoHue = -1.0

// Themes returns the supported theme kinds in display order.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

// ParseTheme validates a user-supplied theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (expected dark or light)", s)
}

// themeParams returns the base lightness, base chroma and default start
// hue for a theme. The values approximate the averages of the Spyder
// group palettes each theme kind was tuned against.
func themeParams(theme Theme) (lightness, chroma, startHue float64) {
	if theme == ThemeDark {
		return 58, 73, 37
	}
	return 65, 71, 53
}

// themeAdjust shifts a base color toward its theme: dark palettes get
// slightly darker and more chromatic for visibility on dark
// backgrounds, light palettes slightly brighter.
func themeAdjust(lch LCH, theme Theme) LCH {
	if theme == ThemeDark {
		return LCH{
			L: math.Max(15, lch.L-5),
			C: math.Min(120, lch.C+10),
			H: lch.H,
		}
	}
	return LCH{
		L: math.Min(95, lch.L+8),
		C: math.Min(120, lch.C+5),
		H: lch.H,
	}
}

// normHue wraps a hue into [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// goldenHue returns the i-th hue of a golden-ratio walk starting at start.
func goldenHue(start float64, i int) float64 {
	return normHue(start + float64(i)*360*GoldenRatio)
}

// GenerateThemeColors generates n theme-tuned colors. With uniform set
// the hue wheel is divided into even 360/n steps; otherwise hues follow
// the golden-ratio walk with slight lightness and chroma oscillation.
// Pass AutoHue as startHue to use the theme default (37 dark, 53 light).
func GenerateThemeColors(theme Theme, n int, startHue float64, uniform bool) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", n)
	}
	baseL, baseC, defaultHue := themeParams(theme)
	if startHue < 0 {
		startHue = defaultHue
	}
	if !uniform {
		return generatePerceptual(theme, n, startHue, baseL, baseC), nil
	}

	colors := make([]string, 0, n)
	step := 360 / float64(n)
	for i := 0; i < n; i++ {
		lch := themeAdjust(LCH{L: baseL, C: baseC, H: normHue(startHue + float64(i)*step)}, theme)
		colors = append(colors, Clamp(lch).Hex())
	}
	return colors, nil
}

// GenerateUniformPalette is GenerateThemeColors in uniform mode with the
// theme's default start hue.
func GenerateUniformPalette(theme Theme, n int) ([]string, error) {
	return GenerateThemeColors(theme, n, AutoHue, true)
}

// GeneratePerceptualPalette generates n colors on the golden-ratio hue
// walk with gentle sinusoidal lightness and chroma variation, then
// applies the theme adjustment. Pass AutoHue for the theme default hue.
func GeneratePerceptualPalette(theme Theme, n int, startHue float64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", n)
	}
	baseL, baseC, defaultHue := themeParams(theme)
	if startHue < 0 {
		startHue = defaultHue
	}
	return generatePerceptual(theme, n, startHue, baseL, baseC), nil
}

func generatePerceptual(theme Theme, n int, startHue, baseL, baseC float64) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		lch := LCH{
			L: baseL + (0.3*math.Sin(fi*1.5))*20,
			C: baseC * (0.8 + 0.4*math.Cos(fi*0.8)),
			H: goldenHue(startHue, i),
		}
		colors = append(colors, Clamp(themeAdjust(lch, theme)).Hex())
	}
	return colors
}

// lightnessBand returns the lightness range the optimized generator
// oscillates within for a theme.
func lightnessBand(theme Theme) (lo, hi float64) {
	if theme == ThemeDark {
		return 40, 75
	}
	return 60, 90
}

// hueChromaFactor boosts chroma for hue regions that read as washed out
// at a given chroma value. Greens and cyans need the most help, blues
// and magentas progressively less.
func hueChromaFactor(h float64) float64 {
	switch {
	case h >= 60 && h <= 180:
		return 1.3
	case h > 180 && h <= 240:
		return 1.2
	case h > 240 && h <= 300:
		return 1.1
	}
	return 1.0
}

// GenerateOptimizedColors generates n colors tuned for maximum
// distinguishability, for example as variable-explorer tags. Hues follow
// the golden-ratio walk (startHue seeds the walk; pass AutoHue to start
// at 0), lightness oscillates within the theme band and chroma is boosted
// per hue region.
//
// targetDeltaE is a soft goal. After generation, consecutive pairs whose
// distance falls short of it are separated by a single lightness nudge.
// If any pair still sits below DistinguishabilityFloor the palette is
// returned together with a DistinguishabilityError so the caller can
// decide whether to relax the constraints.
func GenerateOptimizedColors(theme Theme, n int, targetDeltaE, startHue float64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", n)
	}
	lo, hi := lightnessBand(theme)
	const baseChroma = 85

	lchs := make([]LCH, n)
	for i := 0; i < n; i++ {
		var h float64
		switch {
		case startHue >= 0 && i == 0:
			h = normHue(startHue)
		case startHue >= 0:
			h = goldenHue(startHue, i)
		default:
			h = goldenHue(0, i)
		}
		fi := float64(i)
		l := lo + (hi-lo)*(0.5+0.4*math.Sin(fi*1.8))
		c := math.Min(120, baseChroma*hueChromaFactor(h)*(0.8+0.4*math.Cos(fi*0.9)))
		lchs[i] = Clamp(LCH{L: l, C: c, H: h})
	}

	colors := make([]string, n)
	for i, lch := range lchs {
		colors[i] = lch.Hex()
	}

	// Soft verification pass: nudge the lightness of any color that sits
	// too close to its predecessor, once per offender.
	soft := math.Max(DistinguishabilityFloor, targetDeltaE*0.4)
	for i := 1; i < n; i++ {
		d, err := DeltaEHex(colors[i-1], colors[i])
		if err != nil {
			return nil, err
		}
		if d >= soft {
			continue
		}
		nudged := lchs[i]
		if nudged.L+8 <= hi {
			nudged.L += 8
		} else {
			nudged.L -= 8
		}
		nudged.L = math.Min(hi, math.Max(lo, nudged.L))
		lchs[i] = Clamp(nudged)
		colors[i] = lchs[i].Hex()
	}

	// Hard floor check on the final sRGB colors.
	for i := 1; i < n; i++ {
		d, err := DeltaEHex(colors[i-1], colors[i])
		if err != nil {
			return nil, err
		}
		if d < DistinguishabilityFloor {
			return colors, &DistinguishabilityError{
				IndexA: i - 1,
				IndexB: i,
				HexA:   colors[i-1],
				HexB:   colors[i],
				DeltaE: d,
				Floor:  DistinguishabilityFloor,
			}
		}
	}
	return colors, nil
}

// DefaultSyntaxSeed is the neutral gray used when no seed color is given
// for a syntax palette.
const DefaultSyntaxSeed = "#6B7280"

// GenerateSyntaxPalette generates n colors for syntax highlighting on
// dark backgrounds, walking golden-ratio hues from the seed color's hue.
// Lightness stays in a band readable over dark editor themes and chroma
// oscillates between muted and vivid so neighboring token kinds differ
// in more than hue alone. An empty seed falls back to DefaultSyntaxSeed.
func GenerateSyntaxPalette(seedHex string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", n)
	}
	if seedHex == "" {
		seedHex = DefaultSyntaxSeed
	}
	seed, err := ParseHexLCH(seedHex)
	if err != nil {
		return nil, err
	}
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		lch := LCH{
			L: 55 + 25*(0.5+0.4*math.Sin(fi*1.8)),
			C: 45 + 60*(0.5+0.5*math.Cos(fi*0.9)),
			H: goldenHue(seed.H, i),
		}
		colors = append(colors, Clamp(lch).Hex())
	}
	return colors, nil
}

// groupHueFactor is the chroma boost used by the group generators,
// gentler than hueChromaFactor since group colors cover larger UI
// surfaces.
func groupHueFactor(h float64) float64 {
	switch {
	case h >= 60 && h <= 180:
		return 1.2
	case h > 180 && h <= 240:
		return 1.1
	}
	return 1.0
}

// GenerateGroupPalettes derives matching GroupDark and GroupLight
// palettes from a single seed color. The seed becomes B10 of the dark
// palette; its lightened counterpart (seed lightness +20, clamped into
// [60, 95]) becomes B10 of the light palette. The remaining n-1 entries
// walk golden-ratio hues from the seed hue with per-theme lightness
// bands and chroma derived from the seed chroma. Keys run B10 through
// B{n*10}.
func GenerateGroupPalettes(seedHex string, n int) (dark, light map[string]string, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("palette size must be at least 1, got %d", n)
	}
	seed, err := ParseHexLCH(seedHex)
	if err != nil {
		return nil, nil, err
	}
	seed = Clamp(seed)

	dark = make(map[string]string, n)
	light = make(map[string]string, n)
	dark["B10"] = seed.Hex()

	lightSeed := LCH{
		L: math.Min(math.Max(seed.L+20, 60), 95),
		C: seed.C,
		H: seed.H,
	}
	light["B10"] = Clamp(lightSeed).Hex()

	for i := 1; i < n; i++ {
		fi := float64(i)
		h := goldenHue(seed.H, i)
		hf := groupHueFactor(h)
		wave := 0.5 + 0.4*math.Sin(fi*1.8)

		darkLCH := LCH{
			L: 40 + 35*wave,
			C: math.Min(100, seed.C*hf*(0.8+0.4*math.Cos(fi*0.9))),
			H: h,
		}
		lightLCH := LCH{
			L: 60 + 35*wave,
			C: math.Min(100, seed.C*hf*(0.7+0.5*math.Cos(fi*0.9))),
			H: h,
		}

		key := fmt.Sprintf("B%d", (i+1)*10)
		dark[key] = Clamp(darkLCH).Hex()
		light[key] = Clamp(lightLCH).Hex()
	}
	return dark, light, nil
}

// GradientSteps is the number of colors in a lightness gradient, matching
// the B0 through B150 ramp shape of a color system.
const GradientSteps = 16

// GenerateLightnessGradient builds a complete 16-color ramp from a
// single seed color. The seed is placed at its natural position, the
// rounded mapping of its lightness onto the 0-15 scale clamped to
// [1, 14], with lightness interpolated linearly from black below it and
// toward white above it. Chroma scales down in proportion on both sides
// so very dark and very light steps stay distinguishable rather than
// oversaturated. Positions 0 and 15 are forced to pure black and white,
// and the natural position carries the seed itself.
func GenerateLightnessGradient(seedHex string) ([GradientSteps]string, error) {
	var colors [GradientSteps]string
	seed, err := ParseHexLCH(seedHex)
	if err != nil {
		return colors, err
	}
	seed = Clamp(seed)

	pos := int(math.Round(seed.L / 100 * (GradientSteps - 1)))
	pos = max(1, min(GradientSteps-2, pos))

	var lightness, chroma [GradientSteps]float64
	for i := 0; i < GradientSteps; i++ {
		switch {
		case i < pos:
			f := float64(i) / float64(pos)
			lightness[i] = seed.L * f
			if seed.L > 0 {
				chroma[i] = seed.C * (lightness[i] / seed.L)
			}
		case i > pos:
			f := float64(i-pos) / float64(GradientSteps-1-pos)
			lightness[i] = seed.L + (100-seed.L)*f
			if seed.L < 100 {
				chroma[i] = seed.C * (1 - (lightness[i]-seed.L)/(100-seed.L))
			}
		default:
			lightness[i] = seed.L
			chroma[i] = seed.C
		}
	}

	for i := 0; i < GradientSteps; i++ {
		step := Clamp(LCH{L: lightness[i], C: chroma[i], H: seed.H})
		colors[i] = step.Hex()
	}

	colors[0] = "#000000"
	colors[GradientSteps-1] = "#FFFFFF"
	colors[pos] = seed.Hex()
	return colors, nil
}

// UniquenessReport describes duplicate colors found in a gradient.
type UniquenessReport struct {
	Total      int
	Unique     int
	Duplicates []string // each duplicated hex once, in first-seen order
}

// ValidateGradientUniqueness checks a gradient for duplicate entries,
// which show up when neighboring steps quantize to the same 8-bit color.
// It returns true and a nil report when every color is unique.
func ValidateGradientUniqueness(colors []string) (bool, *UniquenessReport) {
	seen := make(map[string]int, len(colors))
	var dups []string
	for _, c := range colors {
		seen[c]++
		if seen[c] == 2 {
			dups = append(dups, c)
		}
	}
	if len(dups) == 0 {
		return true, nil
	}
	return false, &UniquenessReport{
		Total:      len(colors),
		Unique:     len(seen),
		Duplicates: dups,
	}
}
