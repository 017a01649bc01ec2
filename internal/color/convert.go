package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hexPattern accepts a 6-digit hex color with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Lightness thresholds on the CIE L* scale.
const (
	darkThreshold  = 35.0
	lightThreshold = 65.0
)

// achromaticChroma is the chroma below which a color counts as gray and
// its numerically arbitrary hue is reported as 0. True grays convert
// with residual chroma near 1e-3 from matrix rounding, two orders below
// the smallest visible 8-bit chroma.
const achromaticChroma = 0.01

// HSV holds a color in HSV coordinates. H is degrees 0-360, S and V
// run 0-1.
type HSV struct {
	H, S, V float64
}

// LCH holds a color in CIE LCh(ab) coordinates, D65 reference white.
// L runs 0-100, C is unbounded (0-150 covers practical colors), H is
// degrees 0-360.
type LCH struct {
	L, C, H float64
}

// Lightness is the three-stage classification used by theme roles.
type Lightness string

const (
	LightnessDark   Lightness = "dark"
	LightnessMedium Lightness = "medium"
	LightnessLight  Lightness = "light"
)

// ParseHex parses a 6-digit hex color, with or without the leading '#'.
func ParseHex(s string) (colorful.Color, error) {
	if !hexPattern.MatchString(s) {
		return colorful.Color{}, &InvalidFormatError{Input: s}
	}
	digits := strings.TrimPrefix(s, "#")
	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return colorful.Color{}, &InvalidFormatError{Input: s}
	}
	return c, nil
}

// Hex formats a color as uppercase #RRGGBB, quantized to 8 bits per channel.
func Hex(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ToHSV converts to HSV.
func ToHSV(c colorful.Color) HSV {
	h, s, v := c.Hsv()
	return HSV{H: h, S: s, V: v}
}

// Color converts back to sRGB.
func (hsv HSV) Color() colorful.Color {
	return colorful.Hsv(hsv.H, hsv.S, hsv.V)
}

// Hex formats the HSV color as uppercase #RRGGBB.
func (hsv HSV) Hex() string {
	return Hex(hsv.Color())
}

// ToLCH converts to CIE LCh(ab). go-colorful keeps L and C normalized
// to 0-1; this scales both to the conventional 0-100 range. Grays have
// no defined hue and report H as 0.
func ToLCH(c colorful.Color) LCH {
	h, ch, l := c.Hcl()
	lch := LCH{L: l * 100.0, C: ch * 100.0, H: h}
	if lch.C < achromaticChroma {
		lch.H = 0
	}
	return lch
}

// Color converts back to sRGB. The result may lie outside the gamut;
// use InGamut or Clamp when an emittable color is required.
func (lch LCH) Color() colorful.Color {
	return colorful.Hcl(lch.H, lch.C/100.0, lch.L/100.0)
}

// Hex formats the LCH color as uppercase #RRGGBB. Channels outside 0-1
// are clipped before quantization; this is a safety net for float fuzz,
// not gamut mapping.
func (lch LCH) Hex() string {
	return Hex(lch.Color().Clamped())
}

// ParseHexLCH parses a hex color straight into LCH coordinates.
func ParseHexLCH(s string) (LCH, error) {
	c, err := ParseHex(s)
	if err != nil {
		return LCH{}, err
	}
	return ToLCH(c), nil
}

// IsDark reports whether the color reads as dark (L below 35).
func IsDark(c colorful.Color) bool {
	return ToLCH(c).L < darkThreshold
}

// Classify buckets a color into dark, medium or light by its LCH
// lightness. Dark is L below 35, light is L above 65.
func Classify(c colorful.Color) Lightness {
	l := ToLCH(c).L
	switch {
	case l < darkThreshold:
		return LightnessDark
	case l > lightThreshold:
		return LightnessLight
	default:
		return LightnessMedium
	}
}

// RelativeLuminance is the WCAG 2.0 relative luminance, 0 (black) to 1
// (white). https://www.w3.org/TR/WCAG20/#relativeluminancedef
func RelativeLuminance(c colorful.Color) float64 {
	return 0.2126*gammaExpand(c.R) + 0.7152*gammaExpand(c.G) + 0.0722*gammaExpand(c.B)
}

func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio is the WCAG 2.0 contrast ratio, 1 to 21.
func ContrastRatio(a, b colorful.Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
