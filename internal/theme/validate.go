package theme

import (
	"fmt"
	"regexp"

	"themeweaver/internal/color"
)

// Seed colors must carry the leading '#', stricter than the engine's
// parser.
var seedHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// SeedColor pairs a seed role with its hex value for validation.
type SeedColor struct {
	Role string
	Hex  string
}

// ValidateInputColor checks that one seed color is usable as a palette
// anchor: strict #RRGGBB format and mid-range lightness. Grays pass;
// only the lightness extremes are rejected, since a near-black or
// near-white seed leaves no room for a usable ramp.
func ValidateInputColor(role, hex string) error {
	if !seedHexPattern.MatchString(hex) {
		return fmt.Errorf("%s color %q is not a valid hex color (#RRGGBB)", role, hex)
	}
	lch, err := color.ParseHexLCH(hex)
	if err != nil {
		return fmt.Errorf("%s color %s: %w", role, hex, err)
	}
	if lch.L < 10 {
		return fmt.Errorf("%s color %s is too dark (L=%.1f)", role, hex, lch.L)
	}
	if lch.L > 90 {
		return fmt.Errorf("%s color %s is too light (L=%.1f)", role, hex, lch.L)
	}
	return nil
}

// ValidateInputColors checks each seed in order and returns the first
// failure.
func ValidateInputColors(seeds []SeedColor) error {
	for _, s := range seeds {
		if err := ValidateInputColor(s.Role, s.Hex); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a loaded theme end to end: at least one variant is
// enabled, every color class points at an existing palette, every
// enabled variant has a semantic mapping table, and every reference in
// those tables resolves.
func (t *Theme) Validate() error {
	enabled := t.Metadata.Variants.Enabled()
	if len(enabled) == 0 {
		return fmt.Errorf("theme %q enables no variants", t.Name)
	}
	for class, palette := range t.Mappings.ColorClasses {
		if _, ok := t.Colors[palette]; !ok {
			return fmt.Errorf("theme %q: color class %q points at missing palette %q", t.Name, class, palette)
		}
	}
	for _, variant := range enabled {
		if t.Mappings.Variant(variant) == nil {
			return fmt.Errorf("theme %q declares the %s variant but has no %s semantic mappings", t.Name, variant, variant)
		}
		if _, err := t.Resolve(variant); err != nil {
			return fmt.Errorf("theme %q: %s: %w", t.Name, variant, err)
		}
	}
	return nil
}
