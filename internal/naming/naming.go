// Package naming maps colors to human-readable names using an embedded
// reference table. Lookups are offline and deterministic: the nearest
// table entry by CIEDE2000 wins. Palette names combine an adjective with
// the cleaned color name, e.g. "KineticCrimson".
package naming

import (
	"math"
	"math/rand"
	"strings"

	"themeweaver/internal/color"
)

// Match is the result of a nearest-name lookup.
type Match struct {
	Name   string
	Hex    string
	DeltaE float64
}

// Nearest returns the reference color closest to hex. DeltaE is the
// CIEDE2000 distance to the matched entry; 0 means an exact entry.
func Nearest(hex string) (Match, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return Match{}, err
	}
	best := Match{DeltaE: math.Inf(1)}
	for _, e := range referenceTable() {
		d := color.DeltaE(c, e.color)
		if d < best.DeltaE {
			best = Match{Name: e.name, Hex: e.hex, DeltaE: d}
		}
	}
	return best, nil
}

// CleanName strips the separators that keep a display name from being a
// valid palette identifier.
func CleanName(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "'", "")
	return r.Replace(name)
}

// Mockable for deterministic tests.
var randIntn = rand.Intn

// Adjective returns a random adjective from the embedded list.
func Adjective() string {
	return adjectives[randIntn(len(adjectives))]
}

// PaletteName derives a palette identifier from a color. With creative
// set, the name gets a random adjective prefix ("BrightCrimson");
// otherwise it is just the cleaned nearest name ("Crimson").
func PaletteName(hex string, creative bool) (string, error) {
	m, err := Nearest(hex)
	if err != nil {
		return "", err
	}
	name := CleanName(m.Name)
	if creative {
		return Adjective() + name, nil
	}
	return name, nil
}
