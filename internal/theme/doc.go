// Package theme defines the on-disk theme model and its lifecycle.
//
// A theme is a directory holding three YAML files:
//   - theme.yaml: metadata (name, author, supported variants)
//   - colorsystem.yaml: named 16-step color ramps plus group and logo
//     palettes, every entry a B-keyed hex string
//   - mappings.yaml: the indirection from semantic UI tokens to ramp
//     steps, split into color classes and per-variant mapping tables
//
// Semantic values come in three shapes: a "Class.B10" reference, a raw
// number that passes through untouched, and a [reference, bold, italic]
// triple for editor tokens that carry font styling. Resolution walks
// token -> class -> palette -> hex and fails with a ReferenceError on
// any dangling link.
//
// The Generator builds complete theme directories from a handful of
// seed colors using the palette generators in internal/color.
package theme
