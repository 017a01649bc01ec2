// Package color implements the perceptual color engine for themeweaver.
//
// All palette work happens in CIE LCh(ab) with a D65 reference white,
// where equal numeric steps are close to equal perceived steps. sRGB is
// the delivery gamut: every emitted color is representable as an 8-bit
// #RRGGBB string.
//
// # Core Functionality
//
// The package provides:
//   - Conversions between hex, sRGB, HSV and LCH
//   - Perceptual color difference (CIEDE2000, classic 0-100 scale)
//   - Color interpolation with seven easing curves plus HSV and LCH spaces
//   - An sRGB gamut guard (chroma bisection with preserve modes)
//   - Palette generators (uniform, perceptual, optimal, syntax, groups,
//     lightness gradients)
//   - Palette analysis (LCH statistics, chromatic distance reports,
//     parameter search)
//
// # Coordinate Conventions
//
// LCH lightness runs 0-100, chroma 0-150 for practical colors, hue
// 0-360 degrees. HSV hue is also degrees, saturation and value 0-1.
// Colors with chroma below the visible threshold report hue 0.
// go-colorful keeps L and C normalized to 0-1 internally; the adapters
// in this package scale by 100 at the boundary.
//
// # Determinism
//
// Every generator is a pure function of its inputs. There is no
// randomness and no I/O; identical calls produce identical palettes.
//
// # Errors
//
// Failures are typed values carrying the diagnostic numbers
// (InvalidFormatError, GamutError, DistinguishabilityError) and match
// the package sentinels via errors.Is. The engine never logs; callers
// decide presentation.
package color
