package color

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the engine's failure modes. Concrete error values
// carry diagnostics and match these via errors.Is.
var (
	ErrInvalidFormat      = errors.New("invalid color format")
	ErrGamut              = errors.New("gamut convergence failure")
	ErrDistinguishability = errors.New("distinguishability violation")
)

// InvalidFormatError reports input that is not a 6-digit hex color or a
// component outside its documented range.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid color format: %q (want #RRGGBB)", e.Input)
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// GamutError reports an LCH color whose requested chroma cannot be
// represented in sRGB within tolerance. MaxChroma is the largest chroma
// the guard could prove in-gamut at the requested lightness and hue.
type GamutError struct {
	L, C, H   float64
	MaxChroma float64
}

func (e *GamutError) Error() string {
	return fmt.Sprintf("gamut convergence failure: LCH(%.2f, %.2f, %.2f) exceeds sRGB, max chroma %.2f",
		e.L, e.C, e.H, e.MaxChroma)
}

func (e *GamutError) Is(target error) bool {
	return target == ErrGamut
}

// DistinguishabilityError reports a generated pair whose perceptual
// distance fell below the hard floor.
type DistinguishabilityError struct {
	IndexA, IndexB int
	HexA, HexB     string
	DeltaE         float64
	Floor          float64
}

func (e *DistinguishabilityError) Error() string {
	return fmt.Sprintf("distinguishability violation: colors %d (%s) and %d (%s) have delta E %.2f, floor %.2f",
		e.IndexA, e.HexA, e.IndexB, e.HexB, e.DeltaE, e.Floor)
}

func (e *DistinguishabilityError) Is(target error) bool {
	return target == ErrDistinguishability
}
