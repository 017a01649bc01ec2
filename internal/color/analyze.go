package color

import (
	"errors"
	"fmt"
	"math"
)

// PaletteColor is one analyzed palette entry with its coordinates in
// both cylindrical models.
type PaletteColor struct {
	Index int
	Hex   string
	LCH   LCH
	HSV   HSV
}

// ChannelStats aggregates one LCH channel across a palette.
type ChannelStats struct {
	Min float64
	Max float64
	Avg float64
}

// PaletteStats is the result of analyzing a palette in LCH space.
type PaletteStats struct {
	Colors    []PaletteColor
	Lightness ChannelStats
	Chroma    ChannelStats
	HueMin    float64
	HueMax    float64
}

// AnalyzePalette computes per-color LCH and HSV coordinates plus
// aggregate lightness, chroma and hue statistics for a palette.
func AnalyzePalette(colors []string) (*PaletteStats, error) {
	if len(colors) == 0 {
		return nil, errors.New("no colors to analyze")
	}
	stats := &PaletteStats{
		Colors:    make([]PaletteColor, 0, len(colors)),
		Lightness: ChannelStats{Min: math.Inf(1), Max: math.Inf(-1)},
		Chroma:    ChannelStats{Min: math.Inf(1), Max: math.Inf(-1)},
		HueMin:    math.Inf(1),
		HueMax:    math.Inf(-1),
	}
	for i, hex := range colors {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		lch := ToLCH(c)
		stats.Colors = append(stats.Colors, PaletteColor{
			Index: i,
			Hex:   Hex(c),
			LCH:   lch,
			HSV:   ToHSV(c),
		})
		stats.Lightness.Min = math.Min(stats.Lightness.Min, lch.L)
		stats.Lightness.Max = math.Max(stats.Lightness.Max, lch.L)
		stats.Lightness.Avg += lch.L
		stats.Chroma.Min = math.Min(stats.Chroma.Min, lch.C)
		stats.Chroma.Max = math.Max(stats.Chroma.Max, lch.C)
		stats.Chroma.Avg += lch.C
		stats.HueMin = math.Min(stats.HueMin, lch.H)
		stats.HueMax = math.Max(stats.HueMax, lch.H)
	}
	n := float64(len(stats.Colors))
	stats.Lightness.Avg /= n
	stats.Chroma.Avg /= n
	return stats, nil
}

// SpacingVerdict classifies the average perceptual step of a palette.
type SpacingVerdict string

const (
	SpacingGood         SpacingVerdict = "good"
	SpacingTooSimilar   SpacingVerdict = "too-similar"
	SpacingTooDifferent SpacingVerdict = "too-different"
)

// DistanceStep is the perceptual distance between two consecutive
// palette entries.
type DistanceStep struct {
	From   string
	To     string
	DeltaE float64
}

// DistanceStats summarizes the consecutive-pair distances of a palette.
// Spacing flags palettes whose average step is too small to distinguish
// (below 10) or large enough to feel jarring (above 50). Consistent is
// false when the spread between the largest and smallest step exceeds 20,
// meaning some transitions jump much harder than others.
type DistanceStats struct {
	Steps      []DistanceStep
	Avg        float64
	Min        float64
	Max        float64
	StdDev     float64
	Spacing    SpacingVerdict
	Consistent bool
}

// AnalyzeChromaticDistances measures the perceptual distance between
// each consecutive pair of palette colors and assesses the spacing.
func AnalyzeChromaticDistances(colors []string) (*DistanceStats, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("need at least 2 colors to measure distances, got %d", len(colors))
	}
	stats := &DistanceStats{
		Steps: make([]DistanceStep, 0, len(colors)-1),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}
	for i := 0; i < len(colors)-1; i++ {
		d, err := DeltaEHex(colors[i], colors[i+1])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		stats.Steps = append(stats.Steps, DistanceStep{
			From:   colors[i],
			To:     colors[i+1],
			DeltaE: d,
		})
		stats.Avg += d
		stats.Min = math.Min(stats.Min, d)
		stats.Max = math.Max(stats.Max, d)
	}
	stats.Avg /= float64(len(stats.Steps))

	var variance float64
	for _, s := range stats.Steps {
		variance += (s.DeltaE - stats.Avg) * (s.DeltaE - stats.Avg)
	}
	stats.StdDev = math.Sqrt(variance / float64(len(stats.Steps)))

	switch {
	case stats.Avg < 10:
		stats.Spacing = SpacingTooSimilar
	case stats.Avg > 50:
		stats.Spacing = SpacingTooDifferent
	default:
		stats.Spacing = SpacingGood
	}
	stats.Consistent = stats.Max-stats.Min <= 20
	return stats, nil
}

// GeneratorParams is a candidate parameter set for the optimized
// generator.
type GeneratorParams struct {
	TargetDeltaE float64
	StartHue     float64
}

// findOptimalCandidates is the target-distance grid searched by
// FindOptimalParameters.
var findOptimalCandidates = []float64{15, 20, 25, 30, 35}

// FindOptimalParameters searches for the generator parameters whose
// output most closely matches a reference palette. The start hue is
// fixed to the lowest hue found in the reference and the target distance
// is swept over a small grid; for each candidate the generated and
// reference colors are compared position by position and the candidate
// with the lowest average distance wins. The search is fully
// deterministic, so repeated runs over the same reference agree.
//
// maxColors caps how many colors are generated per candidate; pass 0 to
// match the reference length. The achieved average distance is returned
// alongside the winning parameters.
func FindOptimalParameters(reference []string, maxColors int) (GeneratorParams, float64, error) {
	stats, err := AnalyzePalette(reference)
	if err != nil {
		return GeneratorParams{}, 0, err
	}
	startHue := math.Trunc(stats.HueMin)

	n := maxColors
	if n <= 0 {
		n = len(reference)
	}

	best := GeneratorParams{}
	bestDistance := math.Inf(1)
	found := false
	for _, target := range findOptimalCandidates {
		generated, err := GenerateOptimizedColors(ThemeDark, n, target, startHue)
		if err != nil && !errors.Is(err, ErrDistinguishability) {
			return GeneratorParams{}, 0, err
		}

		var total float64
		var count int
		for i, gen := range generated {
			if i >= len(reference) {
				break
			}
			d, err := DeltaEHex(gen, reference[i])
			if err != nil {
				return GeneratorParams{}, 0, err
			}
			total += d
			count++
		}
		if count == 0 {
			continue
		}
		avg := total / float64(count)
		if avg < bestDistance {
			bestDistance = avg
			best = GeneratorParams{TargetDeltaE: target, StartHue: startHue}
			found = true
		}
	}
	if !found {
		return GeneratorParams{}, 0, fmt.Errorf("no candidate parameters could be evaluated against %d reference colors", len(reference))
	}
	return best, bestDistance, nil
}
