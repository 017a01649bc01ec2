package color

// Gamut guard: every emitted color must survive the trip to 8-bit sRGB.
// Out-of-gamut LCH values are pulled back by reducing chroma at fixed
// lightness and hue (the perceptually least destructive axis), found by
// bisection against the gamut boundary.

const (
	// chromaTolerance bounds how far MaxChroma may undershoot the true
	// gamut boundary.
	chromaTolerance = 0.1
	// maxBisectIterations caps the bisection; the tolerance is reached
	// well before this for any sRGB color.
	maxBisectIterations = 20
	// chromaSearchStart is the upper bracket for the bisection; sRGB
	// tops out near chroma 134, so the bracket rarely needs to grow.
	chromaSearchStart = 150.0
	chromaSearchCap   = 300.0
	// gamutEpsilon absorbs conversion rounding on the 0..1 channel
	// bounds. go-colorful's XYZ matrices carry seven decimals, so a
	// round trip can land ~1e-7 outside.
	gamutEpsilon = 1e-6
)

// Preserve selects which axis ClampPreserving keeps fixed while pulling
// a color into gamut.
type Preserve string

const (
	PreserveLightness Preserve = "lightness"
	PreserveChroma    Preserve = "chroma"
	PreserveBoth      Preserve = "both"
)

// InGamut reports whether the LCH color converts to sRGB with every
// channel inside [0,1]. Pure black and pure white pass unconditionally
// regardless of hue.
func InGamut(lch LCH) bool {
	if lch.C == 0 && (lch.L == 0 || lch.L == 100) {
		return true
	}
	c := lch.Color()
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}

func inRange(v float64) bool {
	return v >= -gamutEpsilon && v <= 1.0+gamutEpsilon
}

// MaxChroma finds the largest chroma that stays in gamut at the given
// lightness and hue, by bisection. The result is within chromaTolerance
// below the true boundary and is itself guaranteed in gamut.
func MaxChroma(l, h float64) float64 {
	low := 0.0
	high := chromaSearchStart
	for InGamut(LCH{L: l, C: high, H: h}) && high < chromaSearchCap {
		high *= 2
	}
	for i := 0; i < maxBisectIterations && high-low > chromaTolerance; i++ {
		mid := (low + high) / 2
		if InGamut(LCH{L: l, C: mid, H: h}) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}

// Clamp pulls an LCH color into the sRGB gamut, preserving lightness
// and hue. In-gamut input is returned unchanged, making Clamp idempotent.
func Clamp(lch LCH) LCH {
	return ClampWithResult(lch).Color
}

// ClampResult pairs a gamut-corrected color with what the correction
// did, for callers that report on it.
type ClampResult struct {
	Color      LCH
	Corrected  bool
	ChromaLoss float64
}

// ClampWithResult is Clamp plus diagnostics: whether the input needed
// correction and how much chroma the correction cost.
func ClampWithResult(lch LCH) ClampResult {
	if InGamut(lch) {
		return ClampResult{Color: lch}
	}
	maxC := MaxChroma(lch.L, lch.H)
	if lch.C < maxC {
		maxC = lch.C
	}
	return ClampResult{
		Color:      LCH{L: lch.L, C: maxC, H: lch.H},
		Corrected:  true,
		ChromaLoss: lch.C - maxC,
	}
}

// ClampPreserving pulls an LCH color into gamut, keeping the requested
// axis fixed:
//
//   - PreserveLightness reduces chroma at fixed L and H (same as Clamp).
//   - PreserveChroma searches nearby lightness values (offsets 1..49,
//     upward first) that admit the requested chroma, falling back to
//     chroma reduction when none exists.
//   - PreserveBoth behaves like PreserveChroma but reports a GamutError
//     when the fallback still leaves a chroma deficit above tolerance.
func ClampPreserving(lch LCH, preserve Preserve) (LCH, error) {
	if InGamut(lch) {
		return lch, nil
	}

	switch preserve {
	case PreserveChroma, PreserveBoth:
		for offset := 1.0; offset < 50.0; offset++ {
			for _, dir := range []float64{1, -1} {
				l := lch.L + offset*dir
				if l < 0 || l > 100 {
					continue
				}
				if cand := (LCH{L: l, C: lch.C, H: lch.H}); InGamut(cand) {
					return cand, nil
				}
			}
		}
		clamped := Clamp(lch)
		if preserve == PreserveBoth && lch.C-clamped.C > chromaTolerance {
			return clamped, &GamutError{L: lch.L, C: lch.C, H: lch.H, MaxChroma: clamped.C}
		}
		return clamped, nil
	default:
		return Clamp(lch), nil
	}
}
