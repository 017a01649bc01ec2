package color

import (
	"fmt"
	"math"
)

// Method selects how Interpolate blends between two colors. The seven
// easing methods shape the blend factor and mix in RGB space; hsv and
// lch switch the blending space instead (linear components, circular hue).
type Method string

const (
	MethodLinear      Method = "linear"
	MethodCubic       Method = "cubic"
	MethodExponential Method = "exponential"
	MethodSine        Method = "sine"
	MethodCosine      Method = "cosine"
	MethodHermite     Method = "hermite"
	MethodQuintic     Method = "quintic"
	MethodHSV         Method = "hsv"
	MethodLCH         Method = "lch"
)

// Methods lists every interpolation method in display order.
func Methods() []Method {
	return []Method{
		MethodLinear, MethodCubic, MethodExponential, MethodSine,
		MethodCosine, MethodHermite, MethodQuintic, MethodHSV, MethodLCH,
	}
}

// ParseMethod validates an interpolation method name.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown interpolation method %q", s)
}

// Lerp blends two scalars: a at t=0, b at t=1.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpAngle blends two angles in degrees along the shortest arc.
// The result is normalized to [0, 360).
func LerpAngle(a, b, t float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0 {
		a += 360.0
	}
	b = math.Mod(b, 360.0)
	if b < 0 {
		b += 360.0
	}
	diff := b - a
	if diff > 180.0 {
		diff -= 360.0
	} else if diff < -180.0 {
		diff += 360.0
	}
	r := math.Mod(a+diff*t, 360.0)
	if r < 0 {
		r += 360.0
	}
	return r
}

// ease maps t in [0,1] to [0,1] with f(0)=0 and f(1)=1 for every method.
// Only the seven RGB-space methods carry a curve; hsv and lch blend
// linearly in their own space.
func (m Method) ease(t float64) float64 {
	switch m {
	case MethodCubic:
		return t * t * (3.0 - 2.0*t)
	case MethodExponential:
		return t * t
	case MethodSine, MethodCosine:
		return (1.0 - math.Cos(t*math.Pi)) / 2.0
	case MethodHermite:
		// Basis functions for endpoints 0 and 1: only h2 survives.
		return -2.0*t*t*t + 3.0*t*t
	case MethodQuintic:
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	default:
		return t
	}
}
