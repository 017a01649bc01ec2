package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Interpolate produces a gradient of steps colors from start to end,
// inclusive of both. The first element always equals start and the last
// always equals end (normalized to uppercase). A single step yields just
// the start color; steps below 1 are an error.
func Interpolate(startHex, endHex string, steps int, method Method) ([]string, error) {
	if steps < 1 {
		return nil, fmt.Errorf("interpolation needs at least 1 step, got %d", steps)
	}
	start, err := ParseHex(startHex)
	if err != nil {
		return nil, err
	}
	end, err := ParseHex(endHex)
	if err != nil {
		return nil, err
	}

	colors := make([]string, steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		colors[i] = blend(start, end, t, method)
	}
	return colors, nil
}

// InterpolateAnchors runs a piecewise gradient through every anchor in
// order, distributing steps across the segments as evenly as possible
// (earlier segments absorb the remainder). Anchors appear exactly once;
// the output length is exactly steps. Requires at least two anchors and
// steps >= len(anchors).
func InterpolateAnchors(anchors []string, steps int, method Method) ([]string, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("piecewise interpolation needs at least 2 anchors, got %d", len(anchors))
	}
	if steps < len(anchors) {
		return nil, fmt.Errorf("%d steps cannot include all %d anchors", steps, len(anchors))
	}

	segments := len(anchors) - 1
	gaps := steps - 1
	base := gaps / segments
	extra := gaps % segments

	out := make([]string, 0, steps)
	for k := 0; k < segments; k++ {
		segGaps := base
		if k < extra {
			segGaps++
		}
		seg, err := Interpolate(anchors[k], anchors[k+1], segGaps+1, method)
		if err != nil {
			return nil, err
		}
		if k > 0 {
			seg = seg[1:] // shared anchor already emitted
		}
		out = append(out, seg...)
	}
	return out, nil
}

// blend mixes two parsed colors at factor t using the given method.
// LCH blends run through the gamut guard: mixing two in-gamut colors
// can pass through chroma no sRGB color reaches.
func blend(start, end colorful.Color, t float64, method Method) string {
	switch method {
	case MethodHSV:
		sh, eh := ToHSV(start), ToHSV(end)
		return HSV{
			H: LerpAngle(sh.H, eh.H, t),
			S: Lerp(sh.S, eh.S, t),
			V: Lerp(sh.V, eh.V, t),
		}.Hex()
	case MethodLCH:
		sl, el := ToLCH(start), ToLCH(end)
		return Clamp(LCH{
			L: Lerp(sl.L, el.L, t),
			C: Lerp(sl.C, el.C, t),
			H: LerpAngle(sl.H, el.H, t),
		}).Hex()
	default:
		f := method.ease(t)
		sr, sg, sb := start.RGB255()
		er, eg, eb := end.RGB255()
		return fmt.Sprintf("#%02X%02X%02X",
			blendChannel(sr, er, f),
			blendChannel(sg, eg, f),
			blendChannel(sb, eb, f))
	}
}

func blendChannel(a, b uint8, f float64) uint8 {
	v := math.Round(Lerp(float64(a), float64(b), f))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
