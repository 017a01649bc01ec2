package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateEndpoints(t *testing.T) {
	const start, end = "#1E90FF", "#FFD700"
	for _, m := range Methods() {
		t.Run(string(m), func(t *testing.T) {
			colors, err := Interpolate(start, end, 5, m)
			require.NoError(t, err)
			require.Len(t, colors, 5)
			assert.Equal(t, start, colors[0], "first color must equal the start")
			assert.Equal(t, end, colors[4], "last color must equal the end")
			for _, c := range colors {
				_, err := ParseHex(c)
				assert.NoError(t, err, "invalid color %q", c)
			}
		})
	}
}

func TestInterpolateArgs(t *testing.T) {
	_, err := Interpolate("#000000", "#FFFFFF", 0, MethodLinear)
	assert.Error(t, err)
	_, err = Interpolate("#000000", "#FFFFFF", -3, MethodLinear)
	assert.Error(t, err)
	_, err = Interpolate("bogus", "#FFFFFF", 4, MethodLinear)
	assert.Error(t, err)
	_, err = Interpolate("#000000", "bogus", 4, MethodLinear)
	assert.Error(t, err)
	_, err = Interpolate("#000000", "#FFFFFF", 2, MethodLinear)
	assert.NoError(t, err)
}

func TestInterpolateSingleStep(t *testing.T) {
	// One step collapses the gradient to the start color alone.
	for _, m := range Methods() {
		colors, err := Interpolate("#C0FFEE", "#120036", 1, m)
		require.NoError(t, err, "method %s", m)
		assert.Equal(t, []string{"#C0FFEE"}, colors, "method %s", m)
	}
}

func TestInterpolateLinearChannels(t *testing.T) {
	colors, err := Interpolate("#000000", "#FFFFFF", 11, MethodLinear)
	require.NoError(t, err)

	// Grayscale stays gray and every channel climbs monotonically.
	var prev uint8
	for i, hex := range colors {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		r, g, b := c.RGB255()
		assert.Equal(t, r, g, "gray drifted at step %d", i)
		assert.Equal(t, g, b, "gray drifted at step %d", i)
		if i > 0 {
			assert.Greater(t, r, prev, "channel not increasing at step %d", i)
		}
		prev = r
	}
}

func TestInterpolateLCHLightnessRamp(t *testing.T) {
	colors, err := Interpolate("#002B36", "#EEE8D5", 16, MethodLCH)
	require.NoError(t, err)
	require.Len(t, colors, 16)
	assert.Equal(t, "#002B36", colors[0])
	assert.Equal(t, "#EEE8D5", colors[15])

	prev := -1.0
	for i, hex := range colors {
		lch, err := ParseHexLCH(hex)
		require.NoError(t, err)
		assert.Greater(t, lch.L, prev, "lightness not strictly increasing at step %d", i)
		prev = lch.L
	}
}

func TestInterpolateHSVHueArc(t *testing.T) {
	// Red to blue the short way crosses magenta, never green.
	colors, err := Interpolate("#FF0000", "#0000FF", 7, MethodHSV)
	require.NoError(t, err)
	for i, hex := range colors {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		h := ToHSV(c).H
		ok := h >= 239 || h <= 1
		assert.True(t, ok, "step %d hue %.1f left the red-magenta-blue arc", i, h)
	}
}

func TestInterpolateDeterministic(t *testing.T) {
	a, err := Interpolate("#123456", "#FEDCBA", 9, MethodQuintic)
	require.NoError(t, err)
	b, err := Interpolate("#123456", "#FEDCBA", 9, MethodQuintic)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInterpolateAnchors(t *testing.T) {
	anchors := []string{"#000000", "#FF0000", "#FFFFFF"}

	colors, err := InterpolateAnchors(anchors, 5, MethodLinear)
	require.NoError(t, err)
	require.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#FF0000", colors[2])
	assert.Equal(t, "#FFFFFF", colors[4])

	// Uneven split: the earlier segment absorbs the extra step.
	colors, err = InterpolateAnchors(anchors, 6, MethodLinear)
	require.NoError(t, err)
	require.Len(t, colors, 6)
	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#FF0000", colors[3])
	assert.Equal(t, "#FFFFFF", colors[5])
}

func TestInterpolateAnchorsArgs(t *testing.T) {
	_, err := InterpolateAnchors([]string{"#000000"}, 5, MethodLinear)
	assert.Error(t, err)
	_, err = InterpolateAnchors([]string{"#000000", "#FFFFFF", "#FF0000"}, 2, MethodLinear)
	assert.Error(t, err)

	// Steps equal to anchor count yields exactly the anchors.
	colors, err := InterpolateAnchors([]string{"#000000", "#808080", "#FFFFFF"}, 3, MethodLinear)
	require.NoError(t, err)
	assert.Equal(t, []string{"#000000", "#808080", "#FFFFFF"}, colors)
}

func BenchmarkInterpolateLCH(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Interpolate("#002B36", "#EEE8D5", 16, MethodLCH); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpolateLinear(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Interpolate("#002B36", "#EEE8D5", 16, MethodLinear); err != nil {
			b.Fatal(err)
		}
	}
}
