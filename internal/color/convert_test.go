package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"uppercase with hash", "#1A2B3C", "#1A2B3C", false},
		{"lowercase with hash", "#aabbcc", "#AABBCC", false},
		{"mixed case", "#Ff00aB", "#FF00AB", false},
		{"no hash", "336699", "#336699", false},
		{"black", "#000000", "#000000", false},
		{"white", "#FFFFFF", "#FFFFFF", false},
		{"empty", "", "", true},
		{"shorthand rejected", "#abc", "", true},
		{"too short", "#12345", "", true},
		{"too long", "#1234567", "", true},
		{"non-hex digits", "#GGGGGG", "", true},
		{"named color", "red", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFormat), "error should match ErrInvalidFormat")
				var fmtErr *InvalidFormatError
				require.True(t, errors.As(err, &fmtErr))
				assert.Equal(t, tt.input, fmtErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Hex(c))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#1A2B3C", "#E74C3C", "#3775A9", "#80FF00"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, Hex(c))
	}
}

func TestToHSV(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		h, s, v float64
	}{
		{"red", "#FF0000", 0, 1, 1},
		{"green", "#00FF00", 120, 1, 1},
		{"blue", "#0000FF", 240, 1, 1},
		{"white", "#FFFFFF", 0, 0, 1},
		{"black", "#000000", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.hex)
			require.NoError(t, err)
			hsv := ToHSV(c)
			assert.InDelta(t, tt.h, hsv.H, 1e-6)
			assert.InDelta(t, tt.s, hsv.S, 1e-6)
			assert.InDelta(t, tt.v, hsv.V, 1e-6)
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, hex := range []string{"#4080C0", "#E74C3C", "#123456", "#FEDCBA"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, ToHSV(c).Hex())
	}
}

func TestToLCH(t *testing.T) {
	white, err := ParseHex("#FFFFFF")
	require.NoError(t, err)
	lch := ToLCH(white)
	assert.InDelta(t, 100, lch.L, 0.01)
	assert.InDelta(t, 0, lch.C, 0.05)

	black, err := ParseHex("#000000")
	require.NoError(t, err)
	lch = ToLCH(black)
	assert.InDelta(t, 0, lch.L, 0.01)
	assert.InDelta(t, 0, lch.C, 0.05)

	// Reference values for sRGB red under D65.
	red, err := ParseHex("#FF0000")
	require.NoError(t, err)
	lch = ToLCH(red)
	assert.InDelta(t, 53.2, lch.L, 0.5)
	assert.InDelta(t, 104.6, lch.C, 1.0)
	assert.InDelta(t, 40.0, lch.H, 1.0)

	// Grays have no meaningful hue and report 0.
	gray, err := ParseHex("#808080")
	require.NoError(t, err)
	lch = ToLCH(gray)
	assert.InDelta(t, 0, lch.C, 0.05)
	assert.Equal(t, 0.0, lch.H)
}

func TestLCHRoundTrip(t *testing.T) {
	for _, hex := range []string{"#336699", "#E74C3C", "#00FF7F", "#808080"} {
		lch, err := ParseHexLCH(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, lch.Hex())
	}
}

func TestParseHexLCHInvalid(t *testing.T) {
	_, err := ParseHexLCH("#xyz123")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		hex  string
		dark bool
	}{
		{"#000000", true},
		{"#0000FF", true},  // blue, L around 32
		{"#FF0000", false}, // red, L around 53
		{"#FFFFFF", false},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.dark, IsDark(c), "IsDark(%s)", tt.hex)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		hex  string
		want Lightness
	}{
		{"#000000", LightnessDark},
		{"#0000FF", LightnessDark},
		{"#808080", LightnessMedium},
		{"#FF0000", LightnessMedium},
		{"#FFFFFF", LightnessLight},
		{"#FFFF00", LightnessLight},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Classify(c), "Classify(%s)", tt.hex)
	}
}

func TestRelativeLuminance(t *testing.T) {
	white, _ := ParseHex("#FFFFFF")
	black, _ := ParseHex("#000000")
	gray, _ := ParseHex("#808080")

	assert.InDelta(t, 1.0, RelativeLuminance(white), 1e-9)
	assert.InDelta(t, 0.0, RelativeLuminance(black), 1e-9)
	assert.InDelta(t, 0.2159, RelativeLuminance(gray), 0.001)
}

func TestContrastRatio(t *testing.T) {
	white, _ := ParseHex("#FFFFFF")
	black, _ := ParseHex("#000000")

	assert.InDelta(t, 21.0, ContrastRatio(white, black), 1e-9)
	// Order must not matter.
	assert.InDelta(t, ContrastRatio(white, black), ContrastRatio(black, white), 1e-12)
	assert.InDelta(t, 1.0, ContrastRatio(white, white), 1e-12)
}
