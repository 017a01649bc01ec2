package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeweaver/internal/color"
)

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// decodeResult unpacks the JSON document from a successful tool result.
func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &doc))
	return doc
}

func hexList(t *testing.T, doc map[string]interface{}, key string) []string {
	t.Helper()
	raw, ok := doc[key].([]interface{})
	require.True(t, ok, "missing %s list", key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		require.True(t, ok)
		out = append(out, s)
	}
	return out
}

func TestServerTools(t *testing.T) {
	et := NewEngineTools()
	tools := et.ServerTools()
	require.Len(t, tools, 5)

	names := make(map[string]bool)
	for _, st := range tools {
		names[st.Tool.Name] = true
		assert.NotNil(t, st.Handler)
	}
	assert.True(t, names["generate_palette"])
	assert.True(t, names["interpolate_colors"])
	assert.True(t, names["lightness_gradient"])
	assert.True(t, names["analyze_palette"])
	assert.True(t, names["name_color"])
}

func TestNewServer(t *testing.T) {
	s := New("1.2.3")
	assert.NotNil(t, s)
	assert.NotNil(t, s.mcp)
}

func TestGeneratePaletteDefaults(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleGeneratePalette(context.Background(), toolRequest("generate_palette", map[string]interface{}{}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	assert.Equal(t, "optimal", doc["strategy"])
	assert.Equal(t, "dark", doc["variant"])

	colors := hexList(t, doc, "colors")
	require.Len(t, colors, 12)
	for _, hex := range colors {
		assert.Len(t, hex, 7)
	}
}

func TestGeneratePaletteSyntax(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleGeneratePalette(context.Background(), toolRequest("generate_palette", map[string]interface{}{
		"strategy": "syntax",
		"colors":   float64(16),
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	assert.Equal(t, "syntax", doc["strategy"])
	assert.Len(t, hexList(t, doc, "colors"), 16)
}

func TestGeneratePaletteFromColor(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleGeneratePalette(context.Background(), toolRequest("generate_palette", map[string]interface{}{
		"strategy":   "uniform",
		"variant":    "light",
		"colors":     float64(6),
		"from_color": "#FF0000",
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	assert.Equal(t, "light", doc["variant"])
	assert.Len(t, hexList(t, doc, "colors"), 6)
}

func TestGeneratePaletteOptimalMatchesEngine(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleGeneratePalette(context.Background(), toolRequest("generate_palette", map[string]interface{}{
		"start_hue":      float64(120),
		"colors":         float64(8),
		"target_delta_e": float64(20),
	}))
	require.NoError(t, err)
	doc := decodeResult(t, result)

	want, err := color.GenerateOptimizedColors(color.ThemeDark, 8, 20, 120)
	require.NoError(t, err)
	assert.Equal(t, want, hexList(t, doc, "colors"))
}

func TestGeneratePaletteBadVariant(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleGeneratePalette(context.Background(), toolRequest("generate_palette", map[string]interface{}{
		"variant": "sepia",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestInterpolateColors(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleInterpolateColors(context.Background(), toolRequest("interpolate_colors", map[string]interface{}{
		"start_color": "#000000",
		"end_color":   "#FFFFFF",
		"steps":       float64(5),
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	assert.Equal(t, "linear", doc["method"])
	colors := hexList(t, doc, "colors")
	require.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#FFFFFF", colors[4])
}

func TestInterpolateColorsValidate(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleInterpolateColors(context.Background(), toolRequest("interpolate_colors", map[string]interface{}{
		"start_color": "#123456",
		"end_color":   "#123456",
		"steps":       float64(3),
		"validate":    true,
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	assert.Equal(t, false, doc["unique"])
	assert.Equal(t, float64(1), doc["unique_colors"])
}

func TestInterpolateColorsMissingArg(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleInterpolateColors(context.Background(), toolRequest("interpolate_colors", map[string]interface{}{
		"start_color": "#000000",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestInterpolateColorsBadMethod(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleInterpolateColors(context.Background(), toolRequest("interpolate_colors", map[string]interface{}{
		"start_color": "#000000",
		"end_color":   "#FFFFFF",
		"method":      "spiral",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestLightnessGradient(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleLightnessGradient(context.Background(), toolRequest("lightness_gradient", map[string]interface{}{
		"seed": "#DC143C",
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	steps, ok := doc["steps"].([]interface{})
	require.True(t, ok)
	require.Len(t, steps, 16)

	first, ok := steps[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "B0", first["key"])
	assert.Equal(t, "#000000", first["hex"])

	last, ok := steps[15].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "B150", last["key"])
	assert.Equal(t, "#FFFFFF", last["hex"])

	seedSeen := false
	for _, s := range steps {
		if s.(map[string]interface{})["hex"] == "#DC143C" {
			seedSeen = true
		}
	}
	assert.True(t, seedSeen, "seed color should appear at its natural position")
}

func TestLightnessGradientBadSeed(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleLightnessGradient(context.Background(), toolRequest("lightness_gradient", map[string]interface{}{
		"seed": "crimson",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestAnalyzePalette(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleAnalyzePalette(context.Background(), toolRequest("analyze_palette", map[string]interface{}{
		"colors": "red=#FF0000, #00FF00 #0000FF",
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	colors, ok := doc["colors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, colors, 3)

	distances, ok := doc["distances"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, distances["spacing"])
	assert.Greater(t, distances["avg"], float64(0))
}

func TestAnalyzePaletteFindParameters(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleAnalyzePalette(context.Background(), toolRequest("analyze_palette", map[string]interface{}{
		"colors":          "#268BD2 #2AA198 #859900 #B58900",
		"find_parameters": true,
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	params, ok := doc["best_parameters"].(map[string]interface{})
	require.True(t, ok)
	target := params["target_delta_e"].(float64)
	assert.GreaterOrEqual(t, target, float64(15))
	assert.LessOrEqual(t, target, float64(35))
}

func TestAnalyzePaletteEmpty(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleAnalyzePalette(context.Background(), toolRequest("analyze_palette", map[string]interface{}{
		"colors": " , ",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestNameColor(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleNameColor(context.Background(), toolRequest("name_color", map[string]interface{}{
		"color": "#FF0000",
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	assert.Equal(t, "Red", doc["name"])
	assert.Equal(t, "#FF0000", doc["hex"])
	assert.Equal(t, true, doc["exact"])
}

func TestNameColorCreative(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleNameColor(context.Background(), toolRequest("name_color", map[string]interface{}{
		"color":    "#008080",
		"creative": true,
	}))
	require.NoError(t, err)

	doc := decodeResult(t, result)
	name, ok := doc["palette_name"].(string)
	require.True(t, ok)
	assert.Contains(t, name, "Teal")
}

func TestNameColorInvalid(t *testing.T) {
	et := NewEngineTools()

	result, err := et.HandleNameColor(context.Background(), toolRequest("name_color", map[string]interface{}{
		"color": "#GG0000",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestSplitColorList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"spaces", "#FF0000 #00FF00", []string{"#FF0000", "#00FF00"}},
		{"commas", "#FF0000,#00FF00", []string{"#FF0000", "#00FF00"}},
		{"mixed", "#FF0000, #00FF00\t#0000FF", []string{"#FF0000", "#00FF00", "#0000FF"}},
		{"named entries", "red=#FF0000 green=#00FF00", []string{"#FF0000", "#00FF00"}},
		{"blank", "  ,  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitColorList(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
