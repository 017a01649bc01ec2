package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"themeweaver/internal/color"
	"themeweaver/internal/naming"
)

// EngineTools provides MCP tools backed by the color engine.
type EngineTools struct{}

// NewEngineTools creates the engine tool set.
func NewEngineTools() *EngineTools {
	return &EngineTools{}
}

// ServerTools returns every engine tool paired with its handler.
func (et *EngineTools) ServerTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: et.generatePaletteTool(), Handler: et.HandleGeneratePalette},
		{Tool: et.interpolateColorsTool(), Handler: et.HandleInterpolateColors},
		{Tool: et.lightnessGradientTool(), Handler: et.HandleLightnessGradient},
		{Tool: et.analyzePaletteTool(), Handler: et.HandleAnalyzePalette},
		{Tool: et.nameColorTool(), Handler: et.HandleNameColor},
	}
}

func (et *EngineTools) generatePaletteTool() mcp.Tool {
	return mcp.NewTool("generate_palette",
		mcp.WithDescription("Generate a palette of perceptually distinct colors"),
		mcp.WithString("strategy",
			mcp.Description("Generation strategy (default: optimal)"),
			mcp.Enum("optimal", "perceptual", "uniform", "syntax"),
		),
		mcp.WithString("variant",
			mcp.Description("Theme variant the palette targets (default: dark)"),
			mcp.Enum("dark", "light"),
		),
		mcp.WithNumber("colors",
			mcp.Description("Number of colors to generate (default: 12)"),
		),
		mcp.WithNumber("target_delta_e",
			mcp.Description("Perceptual distance goal between neighbors, optimal strategy only (default: 25)"),
		),
		mcp.WithNumber("start_hue",
			mcp.Description("Starting hue in degrees 0-360 (default: variant-specific)"),
		),
		mcp.WithString("from_color",
			mcp.Description("Hex color whose hue anchors the palette; syntax strategy uses it as the seed"),
		),
	)
}

func (et *EngineTools) interpolateColorsTool() mcp.Tool {
	return mcp.NewTool("interpolate_colors",
		mcp.WithDescription("Interpolate between two colors"),
		mcp.WithString("start_color",
			mcp.Required(),
			mcp.Description("Starting hex color, e.g. #FF0000"),
		),
		mcp.WithString("end_color",
			mcp.Required(),
			mcp.Description("Ending hex color, e.g. #0000FF"),
		),
		mcp.WithNumber("steps",
			mcp.Description("Number of colors including both endpoints (default: 8)"),
		),
		mcp.WithString("method",
			mcp.Description("Interpolation method (default: linear)"),
			mcp.Enum("linear", "cubic", "exponential", "sine", "cosine", "hermite", "quintic", "hsv", "lch"),
		),
		mcp.WithBoolean("validate",
			mcp.Description("Report duplicate colors in the result"),
			mcp.DefaultBool(false),
		),
	)
}

func (et *EngineTools) lightnessGradientTool() mcp.Tool {
	return mcp.NewTool("lightness_gradient",
		mcp.WithDescription("Build a 16-step black-to-white lightness ramp through a seed color"),
		mcp.WithString("seed",
			mcp.Required(),
			mcp.Description("Hex seed color placed at its natural lightness position"),
		),
	)
}

func (et *EngineTools) analyzePaletteTool() mcp.Tool {
	return mcp.NewTool("analyze_palette",
		mcp.WithDescription("Analyze a palette's LCH statistics and perceptual spacing"),
		mcp.WithString("colors",
			mcp.Required(),
			mcp.Description("Hex colors separated by spaces or commas; name=hex entries are accepted"),
		),
		mcp.WithBoolean("find_parameters",
			mcp.Description("Search for generator parameters that approximate the palette"),
			mcp.DefaultBool(false),
		),
		mcp.WithNumber("max_colors",
			mcp.Description("Cap the colors generated per parameter candidate (default: palette length)"),
		),
	)
}

func (et *EngineTools) nameColorTool() mcp.Tool {
	return mcp.NewTool("name_color",
		mcp.WithDescription("Name a color from the built-in reference table"),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Hex color to name"),
		),
		mcp.WithBoolean("creative",
			mcp.Description("Prefix the name with a random adjective, palette-name style"),
			mcp.DefaultBool(false),
		),
	)
}

// HandleGeneratePalette handles the generate_palette tool call.
func (et *EngineTools) HandleGeneratePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	strategy := req.GetString("strategy", "optimal")
	variant := req.GetString("variant", "dark")
	n := req.GetInt("colors", 12)
	target := req.GetFloat("target_delta_e", 25)
	startHue := req.GetFloat("start_hue", color.AutoHue)
	fromColor := req.GetString("from_color", "")

	theme, err := color.ParseTheme(variant)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if fromColor != "" && strategy != "syntax" {
		c, err := color.ParseHex(fromColor)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("from_color: %v", err)), nil
		}
		startHue = color.ToLCH(c).H
	}

	var colors []string
	var warning string
	switch strategy {
	case "optimal":
		colors, err = color.GenerateOptimizedColors(theme, n, target, startHue)
		if errors.Is(err, color.ErrDistinguishability) {
			// The palette is still usable, surface the weak pair instead
			// of failing the call.
			warning = err.Error()
			err = nil
		}
	case "perceptual":
		colors, err = color.GeneratePerceptualPalette(theme, n, startHue)
	case "uniform":
		colors, err = color.GenerateUniformPalette(theme, n)
	case "syntax":
		colors, err = color.GenerateSyntaxPalette(fromColor, n)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown strategy: %s", strategy)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Generation failed: %v", err)), nil
	}

	result := map[string]interface{}{
		"strategy": strategy,
		"variant":  variant,
		"colors":   colors,
	}
	if warning != "" {
		result["warning"] = warning
	}
	return jsonResult(result)
}

// HandleInterpolateColors handles the interpolate_colors tool call.
func (et *EngineTools) HandleInterpolateColors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startColor, err := req.RequireString("start_color")
	if err != nil {
		return mcp.NewToolResultError("start_color is required"), nil
	}
	endColor, err := req.RequireString("end_color")
	if err != nil {
		return mcp.NewToolResultError("end_color is required"), nil
	}
	steps := req.GetInt("steps", 8)

	method, err := color.ParseMethod(req.GetString("method", "linear"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	colors, err := color.Interpolate(startColor, endColor, steps, method)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Interpolation failed: %v", err)), nil
	}

	result := map[string]interface{}{
		"method": string(method),
		"steps":  len(colors),
		"colors": colors,
	}

	if req.GetBool("validate", false) {
		unique, report := color.ValidateGradientUniqueness(colors)
		result["unique"] = unique
		if report != nil {
			result["unique_colors"] = report.Unique
			result["duplicates"] = report.Duplicates
		}
	}
	return jsonResult(result)
}

// HandleLightnessGradient handles the lightness_gradient tool call.
func (et *EngineTools) HandleLightnessGradient(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed, err := req.RequireString("seed")
	if err != nil {
		return mcp.NewToolResultError("seed is required"), nil
	}

	gradient, err := color.GenerateLightnessGradient(seed)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Gradient failed: %v", err)), nil
	}

	steps := make([]map[string]string, 0, len(gradient))
	for i, hex := range gradient {
		steps = append(steps, map[string]string{
			"key": fmt.Sprintf("B%d", i*10),
			"hex": hex,
		})
	}
	return jsonResult(map[string]interface{}{
		"seed":  seed,
		"steps": steps,
	})
}

// HandleAnalyzePalette handles the analyze_palette tool call.
func (et *EngineTools) HandleAnalyzePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("colors")
	if err != nil {
		return mcp.NewToolResultError("colors is required"), nil
	}
	colors := splitColorList(raw)
	if len(colors) == 0 {
		return mcp.NewToolResultError("no colors given"), nil
	}

	stats, err := color.AnalyzePalette(colors)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Analysis failed: %v", err)), nil
	}

	entries := make([]map[string]interface{}, 0, len(stats.Colors))
	for _, pc := range stats.Colors {
		entries = append(entries, map[string]interface{}{
			"index": pc.Index,
			"hex":   pc.Hex,
			"lch":   map[string]float64{"l": pc.LCH.L, "c": pc.LCH.C, "h": pc.LCH.H},
		})
	}
	result := map[string]interface{}{
		"colors": entries,
		"lightness": map[string]float64{
			"min": stats.Lightness.Min, "max": stats.Lightness.Max, "avg": stats.Lightness.Avg,
		},
		"chroma": map[string]float64{
			"min": stats.Chroma.Min, "max": stats.Chroma.Max, "avg": stats.Chroma.Avg,
		},
		"hue_range": map[string]float64{"min": stats.HueMin, "max": stats.HueMax},
	}

	if len(colors) >= 2 {
		distances, err := color.AnalyzeChromaticDistances(colors)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Analysis failed: %v", err)), nil
		}
		result["distances"] = map[string]interface{}{
			"avg":        distances.Avg,
			"min":        distances.Min,
			"max":        distances.Max,
			"std_dev":    distances.StdDev,
			"spacing":    string(distances.Spacing),
			"consistent": distances.Consistent,
		}
	}

	if req.GetBool("find_parameters", false) {
		params, distance, err := color.FindOptimalParameters(colors, req.GetInt("max_colors", 0))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Parameter search failed: %v", err)), nil
		}
		result["best_parameters"] = map[string]interface{}{
			"target_delta_e":   params.TargetDeltaE,
			"start_hue":        params.StartHue,
			"average_distance": distance,
		}
	}
	return jsonResult(result)
}

// HandleNameColor handles the name_color tool call.
func (et *EngineTools) HandleNameColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color is required"), nil
	}

	match, err := naming.Nearest(hex)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Naming failed: %v", err)), nil
	}

	result := map[string]interface{}{
		"input":   hex,
		"name":    match.Name,
		"hex":     match.Hex,
		"delta_e": match.DeltaE,
		"exact":   match.DeltaE < 0.5,
	}

	if req.GetBool("creative", false) {
		paletteName, err := naming.PaletteName(hex, true)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Naming failed: %v", err)), nil
		}
		result["palette_name"] = paletteName
	}
	return jsonResult(result)
}

// splitColorList splits a free-form color list on whitespace and commas.
// An entry of the form name=hex keeps only the hex part.
func splitColorList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	colors := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, hex, found := strings.Cut(f, "="); found {
			f = hex
		}
		if f != "" {
			colors = append(colors, f)
		}
	}
	return colors
}

func jsonResult(result map[string]interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
