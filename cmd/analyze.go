package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"themeweaver/internal/color"
)

var (
	analyzeFile      string
	analyzePalette   string
	analyzeFind      bool
	analyzeMaxColors int
	analyzeVariant   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [theme|color...]",
	Short: "Analyze the perceptual structure of a palette",
	Long: `Print LCH and HSV coordinates, channel statistics and a chromatic
distance report for a palette.

The palette comes from hex color arguments (bare hexes or name=hex
pairs), from --file with one color per line, or from a theme name, in
which case --palette picks the ramp (default: the Primary class ramp).

--find-parameters additionally searches the optimized generator's
parameter space for the target distance and start hue that reproduce
the palette most closely, then prints the regenerated palette.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Read colors from a file, one per line")
	analyzeCmd.Flags().StringVar(&analyzePalette, "palette", "", "Palette to analyze when a theme name is given")
	analyzeCmd.Flags().BoolVar(&analyzeFind, "find-parameters", false, "Search for generator parameters reproducing the palette")
	analyzeCmd.Flags().IntVar(&analyzeMaxColors, "max-colors", 0, "Cap the palette length during the parameter search")
	analyzeCmd.Flags().StringVar(&analyzeVariant, "theme", "", "Variant for the regenerated palette, dark or light (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	colors, err := analyzeInput(args)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return errors.New("nothing to analyze: pass hex colors, a theme name or --file")
	}

	if err := printPaletteStats(colors); err != nil {
		return err
	}
	if len(colors) >= 2 {
		if err := printDistanceStats(colors); err != nil {
			return err
		}
	}
	if analyzeFind {
		return runParameterSearch(colors)
	}
	return nil
}

// analyzeInput resolves the color list from --file, a theme name or
// plain hex arguments.
func analyzeInput(args []string) ([]string, error) {
	if analyzeFile != "" {
		if len(args) > 0 {
			return nil, errors.New("--file and color arguments are mutually exclusive")
		}
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read color file: %w", err)
		}
		return parseColorList(strings.Split(string(data), "\n")), nil
	}

	if len(args) == 1 {
		loader, _, err := newThemeLoader()
		if err != nil {
			return nil, err
		}
		if loader.Exists(args[0]) {
			return themePaletteColors(args[0])
		}
	}
	if analyzePalette != "" {
		return nil, errors.New("--palette requires a theme name argument")
	}
	return parseColorList(args), nil
}

// themePaletteColors loads one ramp of a theme in step order.
func themePaletteColors(name string) ([]string, error) {
	loader, _, err := newThemeLoader()
	if err != nil {
		return nil, err
	}
	th, err := loader.Load(name)
	if err != nil {
		return nil, err
	}

	paletteName := analyzePalette
	if paletteName == "" {
		if p, ok := th.Mappings.ColorClasses["Primary"]; ok {
			paletteName = p
		} else if names := th.Colors.Palettes(); len(names) > 0 {
			paletteName = names[0]
		}
	}
	ramp, ok := th.Colors[paletteName]
	if !ok {
		return nil, fmt.Errorf("theme %s has no palette %q (have: %s)",
			name, paletteName, strings.Join(th.Colors.Palettes(), ", "))
	}

	fmt.Printf("Analyzing %s / %s\n\n", name, paletteName)
	steps := ramp.Steps()
	colors := make([]string, 0, len(steps))
	for _, step := range steps {
		colors = append(colors, ramp[step])
	}
	return colors, nil
}

func printPaletteStats(colors []string) error {
	stats, err := color.AnalyzePalette(colors)
	if err != nil {
		return err
	}
	fmt.Printf("Palette analysis (%d colors):\n", len(stats.Colors))
	fmt.Println("  idx  hex          L      C      H    hsv")
	for _, pc := range stats.Colors {
		fmt.Printf("  %3d  %s  %5.1f  %5.1f  %5.1f  (%.1f, %.2f, %.2f)\n",
			pc.Index, pc.Hex, pc.LCH.L, pc.LCH.C, pc.LCH.H,
			pc.HSV.H, pc.HSV.S, pc.HSV.V)
	}
	fmt.Printf("\nLightness: min %5.1f, max %5.1f, avg %5.1f\n",
		stats.Lightness.Min, stats.Lightness.Max, stats.Lightness.Avg)
	fmt.Printf("Chroma:    min %5.1f, max %5.1f, avg %5.1f\n",
		stats.Chroma.Min, stats.Chroma.Max, stats.Chroma.Avg)
	fmt.Printf("Hue:       %.1f to %.1f\n", stats.HueMin, stats.HueMax)
	return nil
}

// runParameterSearch finds the generator parameters that best reproduce
// the reference palette and prints the regenerated result.
func runParameterSearch(reference []string) error {
	params, avg, err := color.FindOptimalParameters(reference, analyzeMaxColors)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest parameters: target distance %.0f, start hue %.0f (avg distance to reference %.2f)\n",
		params.TargetDeltaE, params.StartHue, avg)

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	variantName := analyzeVariant
	if variantName == "" {
		variantName = cfg.Defaults.Variant
	}
	variant, err := color.ParseTheme(variantName)
	if err != nil {
		return err
	}

	n := len(reference)
	if analyzeMaxColors > 0 && n > analyzeMaxColors {
		n = analyzeMaxColors
	}
	regenerated, err := color.GenerateOptimizedColors(variant, n, params.TargetDeltaE, params.StartHue)
	if err != nil && !errors.Is(err, color.ErrDistinguishability) {
		return err
	}
	fmt.Println("\nRegenerated palette:")
	for _, hex := range regenerated {
		fmt.Println(hex)
	}
	return nil
}
