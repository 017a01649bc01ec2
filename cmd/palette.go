package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"themeweaver/internal/color"
	"themeweaver/pkg/logging"
)

var (
	paletteStrategy     string
	paletteVariant      string
	paletteColors       int
	paletteTargetDeltaE float64
	paletteStartHue     float64
	paletteFromColor    string
	paletteFormat       string
	paletteAnalyze      bool
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate a standalone color palette",
	Long: `Generate a palette on stdout without writing a theme.

Strategies:
  optimal     iterative hue spacing toward a target perceptual distance
  perceptual  fixed large hue steps tuned for distinguishability
  uniform     even spacing around the hue wheel
  syntax      golden-angle palette seeded from one color

The dark variant aims brighter colors than the light variant so both
read well against their backgrounds. --from-color anchors the start hue
(or, for syntax, the whole palette) at a given color.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVar(&paletteStrategy, "strategy", "optimal", "Generation strategy (optimal, perceptual, uniform or syntax)")
	paletteCmd.Flags().StringVar(&paletteVariant, "theme", "", "Variant to target, dark or light (default from config)")
	paletteCmd.Flags().IntVar(&paletteColors, "colors", 0, "Number of colors (default from config)")
	paletteCmd.Flags().Float64Var(&paletteTargetDeltaE, "target-delta-e", 0, "Perceptual distance goal between neighbors (default from config)")
	paletteCmd.Flags().Float64Var(&paletteStartHue, "start-hue", color.AutoHue, "Start hue in degrees (default: variant-specific)")
	paletteCmd.Flags().StringVar(&paletteFromColor, "from-color", "", "Color whose hue anchors the palette")
	paletteCmd.Flags().StringVar(&paletteFormat, "format", "text", "Output format (text, json or yaml)")
	paletteCmd.Flags().BoolVar(&paletteAnalyze, "analyze", false, "Append a chromatic distance report")
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	variantName := paletteVariant
	if variantName == "" {
		variantName = cfg.Defaults.Variant
	}
	variant, err := color.ParseTheme(variantName)
	if err != nil {
		return err
	}

	n := paletteColors
	if n <= 0 {
		n = cfg.Defaults.Colors
	}
	target := paletteTargetDeltaE
	if target <= 0 {
		target = cfg.Defaults.TargetDeltaE
	}
	startHue := paletteStartHue
	if paletteFromColor != "" && paletteStrategy != "syntax" {
		c, err := color.ParseHex(paletteFromColor)
		if err != nil {
			return fmt.Errorf("invalid --from-color: %w", err)
		}
		startHue = color.ToLCH(c).H
	}

	var colors []string
	switch paletteStrategy {
	case "optimal":
		generated, err := color.GenerateOptimizedColors(variant, n, target, startHue)
		if err != nil {
			if !errors.Is(err, color.ErrDistinguishability) {
				return err
			}
			// Palette still usable, just tighter than requested.
			logging.Warn("palette", "%v", err)
		}
		colors = generated
	case "perceptual":
		generated, err := color.GeneratePerceptualPalette(variant, n, startHue)
		if err != nil {
			return err
		}
		colors = generated
	case "uniform":
		generated, err := color.GenerateUniformPalette(variant, n)
		if err != nil {
			return err
		}
		colors = generated
	case "syntax":
		seed := paletteFromColor
		if seed == "" {
			seed = color.DefaultSyntaxSeed
		}
		generated, err := color.GenerateSyntaxPalette(seed, n)
		if err != nil {
			return err
		}
		colors = generated
	default:
		return fmt.Errorf("unknown palette strategy %q (want optimal, perceptual, uniform or syntax)", paletteStrategy)
	}

	if err := printColors(colors, paletteFormat); err != nil {
		return err
	}
	if paletteAnalyze {
		return printDistanceStats(colors)
	}
	return nil
}
