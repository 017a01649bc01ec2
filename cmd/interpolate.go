package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"themeweaver/internal/color"
	"themeweaver/internal/naming"
)

var (
	interpolateSteps       int
	interpolateMethod      string
	interpolateFormat      string
	interpolateName        bool
	interpolateSimpleNames bool
	interpolateAnalyze     bool
	interpolateValidate    bool
)

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <start> <end> [steps]",
	Short: "Interpolate a gradient between two colors",
	Long: `Interpolate a gradient of the given length between two colors. The
endpoints are always included and the sequence runs start to end.

Methods: linear, cubic, exponential, sine, cosine, hermite and quintic
blend in RGB with different easing curves; hsv and lch travel through
the respective cylindrical space, taking the short way around the hue
wheel. lch keeps perceived lightness changing evenly and is the method
theme ramps are built with.

The step count may be given as a third argument; the --steps flag wins
when both are present.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runInterpolate,
}

func init() {
	rootCmd.AddCommand(interpolateCmd)

	interpolateCmd.Flags().IntVar(&interpolateSteps, "steps", 10, "Number of colors including both endpoints")
	interpolateCmd.Flags().StringVar(&interpolateMethod, "method", "linear", "Interpolation method")
	interpolateCmd.Flags().StringVar(&interpolateFormat, "format", "text", "Output format (text, json or yaml)")
	interpolateCmd.Flags().BoolVar(&interpolateName, "name", false, "Print a palette name derived from the start color")
	interpolateCmd.Flags().BoolVar(&interpolateSimpleNames, "simple-names", false, "Derive the palette name without an adjective prefix")
	interpolateCmd.Flags().BoolVar(&interpolateAnalyze, "analyze", false, "Append a chromatic distance report")
	interpolateCmd.Flags().BoolVar(&interpolateValidate, "validate", false, "Check the gradient for duplicate colors")
}

func runInterpolate(cmd *cobra.Command, args []string) error {
	steps := interpolateSteps
	if len(args) == 3 && !cmd.Flags().Changed("steps") {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[2])
		}
		steps = n
	}
	if steps < 2 {
		return fmt.Errorf("a gradient needs at least 2 steps, got %d", steps)
	}

	method, err := color.ParseMethod(interpolateMethod)
	if err != nil {
		return err
	}
	colors, err := color.Interpolate(args[0], args[1], steps, method)
	if err != nil {
		return err
	}

	if interpolateName {
		name, err := naming.PaletteName(args[0], !interpolateSimpleNames)
		if err != nil {
			return err
		}
		fmt.Printf("Name: %s\n", name)
	}
	if err := printColors(colors, interpolateFormat); err != nil {
		return err
	}
	if interpolateValidate {
		printUniqueness(colors)
	}
	if interpolateAnalyze {
		return printDistanceStats(colors)
	}
	return nil
}
