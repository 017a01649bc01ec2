package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"themeweaver/internal/color"
)

var (
	gradientFormat   string
	gradientValidate bool
)

var gradientCmd = &cobra.Command{
	Use:   "gradient <seed>",
	Short: "Expand a seed color into its 16-step lightness ramp",
	Long: `Expand one seed color into the 16-step lightness ramp used by theme
palettes: B0 is black, B150 is white, and the steps in between keep the
seed's hue while lightness rises in perceptually even increments.`,
	Args: cobra.ExactArgs(1),
	RunE: runGradient,
}

func init() {
	rootCmd.AddCommand(gradientCmd)

	gradientCmd.Flags().StringVar(&gradientFormat, "format", "text", "Output format (text, json or yaml)")
	gradientCmd.Flags().BoolVar(&gradientValidate, "validate", false, "Check the ramp for duplicate colors")
}

func runGradient(cmd *cobra.Command, args []string) error {
	grad, err := color.GenerateLightnessGradient(args[0])
	if err != nil {
		return err
	}
	colors := grad[:]

	switch gradientFormat {
	case "", "text":
		for i, hex := range colors {
			fmt.Printf("B%-4d %s\n", i*10, hex)
		}
	case "json", "yaml":
		steps := make([]map[string]string, 0, len(colors))
		for i, hex := range colors {
			steps = append(steps, map[string]string{
				"key": fmt.Sprintf("B%d", i*10),
				"hex": hex,
			})
		}
		if gradientFormat == "json" {
			out, err := json.MarshalIndent(steps, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		} else {
			out, err := yaml.Marshal(steps)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		}
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", gradientFormat)
	}

	if gradientValidate {
		printUniqueness(colors)
	}
	return nil
}
