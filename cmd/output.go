package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"themeweaver/internal/color"
)

// printColors renders a flat color list as plain text, JSON or YAML.
func printColors(colors []string, format string) error {
	switch format {
	case "", "text":
		for _, hex := range colors {
			fmt.Println(hex)
		}
	case "json":
		out, err := json.MarshalIndent(map[string]interface{}{"colors": colors}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(map[string]interface{}{"colors": colors})
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
	return nil
}

// printDistanceStats prints the chromatic spacing summary for a palette.
func printDistanceStats(colors []string) error {
	stats, err := color.AnalyzeChromaticDistances(colors)
	if err != nil {
		return err
	}
	fmt.Printf("\nChromatic distances: avg %.2f, min %.2f, max %.2f, stddev %.2f\n",
		stats.Avg, stats.Min, stats.Max, stats.StdDev)
	fmt.Printf("Spacing: %s", stats.Spacing)
	if !stats.Consistent {
		fmt.Print(" (uneven step sizes)")
	}
	fmt.Println()
	return nil
}

// printUniqueness reports duplicate colors in a generated sequence.
func printUniqueness(colors []string) {
	ok, report := color.ValidateGradientUniqueness(colors)
	if ok {
		fmt.Printf("\nAll %d colors are unique.\n", len(colors))
		return
	}
	fmt.Printf("\n%d of %d colors unique; duplicates: %s\n",
		report.Unique, report.Total, strings.Join(report.Duplicates, ", "))
}

// parseColorList extracts hex colors from CLI arguments or file lines.
// Entries may be bare hex values or name=hex pairs; commas and
// whitespace separate entries.
func parseColorList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, field := range strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		}) {
			if _, after, found := strings.Cut(field, "="); found {
				field = after
			}
			if field == "" {
				continue
			}
			out = append(out, field)
		}
	}
	return out
}
