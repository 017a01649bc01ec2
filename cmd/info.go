package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"themeweaver/internal/naming"
	"themeweaver/internal/theme"
)

var infoCmd = &cobra.Command{
	Use:   "info <theme>",
	Short: "Show theme metadata and palette summary",
	Long: `Show a theme's metadata, its palettes with step counts and the
nearest reference name of each palette's midpoint color, and the
color class table linking semantic roles to palettes.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	loader, _, err := newThemeLoader()
	if err != nil {
		return err
	}
	th, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	meta := th.Metadata
	fmt.Printf("Theme:       %s\n", meta.Name)
	fmt.Printf("Display:     %s\n", meta.DisplayName)
	if meta.Description != "" {
		fmt.Printf("Description: %s\n", meta.Description)
	}
	if meta.Author != "" {
		fmt.Printf("Author:      %s\n", meta.Author)
	}
	fmt.Printf("Version:     %s\n", meta.Version)
	fmt.Printf("License:     %s\n", meta.License)
	if len(meta.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(meta.Tags, ", "))
	}
	fmt.Printf("Variants:    %s\n", strings.Join(meta.Variants.Enabled(), ", "))

	fmt.Println()
	fmt.Println("Palettes:")
	for _, name := range th.Colors.Palettes() {
		ramp := th.Colors[name]
		steps := ramp.Steps()
		line := fmt.Sprintf("  %-24s %2d steps", name, len(steps))
		if mid := midpointHex(ramp, steps); mid != "" {
			if m, err := naming.Nearest(mid); err == nil {
				line += fmt.Sprintf("   %s ~ %s", mid, m.Name)
			}
		}
		fmt.Println(line)
	}

	if classes := th.Mappings.ColorClasses; len(classes) > 0 {
		names := make([]string, 0, len(classes))
		for class := range classes {
			names = append(names, class)
		}
		sort.Strings(names)
		fmt.Println()
		fmt.Println("Color classes:")
		for _, class := range names {
			fmt.Printf("  %-12s %s\n", class, classes[class])
		}
	}
	return nil
}

// midpointHex picks the middle step of an ordered ramp. For the 16-step
// lightness ramps this lands in the saturated middle rather than on the
// black or white endpoint.
func midpointHex(ramp theme.Ramp, steps []string) string {
	if len(steps) == 0 {
		return ""
	}
	return ramp[steps[len(steps)/2]]
}
