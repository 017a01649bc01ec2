package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"themeweaver/internal/color"
	"themeweaver/internal/theme"
	"themeweaver/pkg/logging"
)

var (
	generatePrimary      string
	generateSecondary    string
	generateErrorColor   string
	generateSuccess      string
	generateWarning      string
	generateGroup        string
	generateSyntaxSeed   string
	generateSyntaxColors []string
	generateDisplayName  string
	generateDescription  string
	generateAuthor       string
	generateTags         []string
	generateSimpleNames  bool
	generateOverwrite    bool
	generateAnalyze      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate a complete theme from seed colors",
	Long: `Generate a theme directory from six seed colors: each seed expands
into a 16-step lightness ramp, the group seed additionally drives the
golden-angle dark and light group palettes, and a 16-color syntax
palette is derived from the syntax seed (or --syntax-colors verbatim).

Palette names are derived from the nearest reference color name with a
random adjective prefix; --simple-names drops the adjective.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generatePrimary, "primary", "", "Primary seed color (#RRGGBB)")
	generateCmd.Flags().StringVar(&generateSecondary, "secondary", "", "Secondary seed color (#RRGGBB)")
	generateCmd.Flags().StringVar(&generateErrorColor, "error", "", "Error seed color (#RRGGBB)")
	generateCmd.Flags().StringVar(&generateSuccess, "success", "", "Success seed color (#RRGGBB)")
	generateCmd.Flags().StringVar(&generateWarning, "warning", "", "Warning seed color (#RRGGBB)")
	generateCmd.Flags().StringVar(&generateGroup, "group", "", "Group seed color driving the group palettes (#RRGGBB)")
	generateCmd.Flags().StringVar(&generateSyntaxSeed, "syntax-seed", "", "Seed color for the syntax palette")
	generateCmd.Flags().StringSliceVar(&generateSyntaxColors, "syntax-colors", nil, "Explicit 16-color syntax palette (overrides --syntax-seed)")
	generateCmd.Flags().StringVar(&generateDisplayName, "display-name", "", "Display name (default: title-cased theme name)")
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "Theme description")
	generateCmd.Flags().StringVar(&generateAuthor, "author", "ThemeWeaver", "Theme author")
	generateCmd.Flags().StringSliceVar(&generateTags, "tags", nil, "Metadata tags")
	generateCmd.Flags().BoolVar(&generateSimpleNames, "simple-names", false, "Name palettes without adjective prefixes")
	generateCmd.Flags().BoolVar(&generateOverwrite, "overwrite", false, "Replace the theme directory if it exists")
	generateCmd.Flags().BoolVar(&generateAnalyze, "analyze", false, "Print a spacing analysis of the group palettes")

	for _, name := range []string{"primary", "secondary", "error", "success", "warning", "group"} {
		_ = generateCmd.MarkFlagRequired(name)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	gen := theme.NewGenerator(cfg.ThemesDir)
	th, err := gen.GenerateFromColors(theme.Request{
		Name:         args[0],
		DisplayName:  generateDisplayName,
		Description:  generateDescription,
		Author:       generateAuthor,
		Tags:         generateTags,
		Primary:      generatePrimary,
		Secondary:    generateSecondary,
		Error:        generateErrorColor,
		Success:      generateSuccess,
		Warning:      generateWarning,
		Group:        generateGroup,
		SimpleNames:  generateSimpleNames,
		SyntaxSeed:   generateSyntaxSeed,
		SyntaxColors: generateSyntaxColors,
	})
	if err != nil {
		return fmt.Errorf("failed to generate theme %s: %w", args[0], err)
	}

	dir, err := gen.Write(th, generateOverwrite)
	if err != nil {
		return err
	}
	logging.Info("generate", "wrote theme %s with %d palettes", th.Name, len(th.Colors))
	fmt.Printf("Generated theme %q in %s\n", th.Name, dir)
	fmt.Printf("Palettes: %s\n", strings.Join(th.Colors.Palettes(), ", "))

	if generateAnalyze {
		return printGroupAnalysis(th)
	}
	return nil
}

// printGroupAnalysis reports the perceptual spacing of the two group
// palettes of a generated theme.
func printGroupAnalysis(th *theme.Theme) error {
	for _, class := range []string{"GroupDark", "GroupLight"} {
		palette, ok := th.Mappings.ColorClasses[class]
		if !ok {
			continue
		}
		ramp := th.Colors[palette]
		steps := ramp.Steps()
		colors := make([]string, 0, len(steps))
		for _, step := range steps {
			colors = append(colors, ramp[step])
		}
		stats, err := color.AnalyzeChromaticDistances(colors)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s (%s): avg dE %.2f, min %.2f, max %.2f, spacing %s\n",
			class, palette, stats.Avg, stats.Min, stats.Max, stats.Spacing)
	}
	return nil
}
