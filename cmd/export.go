package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"themeweaver/internal/exporter"
	"themeweaver/pkg/logging"
)

var (
	exportAll      bool
	exportVariants []string
	exportFormat   string
	exportOutput   string
)

var exportCmd = &cobra.Command{
	Use:   "export [theme]",
	Short: "Export themes as flat color tables",
	Long: `Resolve a theme's semantic mappings per variant and write the flat
results below the build directory, one file per variant.

Pass a theme name to export one theme, or --all for every theme in the
themes directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every theme in the themes directory")
	exportCmd.Flags().StringSliceVar(&exportVariants, "variant", nil, "Variants to export (default: all enabled)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "Output format (yaml or json)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Build directory (overrides config files)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportAll == (len(args) == 1) {
		return errors.New("specify a theme name or --all, not both")
	}
	loader, cfg, err := newThemeLoader()
	if err != nil {
		return err
	}
	format, err := exporter.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	buildDir := cfg.BuildDir
	if exportOutput != "" {
		buildDir = exportOutput
	}
	exp := exporter.New(loader, buildDir)

	if exportAll {
		out, err := exp.ExportAll(format)
		if err != nil {
			return err
		}
		themes := make([]string, 0, len(out))
		for name := range out {
			themes = append(themes, name)
		}
		sort.Strings(themes)
		total := 0
		for _, name := range themes {
			printExported(name, out[name])
			total += len(out[name])
		}
		logging.Info("export", "exported %d files for %d themes", total, len(out))
		fmt.Printf("Exported %d files for %d themes to %s.\n", total, len(out), buildDir)
		return nil
	}

	files, err := exp.ExportTheme(args[0], exportVariants, format)
	if err != nil {
		return fmt.Errorf("failed to export theme %s: %w", args[0], err)
	}
	printExported(args[0], files)
	return nil
}

func printExported(name string, files map[string]string) {
	variants := make([]string, 0, len(files))
	for variant := range files {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	for _, variant := range variants {
		fmt.Printf("%s %s -> %s\n", name, variant, files[variant])
	}
}
