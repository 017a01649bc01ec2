package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long: `List the themes below the configured themes directory together
with their supported variants.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	loader, cfg, err := newThemeLoader()
	if err != nil {
		return err
	}
	names, err := loader.List()
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}
	if len(names) == 0 {
		fmt.Printf("No themes found in %s.\n", cfg.ThemesDir)
		return nil
	}

	fmt.Printf("Themes in %s:\n", cfg.ThemesDir)
	for _, name := range names {
		meta, err := loader.LoadMetadata(name)
		if err != nil {
			fmt.Printf("  %-24s (unreadable: %v)\n", name, err)
			continue
		}
		variants := strings.Join(meta.Variants.Enabled(), ", ")
		fmt.Printf("  %-24s [%s] %s\n", name, variants, meta.DisplayName)
	}
	return nil
}
