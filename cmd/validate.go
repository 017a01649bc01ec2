package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <theme>",
	Short: "Validate a theme's structure and references",
	Long: `Load a theme and check it end to end: metadata, color classes,
semantic mapping tables and every palette reference they contain.
Resolution runs for each enabled variant, so a dangling B-step or a
class pointing at a missing palette fails the check.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader, _, err := newThemeLoader()
	if err != nil {
		return err
	}
	th, err := loader.Load(args[0])
	if err != nil {
		return err
	}
	if err := th.Validate(); err != nil {
		return err
	}
	fmt.Printf("Theme %q is valid (%d palettes, variants: %v).\n",
		th.Name, len(th.Colors), th.Metadata.Variants.Enabled())
	return nil
}
