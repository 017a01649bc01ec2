package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"themeweaver/internal/tui/preview"
	"themeweaver/pkg/logging"
)

var previewVariant string

var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Browse a theme's palettes in the terminal",
	Long: `Open an interactive swatch browser for a theme: ramps on the left,
the selected ramp's swatches on the right with LCH details.

Keys: j/k or the arrow keys move between ramps, h/l between steps,
'c' copies the selected hex to the clipboard, 'd' toggles the dark and
light variants, '?' expands help and 'q' quits.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewVariant, "variant", "", "Variant to open with, dark or light (default from config)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	loader, cfg, err := newThemeLoader()
	if err != nil {
		return err
	}
	th, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	variant := previewVariant
	if variant == "" {
		variant = cfg.Defaults.Variant
	}
	if !th.Metadata.Variants.Supports(variant) {
		enabled := th.Metadata.Variants.Enabled()
		if len(enabled) == 0 {
			return fmt.Errorf("theme %s enables no variants", args[0])
		}
		variant = enabled[0]
	}

	// Reroute logs through the TUI so they surface in the status bar
	// instead of corrupting the screen.
	logCh := logging.InitForTUI(activeLogLevel)
	defer logging.CloseTUIChannel()

	p := preview.NewProgram(th, variant, logCh)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("previewer failed: %w", err)
	}
	return nil
}
