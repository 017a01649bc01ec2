package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"themeweaver/internal/config"
	"themeweaver/internal/theme"
	"themeweaver/pkg/logging"
)

var (
	rootLogLevel  string
	rootNoColor   bool
	rootThemesDir string

	// Parsed once in the persistent pre-run. The preview command reuses
	// it when it re-initializes logging in TUI mode.
	activeLogLevel logging.LogLevel

	// Build metadata injected by main.
	buildCommit = "none"
	buildDate   = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "themeweaver",
	Short: "Generate, analyze and export perceptually uniform IDE themes",
	Long: `themeweaver builds color systems for IDE themes from a handful of
seed colors: 16-step lightness ramps, golden-angle group and syntax
palettes, semantic mappings and flat exports for editor consumption.

Color math runs in CIE LCh space, so steps that are meant to look
evenly spaced actually are.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors, missing themes)
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(rootLogLevel)
		if err != nil {
			return err
		}
		activeLogLevel = level
		logging.InitForCLI(level, os.Stderr)
		if rootNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return nil
	},
}

// SetVersion sets the version and build metadata for the root command
func SetVersion(version, commit, date string) {
	rootCmd.Version = version // Set cobra's version field as well
	buildCommit = commit
	buildDate = date
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "themeweaver version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored terminal output")
	rootCmd.PersistentFlags().StringVar(&rootThemesDir, "themes-dir", "", "Themes directory (overrides config files)")
}

// loadSettings resolves the layered configuration, letting --themes-dir
// override whatever the config files say.
func loadSettings() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if rootThemesDir != "" {
		cfg.ThemesDir = rootThemesDir
	}
	return cfg, nil
}

// newThemeLoader builds a theme loader for the effective themes directory.
func newThemeLoader() (*theme.Loader, config.Config, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, config.Config{}, err
	}
	return theme.NewLoader(cfg.ThemesDir), cfg, nil
}
