package config

// Config is the top-level configuration structure for themeweaver.
type Config struct {
	ThemesDir string   `yaml:"themesDir,omitempty"` // Directory containing theme definitions
	BuildDir  string   `yaml:"buildDir,omitempty"`  // Directory exported artifacts are written to
	Defaults  Defaults `yaml:"defaults,omitempty"`
}

// Defaults holds fallback values for generation parameters that the CLI
// flags leave unset.
type Defaults struct {
	Variant      string  `yaml:"variant,omitempty"`      // "dark" or "light"
	Colors       int     `yaml:"colors,omitempty"`       // Palette size for group generation
	TargetDeltaE float64 `yaml:"targetDeltaE,omitempty"` // Perceptual spacing goal between neighbors
	Method       string  `yaml:"method,omitempty"`       // Interpolation method for ramp construction
}
