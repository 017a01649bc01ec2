package config

// Built-in fallbacks. ThemesDir and BuildDir are relative to the working
// directory unless a config file overrides them with absolute paths.
const (
	DefaultThemesDir    = "themes"
	DefaultBuildDir     = "build"
	DefaultVariant      = "dark"
	DefaultColors       = 12
	DefaultTargetDeltaE = 25
	DefaultMethod       = "lch"
)

// GetDefaultConfig returns the configuration used when no config file
// exists. Every field is populated so callers never see zero values.
func GetDefaultConfig() Config {
	return Config{
		ThemesDir: DefaultThemesDir,
		BuildDir:  DefaultBuildDir,
		Defaults: Defaults{
			Variant:      DefaultVariant,
			Colors:       DefaultColors,
			TargetDeltaE: DefaultTargetDeltaE,
			Method:       DefaultMethod,
		},
	}
}
