// Package config provides configuration management for themeweaver.
//
// This package implements a layered configuration system that allows users to
// customize themeweaver's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures themeweaver works out-of-the-box
//
//  2. User Configuration (~/.config/themeweaver/config.yaml)
//     - User-specific settings that apply to all projects
//     - Useful for personal preferences and common overrides
//
//  3. Project Configuration (./.themeweaver/config.yaml)
//     - Project-specific settings in the current directory
//     - Allows teams to share configuration via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following sections:
//
//	themesDir: "themes"      # theme definition directories live here
//	buildDir: "build"        # exported artifacts are written here
//	defaults:
//	  variant: "dark"        # variant used when none is requested
//	  colors: 12             # group palette size
//	  targetDeltaE: 25       # perceptual spacing goal between neighbors
//	  method: "lch"          # interpolation method for ramp construction
//
// All fields are optional; unset fields keep the value from the previous
// layer. Relative themesDir/buildDir paths resolve against the working
// directory at load time.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loader := theme.NewLoader(cfg.ThemesDir)
package config
