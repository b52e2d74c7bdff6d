// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidAllowedDirs is returned when the allowed_dirs list contains a
	// blank or path-like entry.
	ErrInvalidAllowedDirs = errors.New("invalid allowed_dirs entry")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidAllowedDirsError is returned when an allowed_dirs entry is blank
	// or contains a path separator. It wraps ErrInvalidAllowedDirs.
	InvalidAllowedDirsError struct {
		Value string
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// ValidationConfig tunes archive validation behavior.
	ValidationConfig struct {
		// RequireContent makes the module "content" field required
		// (the strict manifest variant).
		RequireContent bool `mapstructure:"require_content"`
		// AllowedDirs is the top-level directory allow-list.
		AllowedDirs []string `mapstructure:"allowed_dirs"`
	}

	// Config is the resolved tool configuration.
	Config struct {
		UI         UIConfig         `mapstructure:"ui"`
		Validation ValidationConfig `mapstructure:"validation"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", string(e.Value))
}

// Unwrap returns ErrInvalidColorScheme for errors.Is compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidAllowedDirsError) Error() string {
	return fmt.Sprintf("invalid allowed_dirs entry %q (must be a bare directory name)", e.Value)
}

// Unwrap returns ErrInvalidAllowedDirs for errors.Is compatibility.
func (e *InvalidAllowedDirsError) Unwrap() error { return ErrInvalidAllowedDirs }

// Validate returns an error if the ColorScheme is not a recognized value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	for _, dir := range c.Validation.AllowedDirs {
		if strings.TrimSpace(dir) == "" || strings.ContainsAny(dir, `/\`) {
			return &InvalidAllowedDirsError{Value: dir}
		}
	}
	return nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Validation: ValidationConfig{
			RequireContent: false,
			AllowedDirs:    []string{"images", "videos", "files"},
		},
	}
}
