// SPDX-License-Identifier: MPL-2.0

// Package config handles tool configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/edpak/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/edpak/config.cue on macOS,
// %APPDATA%\edpak\config.cue on Windows). Settings cover UI preferences
// (color scheme, verbose output) and validation behavior (strict content
// requirement, top-level directory allow-list).
//
// Configuration validation is performed against a CUE schema (config_schema.cue)
// to ensure type safety and provide clear error messages for invalid configurations.
package config
