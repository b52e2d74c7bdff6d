// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"edpak-cli/pkg/edpak"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var requireContent bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an edpak archive",
	Long: `Validate an edpak archive against the manifest and layout rules.

Checks run in a fixed order: file extension, ZIP container integrity,
top-level directory layout, manifest presence and JSON syntax, required
manifest fields, module definitions, and (when the manifest carries a
lessons array) course structure.

Errors make the archive invalid and the command exits with status 1.
Warnings flag best-practice gaps (missing descriptions, missing quiz or
cover lessons) and never affect the exit status.

Examples:
  edpak validate course.edpak
  edpak validate --require-content course.edpak`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	validateCmd.Flags().BoolVar(&requireContent, "require-content", false,
		"require every module to declare a content file")
}

func runValidate(cmd *cobra.Command, path string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	opts := edpak.Options{
		RequireContent: requireContent || cfg.Validation.RequireContent,
		AllowedDirs:    cfg.Validation.AllowedDirs,
	}

	log.Debug("validating archive", "path", absPath, "require_content", opts.RequireContent)

	fmt.Fprintln(stdout, TitleStyle.Render("Archive Validation"))
	fmt.Fprintf(stdout, "%s Path: %s\n", infoIcon, PathStyle.Render(absPath))
	fmt.Fprintln(stdout)

	result := edpak.ValidateWithOptions(path, opts)
	log.Debug("validation finished",
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
	)

	renderReport(stdout, stderr, result)

	if !result.Valid {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}
