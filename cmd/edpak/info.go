// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"edpak-cli/pkg/edpak"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show course metadata from an edpak archive",
	Long: `Show course metadata from an edpak archive.

The archive is validated first; metadata is only shown for archives whose
manifest could be read. Invalid archives exit with status 1 after printing
their validation errors.

Examples:
  edpak info course.edpak`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd, args[0])
	},
}

func runInfo(cmd *cobra.Command, path string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	result := edpak.ValidateWithOptions(path, edpak.Options{
		RequireContent: cfg.Validation.RequireContent,
		AllowedDirs:    cfg.Validation.AllowedDirs,
	})

	if result.Manifest == nil {
		renderReport(stdout, stderr, result)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}

	m := result.Manifest

	fmt.Fprintln(stdout, TitleStyle.Render("Course Information"))
	fmt.Fprintf(stdout, "%s Path: %s\n", infoIcon, PathStyle.Render(absPath))
	fmt.Fprintln(stdout)

	printField(stdout, "Title", m.Title)
	printField(stdout, "Version", m.Version)
	printField(stdout, "Author", m.Author)
	printField(stdout, "Language", m.Language)
	printField(stdout, "Description", m.Description)

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", TitleStyle.Render("Modules"))
	if len(m.Modules) == 0 {
		fmt.Fprintf(stdout, "  %s\n", SubtitleStyle.Render("(none defined)"))
	} else {
		for i, mod := range m.Modules {
			title := mod.Title
			if title == "" {
				title = SubtitleStyle.Render("(untitled)")
			}
			fmt.Fprintf(stdout, "  %d. %s", i+1, title)
			if mod.ID != "" {
				fmt.Fprintf(stdout, " %s", SubtitleStyle.Render("["+mod.ID+"]"))
			}
			if mod.Content != "" {
				fmt.Fprintf(stdout, " %s", PathStyle.Render(mod.Content))
			}
			fmt.Fprintln(stdout)
		}
	}

	if len(m.Lessons) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "%s: %d\n", TitleStyle.Render("Lessons"), len(m.Lessons))
	}

	if !result.Valid {
		fmt.Fprintln(stdout)
		renderReport(stdout, stderr, result)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

// printField writes a key/value line, showing a muted placeholder for
// empty values.
func printField(w io.Writer, key, value string) {
	if value == "" {
		fmt.Fprintf(w, "%s: %s\n", PathStyle.Render(key), SubtitleStyle.Render("(not set)"))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", PathStyle.Render(key), value)
}
