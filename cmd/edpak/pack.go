// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"edpak-cli/pkg/edpak"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var packOutput string

var packCmd = &cobra.Command{
	Use:   "pack <directory>",
	Short: "Pack a course directory into an edpak archive",
	Long: `Pack a course directory into an edpak archive.

The directory must contain a manifest.json at its root. The resulting
archive is validated before the command reports success; a directory
that would produce an invalid archive fails the pack.

Examples:
  edpak pack ./my-course
  edpak pack ./my-course -o dist/my-course.edpak`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPack(cmd, args[0])
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "",
		"output archive path (default <directory>.edpak)")
}

func runPack(cmd *cobra.Command, courseDir string) error {
	stdout := cmd.OutOrStdout()

	absDir, err := filepath.Abs(courseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	log.Debug("packing course", "dir", absDir, "output", packOutput)

	outPath, err := edpak.Build(courseDir, packOutput)
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("failed to pack %s: %w", courseDir, err)
	}

	fmt.Fprintf(stdout, "%s Packed %s\n", successIcon, PathStyle.Render(absDir))
	fmt.Fprintf(stdout, "%s Created %s\n", successIcon, PathStyle.Render(outPath))
	return nil
}
