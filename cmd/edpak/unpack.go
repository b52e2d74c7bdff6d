// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"edpak-cli/pkg/edpak"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	unpackDest      string
	unpackOverwrite bool
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <file>",
	Short: "Extract an edpak archive into a course directory",
	Long: `Extract an edpak archive into a course directory.

The archive is extracted into a directory named after the archive
(without the .edpak suffix) under the destination directory. Existing
files are never replaced unless --overwrite is set.

Examples:
  edpak unpack course.edpak
  edpak unpack course.edpak -d ./courses --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnpack(cmd, args[0])
	},
}

func init() {
	unpackCmd.Flags().StringVarP(&unpackDest, "dest", "d", "",
		"destination directory (default current directory)")
	unpackCmd.Flags().BoolVar(&unpackOverwrite, "overwrite", false,
		"replace existing files in the destination")
}

func runUnpack(cmd *cobra.Command, archivePath string) error {
	stdout := cmd.OutOrStdout()

	log.Debug("unpacking archive", "path", archivePath, "dest", unpackDest)

	coursePath, err := edpak.Extract(archivePath, edpak.ExtractOptions{
		DestDir:   unpackDest,
		Overwrite: unpackOverwrite,
	})
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("failed to unpack %s: %w", archivePath, err)
	}

	fmt.Fprintf(stdout, "%s Extracted to %s\n", successIcon, PathStyle.Render(coursePath))
	return nil
}
