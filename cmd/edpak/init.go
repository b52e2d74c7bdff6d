// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"edpak-cli/pkg/edpak"

	"github.com/spf13/cobra"
)

var (
	initTitle  string
	initAuthor string
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new course directory",
	Long: `Scaffold a new course directory.

Creates <name>/ with a minimal manifest.json and the standard asset
directories (images/, videos/, files/). The result packs into a valid
archive as-is; fill in modules as the course grows.

Examples:
  edpak init my-course
  edpak init my-course --title "My Course" --author "Jane Doe"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, args[0])
	},
}

func init() {
	initCmd.Flags().StringVar(&initTitle, "title", "", "course title (default the directory name)")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "course author")
}

func runInit(cmd *cobra.Command, name string) error {
	stdout := cmd.OutOrStdout()

	coursePath, err := edpak.Scaffold(edpak.ScaffoldOptions{
		Name:   name,
		Title:  initTitle,
		Author: initAuthor,
	})
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("failed to scaffold course: %w", err)
	}

	fmt.Fprintf(stdout, "%s Created course at %s\n", successIcon, PathStyle.Render(coursePath))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s Edit %s, then run: edpak pack %s\n",
		infoIcon, PathStyle.Render("manifest.json"), name)
	return nil
}
