// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"edpak-cli/internal/issue"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Explain common validation failures",
	Long: `Explain common validation failures.

Without arguments, lists the available topics. With a topic argument,
renders a page describing the failure and how to fix it.

Examples:
  edpak explain
  edpak explain not-a-zip
  edpak explain duplicate-module-id`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTopics(cmd)
		}
		return explainTopic(cmd, issue.Topic(args[0]))
	},
}

func listTopics(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()

	fmt.Fprintln(stdout, TitleStyle.Render("Topics"))
	fmt.Fprintln(stdout)
	for _, topic := range issue.Topics() {
		fmt.Fprintf(stdout, "  %s\n", PathStyle.Render(string(topic)))
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SubtitleStyle.Render("Run 'edpak explain <topic>' for details."))
	return nil
}

func explainTopic(cmd *cobra.Command, topic issue.Topic) error {
	iss := issue.Get(topic)
	if iss == nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("unknown topic %q; run 'edpak explain' to list topics", topic)
	}

	rendered, err := iss.Render(glamourStyle())
	if err != nil {
		return fmt.Errorf("failed to render topic %q: %w", topic, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// glamourStyle maps the configured color scheme onto a glamour style name.
func glamourStyle() string {
	switch cfg.UI.ColorScheme {
	case "dark":
		return "dark"
	case "light":
		return "light"
	default:
		return "auto"
	}
}
