// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"edpak-cli/pkg/edpak"
)

// renderReport writes the validation outcome: warnings first (advisory),
// then errors, then the verdict line. Warnings go to stdout, errors and a
// failing verdict to stderr.
func renderReport(stdout, stderr io.Writer, result *edpak.ValidationResult) {
	if len(result.Warnings) > 0 {
		fmt.Fprintf(stdout, "%s %d warning(s):\n", warningIcon, len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(stdout, "  %s %s\n", warningIcon, w)
		}
		fmt.Fprintln(stdout)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(stderr, "%s %d error(s):\n", errorIcon, len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(stderr, "  %s %s\n", errorIcon, e)
		}
		fmt.Fprintln(stderr)
	}

	if result.Valid {
		fmt.Fprintf(stdout, "%s Archive is valid\n", successIcon)
	} else {
		fmt.Fprintf(stderr, "%s Validation failed with %d error(s)\n", errorIcon, len(result.Errors))
	}
}
