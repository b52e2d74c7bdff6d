// SPDX-License-Identifier: MPL-2.0

package main

import cmd "edpak-cli/cmd/edpak"

func main() {
	cmd.Execute()
}
