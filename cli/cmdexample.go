// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Examples collects all examples for the specified command from the registered
// plugins, in plugin order. The examples of different plugins are separated by
// empty lines, yet there isn't any trailing newline for the overall section.
func Examples(command string) string {
	sections := []string{}
	for _, examples := range plugger.Group[CommandExamples]().Symbols() {
		if text := strings.TrimSpace(examples()[command]); text != "" {
			sections = append(sections, text)
		}
	}
	return strings.Join(sections, "\n\n")
}

// SetExamples fills in the example sections of the direct child commands of
// the specified root command, where examples are available from plugins.
// Examples already set by commands themselves come first.
func SetExamples(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		examples := Examples(cmd.Name())
		if examples == "" {
			continue
		}
		if cmd.Example != "" {
			examples = strings.TrimSpace(cmd.Example) + "\n\n" + examples
		}
		cmd.Example = examples
	}
}
