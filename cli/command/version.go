// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		VersionSetupCLI, plugger.WithPlugin("version"))
}

// VersionSetupCLI adds the “version” command. The semantic version is the
// one defined for the main taasctl client package, so there's no separate
// version number for the CLI command. In addition, the version command lists
// the included networking service clients.
func VersionSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version (with integrated networking service clients).",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			semver := taasctl.SemVersion
			for _, pluginsemver := range plugger.Group[cli.SemVer]().Symbols() {
				semver = pluginsemver()
				break
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (networking service clients: %s)\n",
				cmd.Root().Name(),
				semver,
				strings.Join(plugger.Group[cli.NewClient]().Plugins(), ", "))
		},
	})
}
