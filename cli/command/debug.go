// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// enable debug log output.
var enable bool

func init() {
	plugger.Group[cli.SetupCLI]().Register(DebugSetupCLI, plugger.WithPlugin("debug"))
	plugger.Group[cli.BeforeCommand]().Register(DebugBeforeCommand, plugger.WithPlugin("debug"))
}

// DebugSetupCLI registers the “--debug” CLI flag.
func DebugSetupCLI(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&enable, "debug", "d", false, "Enable debug output, including all requests to the networking service")
}

// DebugBeforeCommand enables debug logging when requested via the “--debug” flag.
func DebugBeforeCommand(cmd *cobra.Command) error {
	if enable {
		log.SetLevel(log.DebugLevel)
		log.Debugf("%s version %s", cmd.Root().Name(), taasctl.SemVersion)
	}
	return nil
}
