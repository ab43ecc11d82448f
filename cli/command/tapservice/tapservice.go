// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the "taasctl tap-service" commands for managing tap services,
// the ports receiving mirrored traffic.

package tapservice

import (
	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
	"github.com/siemens/taasctl/cli"
	"github.com/siemens/taasctl/cli/command"
	"github.com/siemens/taasctl/cli/command/resource"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Descriptor describes the tap service commands.
var Descriptor = resource.Descriptor{
	Kind:    api.TapService,
	Use:     "tap-service",
	Aliases: []string{"ts"},
	Attributes: taasctl.AttributeSpec{
		{Field: "id", Label: "ID", Visibility: taasctl.ListBoth},
		{Field: "name", Label: "Name", Visibility: taasctl.ListBoth},
		{Field: "status", Label: "Status", Visibility: taasctl.ListBoth},
		{Field: "port_id", Label: "Port", Visibility: taasctl.ListBoth},
		{Field: "description", Label: "Description", Visibility: taasctl.ListLongOnly},
		{Field: "project_id", Label: "Project", Visibility: taasctl.ListLongOnly},
	},
	Fields: append(resource.CommonFields(api.TapService),
		resource.Field{
			Flag:     "port",
			Key:      "port_id",
			Usage:    "Port to which the tap service is connected",
			Required: true,
			Resolve:  api.Port,
		},
	),
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		TapServiceSetupCLI, plugger.WithPlugin("tap-service"))
	plugger.Group[cli.CommandExamples]().Register(
		func() map[string]string {
			return map[string]string{
				"tap-service": `# Create a tap service delivering mirrored traffic to the port "sniffer".
taasctl tap-service create --name monitor --port sniffer

# List all tap services, including their descriptions and projects.
taasctl tap-service list --long

# Rename a tap service and then delete it.
taasctl tap-service set monitor --name monitor-old
taasctl tap-service delete monitor-old`,
			}
		},
		plugger.WithPlugin("tap-service"))
}

// TapServiceSetupCLI adds the “tap-service” command.
func TapServiceSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(resource.NewCommand(Descriptor, command.NewClient))
}
