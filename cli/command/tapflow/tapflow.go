// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the "taasctl tap-flow" commands for managing tap flows, which
// mirror the traffic of a source port into a tap service.

package tapflow

import (
	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/api"
	"github.com/siemens/taasctl/cli"
	"github.com/siemens/taasctl/cli/command"
	"github.com/siemens/taasctl/cli/command/resource"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Directions of the traffic to mirror, as seen from the source port.
var Directions = []string{"IN", "OUT", "BOTH"}

// Descriptor describes the tap flow commands.
var Descriptor = resource.Descriptor{
	Kind:    api.TapFlow,
	Use:     "tap-flow",
	Aliases: []string{"tf"},
	Attributes: taasctl.AttributeSpec{
		{Field: "id", Label: "ID", Visibility: taasctl.ListBoth},
		{Field: "name", Label: "Name", Visibility: taasctl.ListBoth},
		{Field: "status", Label: "Status", Visibility: taasctl.ListBoth},
		{Field: "source_port", Label: "Source Port", Visibility: taasctl.ListBoth},
		{Field: "tap_service_id", Label: "Tap Service", Visibility: taasctl.ListBoth},
		{Field: "direction", Label: "Direction", Visibility: taasctl.ListBoth},
		{Field: "vlan_filter", Label: "VLAN Filter", Visibility: taasctl.ListBoth},
		{Field: "description", Label: "Description", Visibility: taasctl.ListLongOnly},
		{Field: "project_id", Label: "Project", Visibility: taasctl.ListLongOnly},
	},
	Fields: append(resource.CommonFields(api.TapFlow),
		resource.Field{
			Flag:     "port",
			Key:      "source_port",
			Usage:    "Source port whose traffic gets mirrored",
			Required: true,
			Resolve:  api.Port,
		},
		resource.Field{
			Flag:     "tap-service",
			Key:      "tap_service_id",
			Usage:    "Tap service receiving the mirrored traffic",
			Required: true,
			Resolve:  api.TapService,
		},
		resource.Field{
			Flag:      "direction",
			Key:       "direction",
			Usage:     "Direction of the traffic to mirror",
			Required:  true,
			Choices:   Directions,
			Uppercase: true,
		},
		resource.Field{
			Flag:      "vlan-filter",
			Key:       "vlan_filter",
			Usage:     "VLAN IDs to mirror, in the form of a range string, such as \"1-5,9\"",
			Uppercase: true,
		},
	),
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		TapFlowSetupCLI, plugger.WithPlugin("tap-flow"))
	plugger.Group[cli.CommandExamples]().Register(
		func() map[string]string {
			return map[string]string{
				"tap-flow": `# Mirror the incoming and outgoing traffic of port "web-1" into tap service "monitor".
taasctl tap-flow create --name web-1-all --port web-1 --tap-service monitor --direction both

# Mirror only VLANs 10 to 20 of the outgoing traffic.
taasctl tap-flow create --port web-1 --tap-service monitor --direction out --vlan-filter 10-20

# List tap flows as JSON.
taasctl tap-flow list -o json`,
			}
		},
		plugger.WithPlugin("tap-flow"))
}

// TapFlowSetupCLI adds the “tap-flow” command.
func TapFlowSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(resource.NewCommand(Descriptor, command.NewClient))
}
