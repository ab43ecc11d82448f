// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the client plugin for networking services reachable via their REST
// API endpoint, configured by CLI flags, environment variables, and the
// configuration file, in this order of precedence.

package endpoint

import (
	"os"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/cli"
	"github.com/siemens/taasctl/cli/command"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Environment variables consulted when the corresponding CLI flags are
// absent.
const (
	EnvConfig   = "TAASCTL_CONFIG"
	EnvEndpoint = "TAASCTL_ENDPOINT"
	EnvToken    = "TAASCTL_TOKEN"
)

// Endpoint specifies the [http://|https://]host[:port][/path] of the
// networking service REST API.
var Endpoint string

// Insecure skips invalid server certificates.
var Insecure bool

// ConfigPath specifies the configuration file to use.
var ConfigPath string

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		EndpointSetupCLI, plugger.WithPlugin("endpoint"))
	plugger.Group[cli.NewClient]().Register(
		NewEndpointClient, plugger.WithPlugin("endpoint"))
	plugger.Group[cli.CommandExamples]().Register(
		func() map[string]string {
			return map[string]string{
				"tap-service": `# List the tap services of a specific networking service.
taasctl --endpoint https://controller:9696 --token "$OS_TOKEN" tap-service list`,
				"tap-flow": `# Show a tap flow, using the settings from a specific configuration file.
taasctl --config ./lab.yaml tap-flow show web-1-all`,
			}
		},
		plugger.WithPlugin("endpoint"), plugger.WithPlacement(">"))
}

// EndpointSetupCLI registers the “--endpoint”, “--insecure”, and “--config”
// CLI flags.
func EndpointSetupCLI(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&Endpoint, "endpoint", "",
		`[http://|https://]hostname[:port][/path] of the networking service API;
defaults to $`+EnvEndpoint+` or the configured endpoint`)
	command.Annotate(pf, "endpoint", command.MutualFlagGroupAnnotation, command.ClientGroup)
	pf.BoolVarP(&Insecure, "insecure", "k", false,
		"Danger: skip invalid server certificates when connecting to the networking service")
	pf.StringVar(&ConfigPath, "config", "",
		`configuration file; defaults to $`+EnvConfig+` or `+taasctl.DefaultConfigPath())
}

// NewEndpointClient returns a REST client for the networking service as
// configured, or nil if there's no endpoint configured at all.
func NewEndpointClient() (taasctl.ResourceClient, error) {
	path, mustExist := ConfigPath, true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, mustExist = taasctl.DefaultConfigPath(), false
	}
	cfg, err := taasctl.LoadConfig(path, mustExist)
	if err != nil {
		return nil, err
	}
	if env := os.Getenv(EnvEndpoint); env != "" {
		cfg.Endpoint = env
	}
	if env := os.Getenv(EnvToken); env != "" {
		cfg.Token = env
	}
	if Endpoint != "" {
		cfg.Endpoint = Endpoint
	}
	if command.Token != "" {
		cfg.Token = command.Token
	}
	if Insecure {
		cfg.Insecure = true
	}
	if cfg.Endpoint == "" {
		return nil, nil
	}
	opts := cfg.ClientOptions()
	if command.ReqTimeout != 0 {
		opts.Timeout = command.ReqTimeout
	}
	return taasctl.NewRESTClient(cfg.Endpoint, opts)
}
