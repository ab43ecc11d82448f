// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"strings"

	"github.com/siemens/taasctl"
	"github.com/siemens/taasctl/cli"
	"github.com/thediveo/go-plugger/v3"
)

// NewClient returns a suitable networking service client by asking the
// registered client factories one after another until the first one returns
// a client or an error.
func NewClient() (taasctl.ResourceClient, error) {
	for _, newClient := range plugger.Group[cli.NewClient]().Symbols() {
		client, err := newClient()
		if err != nil {
			return nil, err
		}
		if client != nil {
			return client, nil
		}
	}
	plugins := strings.Join(plugger.Group[cli.NewClient]().Plugins(), ", ")
	if plugins == "" {
		plugins = "(none)"
	}
	return nil, errors.New("no suitable networking service client; available clients: " + plugins)
}
