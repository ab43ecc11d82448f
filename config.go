// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package taasctl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config contains the settings for reaching the networking service, as read
// from a YAML configuration file.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Token    string        `yaml:"token"`
	Timeout  time.Duration `yaml:"timeout"`
	Insecure bool          `yaml:"insecure"`
	APIPath  string        `yaml:"api-path"`
}

// DefaultConfigPath returns the path of the configuration file to use when
// none has been explicitly specified: "taasctl/config.yaml" inside the user's
// configuration directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taasctl", "config.yaml")
}

// LoadConfig reads the YAML configuration file at the specified path. If
// mustExist is false, a non-existing configuration file results in an empty
// configuration instead of an error.
func LoadConfig(path string, mustExist bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no configuration file %q", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid configuration %q: negative timeout", path)
	}
	log.Debugf("loaded configuration from %q", path)
	return cfg, nil
}

// ClientOptions returns the REST client options according to this
// configuration.
func (c *Config) ClientOptions() *RESTClientOptions {
	opts := &RESTClientOptions{
		CommonClientOptions: CommonClientOptions{
			Token:   c.Token,
			Timeout: c.Timeout,
		},
		InsecureSkipVerify: c.Insecure,
		APIPath:            c.APIPath,
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultServiceTimeout
	}
	return opts
}
