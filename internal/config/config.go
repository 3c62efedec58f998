package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigPath is the default location for the config file
	DefaultConfigPath = "/etc/rpcctl.conf"
	// DefaultMountTable is where the kernel exposes the live mount table
	DefaultMountTable = "/proc/mounts"
)

// Config holds the tool configuration
type Config struct {
	// MountTable is the mount-table file scanned for the sysfs mount
	MountTable string `toml:"mount_table" validate:"required,startswith=/"`
	// Verbose enables debug logging
	Verbose bool `toml:"verbose"`
}

// Load loads configuration from a TOML file
// Returns an empty config if the file doesn't exist
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Merge merges CLI flags into the config, with CLI flags taking precedence
// over config file values. Empty CLI values are ignored.
func (c *Config) Merge(mountTable string, verbose bool) {
	if mountTable != "" {
		c.MountTable = mountTable
	}
	if verbose {
		c.Verbose = true
	}
}

// ApplyDefaults applies default values for any unset fields
func (c *Config) ApplyDefaults() {
	if c.MountTable == "" {
		c.MountTable = DefaultMountTable
	}
}
