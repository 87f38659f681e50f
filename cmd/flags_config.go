package cmd

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/types"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// ErrNoConfig is returned when no configuration file was given.
var ErrNoConfig = errors.New("a configuration file is required")

// ConfigCommandFlags handles config file path flag and build configuration from the file
type ConfigCommandFlags struct {
	Config string
}

// Load reads the configuration file, JSON as written by the NixOS module
// or YAML, over the defaults.
func (flags *ConfigCommandFlags) Load(fs afero.Fs) (*types.Config, error) {
	if flags.Config == "" {
		return nil, ErrNoConfig
	}

	data, err := afero.ReadFile(fs, flags.Config)
	if err != nil {
		return nil, errors.WrapPrefix(err, "error reading config", 0)
	}

	c, err := types.Unmarshal(data)
	if err != nil {
		return nil, errors.WrapPrefix(err, "error config", 0)
	}

	return c, nil
}

// NewConfigCommandFlags returns an instance of ConfigCommandFlags. A
// positional argument stands in for the flag.
func NewConfigCommandFlags(cmdFlags *pflag.FlagSet, args []string) (flags *ConfigCommandFlags) {
	flags = &ConfigCommandFlags{}

	flags.Config, _ = cmdFlags.GetString("config")
	if flags.Config == "" && len(args) > 0 {
		flags.Config = args[0]
	}

	flags.Config = strings.TrimSpace(flags.Config)

	return
}

// PersistConfigCommandFlags append a command the config file flag
func PersistConfigCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("config", "c", "", "installer config file (JSON or YAML)")
}

// loadConfig reads the configuration named on the command line and applies
// the global flags to it.
func loadConfig(fs afero.Fs, cmdFlags *pflag.FlagSet, args []string) (*types.Config, error) {
	c, err := NewConfigCommandFlags(cmdFlags, args).Load(fs)
	if err != nil {
		return nil, err
	}

	if err := NewGlobalCommandFlags(cmdFlags).MergeToConfig(c); err != nil {
		return nil, err
	}

	return c, nil
}
