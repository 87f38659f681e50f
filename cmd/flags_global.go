package cmd

import (
	"github.com/nanovms/nixos-refind/types"

	"github.com/spf13/pflag"
)

// GlobalCommandFlags are flags accepted by every command
type GlobalCommandFlags struct {
	Quiet     bool
	ShowDebug bool
}

// MergeToConfig append command flags that are used transversally for all commands to configuration
func (flags *GlobalCommandFlags) MergeToConfig(config *types.Config) (err error) {
	config.RunConfig.Quiet = flags.Quiet
	config.RunConfig.ShowDebug = flags.ShowDebug

	return
}

// NewGlobalCommandFlags returns an instance of GlobalCommandFlags
func NewGlobalCommandFlags(cmdFlags *pflag.FlagSet) (flags *GlobalCommandFlags) {
	flags = &GlobalCommandFlags{}

	flags.Quiet, _ = cmdFlags.GetBool("quiet")
	flags.ShowDebug, _ = cmdFlags.GetBool("show-debug")

	return flags
}

// PersistGlobalCommandFlags append the global flags to a command
func PersistGlobalCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.BoolP("quiet", "q", false, "only display error messages")
	cmdFlags.Bool("show-debug", false, "display debug messages and error stacks")
}
