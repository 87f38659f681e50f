package cmd

import (
	"os"

	"github.com/nanovms/nixos-refind/log"
	"github.com/nanovms/nixos-refind/types"
	"github.com/spf13/cobra"
)

// GetRootCommand provides set all commands for refind-install. Called with
// a configuration file and no command it installs, the way the NixOS
// activation script invokes it.
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:          "refind-install [config]",
		Short:        "Install rEFInd and generate its configuration for NixOS generations",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := &types.Config{}

			globalFlags := NewGlobalCommandFlags(cmd.Flags())
			if err := globalFlags.MergeToConfig(config); err != nil {
				return err
			}

			log.InitDefault(os.Stdout, config)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				cmd.Help()
				return
			}
			installCommandHandler(cmd, args)
		},
	}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())
	PersistConfigCommandFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(InstallCommand())
	rootCmd.AddCommand(GenerationsCommand())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}
