package cmd

import (
	"github.com/nanovms/nixos-refind/installer"
	"github.com/nanovms/nixos-refind/runner"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// InstallCommand provides install command
func InstallCommand() *cobra.Command {
	var cmdInstall = &cobra.Command{
		Use:   "install [config]",
		Short: "Install rEFInd and regenerate its configuration",
		Args:  cobra.MaximumNArgs(1),
		Run:   installCommandHandler,
	}
	return cmdInstall
}

func installCommandHandler(cmd *cobra.Command, args []string) {
	fs := afero.NewOsFs()

	c, err := loadConfig(fs, cmd.Flags(), args)
	if err != nil {
		exitWithError(err.Error())
	}

	if err := installer.New(fs, runner.New(), c).Install(); err != nil {
		reportError(err, c)
	}
}
