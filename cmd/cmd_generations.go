package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nanovms/nixos-refind/bootspec"
	"github.com/nanovms/nixos-refind/nixenv"
	"github.com/nanovms/nixos-refind/runner"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// GenerationsCommand provides generations command
func GenerationsCommand() *cobra.Command {
	var cmdGenerations = &cobra.Command{
		Use:   "generations [config]",
		Short: "List the generations boot entries are generated for",
		Args:  cobra.MaximumNArgs(1),
		Run:   generationsCommandHandler,
	}
	return cmdGenerations
}

func generationsCommandHandler(cmd *cobra.Command, args []string) {
	fs := afero.NewOsFs()

	c, err := loadConfig(fs, cmd.Flags(), args)
	if err != nil {
		exitWithError(err.Error())
	}

	profiles, err := nixenv.NewEnumerator(fs, runner.New(), c).All()
	if err != nil {
		reportError(err, c)
	}

	PrintGenerations(cmd.OutOrStdout(), fs, profiles)
}

// PrintGenerations writes a table of every generation of profiles with the
// size of its kernel.
func PrintGenerations(w io.Writer, fs afero.Fs, profiles []bootspec.Profile) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Profile", "Generation", "Label", "Kernel", "Size", "Specialisations"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})

	table.SetRowLine(true)

	for _, profile := range profiles {
		for _, gen := range profile.Generations {
			var rows []string

			rows = append(rows, profile.Name)
			rows = append(rows, strconv.Itoa(gen.Number))
			rows = append(rows, gen.BootSpec.Label)
			rows = append(rows, gen.BootSpec.Kernel)

			if info, err := fs.Stat(gen.BootSpec.Kernel); err == nil {
				rows = append(rows, humanize.Bytes(uint64(info.Size())))
			} else {
				rows = append(rows, "-")
			}

			var names []string
			for _, spec := range gen.BootSpec.Specialisations {
				names = append(names, spec.Name)
			}
			rows = append(rows, strings.Join(names, ", "))

			table.Append(rows)
		}
	}

	table.Render()
}
