package cmd

import (
	"fmt"
	"os"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/constants"
	"github.com/nanovms/nixos-refind/types"
)

func exitWithError(errs string) {
	fmt.Fprintln(os.Stderr, fmt.Sprintf(constants.ErrorColor, errs))
	os.Exit(1)
}

// reportError prints err, with its stack when debugging, and exits.
func reportError(err error, config *types.Config) {
	var e *errors.Error
	if config != nil && config.RunConfig.ShowDebug && errors.As(err, &e) {
		fmt.Fprintln(os.Stderr, e.ErrorStack())
	}
	exitWithError(err.Error())
}
