// Package stage copies boot artifacts onto the EFI system partition.
package stage

import (
	"path"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/constants"
	"github.com/nanovms/nixos-refind/log"
	"github.com/nanovms/nixos-refind/runner"
	"github.com/nanovms/nixos-refind/types"
	"github.com/spf13/afero"
)

// Kernels stages kernels and initrds into the kernel directory of the EFI
// system partition, signing kernels when local keys are in use.
type Kernels struct {
	fs     afero.Fs
	runner runner.Runner
	dir    string
	sign   bool
	sbsign string
}

// NewKernels returns a kernel stager for config.
func NewKernels(fs afero.Fs, r runner.Runner, config *types.Config) *Kernels {
	return &Kernels{
		fs:     fs,
		runner: r,
		dir:    config.KernelDir(),
		sign:   config.SignWithLocalKeys,
		sbsign: filepath.Join(config.SbsignPath, "bin", "sbsign"),
	}
}

// StagedName is the file name a kernel is staged under. The store
// directory is part of it since kernels of different generations share
// their base name.
func StagedName(kernelPath string) string {
	return filepath.Base(filepath.Dir(kernelPath)) + "-" + filepath.Base(kernelPath)
}

// Stage places kernelPath in the kernel directory and returns the path
// rEFInd loads it from. Signed kernels are signed again on every call,
// plain copies are only made once.
func (k *Kernels) Stage(kernelPath string, needSignature bool) (string, error) {
	name := StagedName(kernelPath)
	dest := filepath.Join(k.dir, name)

	if err := k.fs.MkdirAll(k.dir, 0755); err != nil {
		return "", errors.Wrap(err, 0)
	}

	if k.sign && needSignature {
		log.Debugf("signing %s", kernelPath)
		err := k.runner.Run(runner.Command{
			Path: k.sbsign,
			Args: []string{
				"--key", constants.LocalKey,
				"--cert", constants.LocalCert,
				"--output", dest,
				kernelPath,
			},
		})
		if err != nil {
			return "", errors.WrapPrefix(err, "signing "+kernelPath, 0)
		}
	} else {
		exists, err := afero.Exists(k.fs, dest)
		if err != nil {
			return "", errors.Wrap(err, 0)
		}
		if !exists {
			log.Debugf("copying %s to %s", kernelPath, dest)
			if err := CopyFile(k.fs, kernelPath, dest); err != nil {
				return "", err
			}
		}
	}

	return path.Join(constants.BootKernelDir, name), nil
}
