// Package installer installs rEFInd and regenerates its configuration for
// every NixOS generation.
package installer

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/constants"
	"github.com/nanovms/nixos-refind/log"
	"github.com/nanovms/nixos-refind/nixenv"
	"github.com/nanovms/nixos-refind/refind"
	"github.com/nanovms/nixos-refind/runner"
	"github.com/nanovms/nixos-refind/stage"
	"github.com/nanovms/nixos-refind/types"
	"github.com/spf13/afero"
)

const efiVariablesWarning = "boot.loader.efi.canTouchEfiVariables is set to false while " +
	"boot.loader.refind.efiInstallAsRemovable is not set.\n  This may render the system unbootable."

// Installer runs a full installation for one configuration.
type Installer struct {
	fs     afero.Fs
	runner runner.Runner
	config *types.Config

	// Enumerator lists the profiles to generate entries for.
	Enumerator *nixenv.Enumerator

	// Sync flushes the EFI file system once the installation is over.
	Sync func(mountPoint string) error

	// ErrorLog receives sync failures.
	ErrorLog *log.Logger
}

// New returns an Installer writing to fs and running programs with r.
func New(fs afero.Fs, r runner.Runner, config *types.Config) *Installer {
	errorLog := log.New(os.Stderr)
	errorLog.Enable(log.LevelError)

	return &Installer{
		fs:         fs,
		runner:     r,
		config:     config,
		Enumerator: nixenv.NewEnumerator(fs, r, config),
		Sync:       SyncFS,
		ErrorLog:   errorLog,
	}
}

// Install installs rEFInd if configured, stages the kernels of every
// generation and rewrites refind_linux.conf and refind.conf. The EFI file
// system is synced afterwards whether or not the installation succeeded.
func (i *Installer) Install() error {
	defer func() {
		if err := i.Sync(i.config.EfiMountPoint); err != nil {
			i.ErrorLog.Errorf("could not sync %s: %v", i.config.EfiMountPoint, err)
		}
	}()

	return i.install()
}

func (i *Installer) install() error {
	log.Info("Installing bootloader...")

	var doc refind.Config
	writeRefindConf := i.config.HasRefindConfig()
	if writeRefindConf {
		var err error
		doc, err = refind.ParseDocument(i.config.RefindConfig)
		if err != nil {
			return errors.WrapPrefix(err, "refindConfig", 0)
		}
	}

	if i.config.Installation.Enabled {
		if err := i.runRefindInstall(); err != nil {
			return err
		}

		log.Info("removing unused files...")
		if err := i.removeUnused(); err != nil {
			return err
		}
	}

	if err := i.remove(stage.ThemesDir, stage.IconsDir, stage.AssetsDir); err != nil {
		return err
	}

	profiles, err := i.Enumerator.All()
	if err != nil {
		return err
	}

	log.Info("Removing old kernels...")
	if err := i.fs.RemoveAll(i.config.KernelDir()); err != nil {
		return errors.Wrap(err, 0)
	}

	renderer := refind.NewRenderer(
		stage.NewKernels(i.fs, i.runner, i.config),
		stage.NewAssets(i.fs, i.config.RefindDir()),
	)

	var linuxConf, refindConf string
	if i.config.GenerateLinuxConf {
		log.Info("updating refind_linux.conf...")
		if linuxConf, err = renderer.LinuxConf(profiles); err != nil {
			return err
		}
	}
	if writeRefindConf {
		log.Info("updating refind.conf...")
		if refindConf, err = renderer.RefindConf(doc, profiles); err != nil {
			return err
		}
	}

	if i.config.GenerateLinuxConf {
		if err := i.writeFile(filepath.Join(i.config.KernelDir(), constants.LinuxConfFile), linuxConf); err != nil {
			return err
		}
	}
	if writeRefindConf {
		if err := i.writeFile(filepath.Join(i.config.RefindDir(), constants.RefindConfFile), refindConf); err != nil {
			return err
		}
	}

	return i.copyTools()
}

// writeFile replaces path with content and flushes it to disk.
func (i *Installer) writeFile(path, content string) error {
	if err := i.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, 0)
	}

	f, err := i.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return errors.WrapPrefix(err, path, 0)
	}
	if err := f.Sync(); err != nil {
		return errors.WrapPrefix(err, path, 0)
	}
	return f.Close()
}

func (i *Installer) copyTools() error {
	if len(i.config.Tools) == 0 {
		return nil
	}

	dir := i.config.ToolsDir()
	if err := i.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, 0)
	}

	names := make([]string, 0, len(i.config.Tools))
	for name := range i.config.Tools {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		log.Debugf("copying tool %s", name)
		if err := stage.CopyFile(i.fs, i.config.Tools[name], filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
