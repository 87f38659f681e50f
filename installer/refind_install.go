package installer

import (
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/log"
	"github.com/nanovms/nixos-refind/runner"
)

// Files refind-install leaves behind that the installation does not use.
var (
	alwaysUnused = []string{"icons-backup", "refind.conf-sample"}

	driverDirs = []string{"drivers", "drivers_ia32", "drivers_x64", "drivers_aa64"}

	shimFiles = []string{
		"grub.efi", "grubx64.efi", "grubaa64.efi",
		"shim.efi", "shimx64.efi", "shimx64.efi.signed", "shimaa64.efi",
		"mm.efi", "mmia32.efi", "mmx64.efi", "mmaa64.efi",
		"MokManager.efi", "loader.efi", "preloader.efi",
	}

	refindFiles = []string{"refind.efi", "refind_ia32.efi", "refind_x64.efi", "refind_aa64.efi"}
)

// RefindInstallCommand returns the refind-install invocation for the
// configuration.
func (i *Installer) RefindInstallCommand() runner.Command {
	c := i.config
	args := []string{"--yes"}

	if c.EfiInstallAsRemovable {
		args = append(args, "--usedefault")
	}
	if c.SignWithLocalKeys {
		args = append(args, "--localkeys")
	}

	switch c.InstallDrivers {
	case "all":
		args = append(args, "--alldrivers")
	case "none":
		args = append(args, "--nodrivers")
	}

	if c.Installation.Shim != "" {
		args = append(args, "--shim", c.Installation.Shim)
	}

	return runner.Command{
		Path: filepath.Join(c.RefindPath, "bin", "refind-install"),
		Args: args,
		Env:  []string{"PATH=" + i.searchPath()},
	}
}

// searchPath lists the bin directories of the tools refind-install calls.
func (i *Installer) searchPath() string {
	c := i.config
	paths := []string{
		c.CoreUtilsPath,
		c.FindUtilsPath,
		c.UtilLinuxPath,
		c.GnuGrepPath,
		c.GnuSedPath,
		c.GnuAwkPath,
		c.GptFDiskPath,
		c.OpenSSLPath,
		c.SbsignPath,
	}
	if c.CanTouchEfiVariables {
		paths = append(paths, c.MokUtilPath)
	}
	paths = append(paths, c.GlibcPath)
	if c.CanTouchEfiVariables {
		paths = append(paths, c.EfiBootMgrPath)
	}

	var dirs []string
	for _, p := range paths {
		if p != "" {
			dirs = append(dirs, filepath.Join(p, "bin"))
		}
	}
	return strings.Join(dirs, ":")
}

func (i *Installer) runRefindInstall() error {
	c := i.config
	if !c.EfiInstallAsRemovable && !c.CanTouchEfiVariables {
		log.Warn(efiVariablesWarning)
	}

	log.Info("running refind-install...")
	if err := i.runner.Run(i.RefindInstallCommand()); err != nil {
		return errors.WrapPrefix(err, "refind-install", 0)
	}
	return nil
}

func (i *Installer) removeUnused() error {
	c := i.config

	unused := append([]string{}, alwaysUnused...)
	if c.InstallDrivers == "none" {
		unused = append(unused, driverDirs...)
	}
	if !c.SignWithLocalKeys {
		unused = append(unused, "keys")
	}
	if c.Installation.Shim == "" {
		unused = append(unused, shimFiles...)
	} else {
		unused = append(unused, refindFiles...)
	}

	return i.remove(unused...)
}

// remove deletes files and directories below the rEFInd directory, ignoring
// the ones that do not exist.
func (i *Installer) remove(names ...string) error {
	for _, name := range names {
		path := filepath.Join(i.config.RefindDir(), name)
		if err := i.fs.RemoveAll(path); err != nil {
			return errors.WrapPrefix(err, "removing "+path, 0)
		}
	}
	return nil
}
