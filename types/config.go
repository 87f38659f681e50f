package types

import (
	"path/filepath"

	"github.com/go-errors/errors"
	"gopkg.in/yaml.v2"
)

// Config is the installer configuration produced by the NixOS module.
type Config struct {
	// EfiMountPoint is where the EFI system partition is mounted.
	EfiMountPoint string `yaml:"efiMountPoint"`

	// EfiInstallAsRemovable installs rEFInd to the removable media
	// fallback path (efi/boot) instead of efi/refind.
	EfiInstallAsRemovable bool `yaml:"efiInstallAsRemovable"`

	// CanTouchEfiVariables allows refind-install to register a boot entry.
	CanTouchEfiVariables bool `yaml:"canTouchEfiVariables"`

	// SignWithLocalKeys signs rEFInd and every staged kernel with the
	// locally generated secure boot key.
	SignWithLocalKeys bool `yaml:"signWithLocalKeys"`

	// Installation controls whether refind-install runs and with which shim.
	Installation Installation `yaml:"installation"`

	// InstallDrivers is one of "all", "none" or anything else for the
	// refind-install default.
	InstallDrivers string `yaml:"installDrivers"`

	// MaxGenerations bounds the number of generations per profile, 0 keeps all.
	MaxGenerations int `yaml:"maxGenerations"`

	// GenerateLinuxConf writes refind_linux.conf next to the staged kernels.
	GenerateLinuxConf bool `yaml:"generateLinuxConf"`

	// RefindConfig is the ordered refind.conf description.
	RefindConfig yaml.MapSlice `yaml:"refindConfig"`

	// RefindConfigSet records a non-null refindConfig, empty mappings
	// included, since those decode to a nil RefindConfig.
	RefindConfigSet bool `yaml:"-"`

	// Tools maps file names under efi/tools to their source paths.
	Tools map[string]string `yaml:"tools"`

	// Store paths of the programs the installer and refind-install need.
	RefindPath     string `yaml:"refindPath"`
	NixPath        string `yaml:"nixPath"`
	SbsignPath     string `yaml:"sbsignPath"`
	CoreUtilsPath  string `yaml:"coreUtilsPath"`
	FindUtilsPath  string `yaml:"findUtilsPath"`
	UtilLinuxPath  string `yaml:"utilLinuxPath"`
	GnuGrepPath    string `yaml:"gnuGrepPath"`
	GnuSedPath     string `yaml:"gnuSedPath"`
	GnuAwkPath     string `yaml:"gnuAwkPath"`
	GptFDiskPath   string `yaml:"gptFDiskPath"`
	OpenSSLPath    string `yaml:"openSSLPath"`
	MokUtilPath    string `yaml:"mokUtilPath"`
	GlibcPath      string `yaml:"glibcPath"`
	EfiBootMgrPath string `yaml:"efiBootMgrPath"`

	// RunConfig holds command line only settings.
	RunConfig RunConfig `yaml:"-"`
}

// RunConfig configures console output for a single run
type RunConfig struct {
	// Quiet hides progress and warning messages, errors are always shown.
	Quiet     bool
	ShowDebug bool
}

// Installation is either a boolean or the path of a shim binary to
// install rEFInd behind.
type Installation struct {
	Enabled bool
	Shim    string
}

// UnmarshalYAML accepts `true`, `false` or a shim path.
func (i *Installation) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var enabled bool
	if err := unmarshal(&enabled); err == nil {
		*i = Installation{Enabled: enabled}
		return nil
	}

	var shim string
	if err := unmarshal(&shim); err != nil {
		return errors.New("installation must be a boolean or a shim path")
	}
	*i = Installation{Enabled: true, Shim: shim}
	return nil
}

// NewConfig returns a Config with the NixOS module defaults.
func NewConfig() *Config {
	return &Config{
		EfiMountPoint:     "/boot",
		Installation:      Installation{Enabled: true},
		GenerateLinuxConf: true,
		Tools:             map[string]string{},
	}
}

// UnmarshalYAML decodes the document over c and records whether
// refindConfig was given.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Config
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}

	var presence struct {
		RefindConfig interface{} `yaml:"refindConfig"`
	}
	if err := unmarshal(&presence); err != nil {
		return err
	}
	c.RefindConfigSet = presence.RefindConfig != nil

	return nil
}

// HasRefindConfig reports whether refind.conf is generated.
func (c *Config) HasRefindConfig() bool {
	return c.RefindConfigSet || c.RefindConfig != nil
}

// Unmarshal decodes a JSON or YAML configuration document over the
// defaults.
func Unmarshal(data []byte) (*Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// KernelDir is where kernels and initrds are staged.
func (c *Config) KernelDir() string {
	return filepath.Join(c.EfiMountPoint, "efi", "nixos")
}

// RefindDir is where refind-install puts rEFInd and refind.conf.
func (c *Config) RefindDir() string {
	if c.EfiInstallAsRemovable {
		return filepath.Join(c.EfiMountPoint, "efi", "boot")
	}
	return filepath.Join(c.EfiMountPoint, "efi", "refind")
}

// ToolsDir is where EFI tools are copied.
func (c *Config) ToolsDir() string {
	return filepath.Join(c.EfiMountPoint, "efi", "tools")
}
