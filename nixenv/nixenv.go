// Package nixenv enumerates the NixOS system profiles and their generations.
package nixenv

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/bootspec"
	"github.com/nanovms/nixos-refind/constants"
	"github.com/nanovms/nixos-refind/log"
	"github.com/nanovms/nixos-refind/runner"
	"github.com/nanovms/nixos-refind/types"
	"github.com/spf13/afero"
)

// BootFile is the bootspec document inside every generation.
const BootFile = "boot.json"

// ErrBadGeneration is returned when nix-env lists a generation whose number
// cannot be parsed.
var ErrBadGeneration = errors.New("unexpected generation line")

// Enumerator lists profiles and loads the bootspec of their generations.
type Enumerator struct {
	fs             afero.Fs
	runner         runner.Runner
	nixEnv         string
	maxGenerations int

	// ProfilesDir defaults to /nix/var/nix/profiles.
	ProfilesDir string
}

// NewEnumerator returns an Enumerator for config.
func NewEnumerator(fs afero.Fs, r runner.Runner, config *types.Config) *Enumerator {
	return &Enumerator{
		fs:             fs,
		runner:         r,
		nixEnv:         filepath.Join(config.NixPath, "bin", "nix-env"),
		maxGenerations: config.MaxGenerations,
		ProfilesDir:    constants.ProfilesDir,
	}
}

// SystemPath returns the profile link, or the link of generation gen when
// gen is not 0.
func (e *Enumerator) SystemPath(profile string, gen int) string {
	base := profile
	if gen != 0 {
		base += "-" + strconv.Itoa(gen) + "-link"
	}

	if profile == constants.DefaultProfile {
		return filepath.Join(e.ProfilesDir, base)
	}
	return filepath.Join(e.ProfilesDir, "system-profiles", base)
}

// Profiles returns the sorted names of the extra system profiles.
func (e *Enumerator) Profiles() ([]string, error) {
	dir := filepath.Join(e.ProfilesDir, "system-profiles")

	isDir, err := afero.DirExists(e.fs, dir)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if !isDir {
		return nil, nil
	}

	infos, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	var names []string
	for _, info := range infos {
		if strings.HasSuffix(info.Name(), "-link") {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Generations returns the generation numbers of profile, oldest first,
// limited to the newest maxGenerations.
func (e *Enumerator) Generations(profile string) ([]int, error) {
	output, err := e.runner.Output(runner.Command{
		Path: e.nixEnv,
		Args: []string{
			"--list-generations",
			"-p", e.SystemPath(profile, 0),
			"--option", "build-users-group", "",
		},
	})
	if err != nil {
		return nil, errors.WrapPrefix(err, "listing generations of "+profile, 0)
	}

	var gens []int
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Errorf("%w: %q", ErrBadGeneration, line)
		}
		gens = append(gens, n)
	}

	if e.maxGenerations > 0 && len(gens) > e.maxGenerations {
		gens = gens[len(gens)-e.maxGenerations:]
	}

	return gens, nil
}

// Profile loads every generation of profile, newest first.
func (e *Enumerator) Profile(name string) (bootspec.Profile, error) {
	profile := bootspec.Profile{Name: name}

	gens, err := e.Generations(name)
	if err != nil {
		return profile, err
	}

	for i := len(gens) - 1; i >= 0; i-- {
		file := filepath.Join(e.SystemPath(name, gens[i]), BootFile)
		log.Debugf("reading %s", file)

		data, err := afero.ReadFile(e.fs, file)
		if err != nil {
			return profile, errors.Wrap(err, 0)
		}

		bs, err := bootspec.Parse(data)
		if err != nil {
			return profile, errors.WrapPrefix(err, file, 0)
		}

		profile.Generations = append(profile.Generations, bootspec.Generation{Number: gens[i], BootSpec: bs})
	}

	return profile, nil
}

// All loads the default profile followed by every extra profile.
func (e *Enumerator) All() ([]bootspec.Profile, error) {
	names, err := e.Profiles()
	if err != nil {
		return nil, err
	}

	var profiles []bootspec.Profile
	for _, name := range append([]string{constants.DefaultProfile}, names...) {
		profile, err := e.Profile(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
