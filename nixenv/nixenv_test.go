package nixenv_test

import (
	"fmt"
	"testing"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/nixenv"
	"github.com/nanovms/nixos-refind/runner"
	"github.com/nanovms/nixos-refind/runner/mock_runner"
	"github.com/nanovms/nixos-refind/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const generationsOutput = `   1   2024-01-01 10:00:00
   2   2024-01-05 11:30:12
   3   2024-02-10 09:01:44   (current)
`

func bootJSON(gen int) string {
	return fmt.Sprintf(`{
  "org.nixos.bootspec.v1": {
    "system": "x86_64-linux",
    "init": "/nix/store/sys%[1]d/init",
    "kernel": "/nix/store/k%[1]d-linux/bzImage",
    "kernelParams": [],
    "label": "NixOS %[1]d",
    "toplevel": "/nix/store/sys%[1]d"
  },
  "org.nixos.specialisation.v1": {}
}`, gen)
}

func listCommand(profilePath string) runner.Command {
	return runner.Command{
		Path: "/nix/store/nix/bin/nix-env",
		Args: []string{"--list-generations", "-p", profilePath, "--option", "build-users-group", ""},
	}
}

func newEnumerator(t *testing.T, maxGenerations int) (*nixenv.Enumerator, *mock_runner.MockRunner, afero.Fs) {
	ctrl := gomock.NewController(t)
	r := mock_runner.NewMockRunner(ctrl)
	fs := afero.NewMemMapFs()

	config := types.NewConfig()
	config.NixPath = "/nix/store/nix"
	config.MaxGenerations = maxGenerations

	return nixenv.NewEnumerator(fs, r, config), r, fs
}

func TestSystemPath(t *testing.T) {
	e, _, _ := newEnumerator(t, 0)

	tests := []struct {
		profile string
		gen     int
		want    string
	}{
		{"system", 0, "/nix/var/nix/profiles/system"},
		{"system", 42, "/nix/var/nix/profiles/system-42-link"},
		{"work", 0, "/nix/var/nix/profiles/system-profiles/work"},
		{"work", 7, "/nix/var/nix/profiles/system-profiles/work-7-link"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.SystemPath(tt.profile, tt.gen))
	}
}

func TestProfiles(t *testing.T) {
	e, _, fs := newEnumerator(t, 0)

	names, err := e.Profiles()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"work", "work-1-link", "gaming", "gaming-3-link"} {
		require.NoError(t, fs.MkdirAll("/nix/var/nix/profiles/system-profiles/"+name, 0755))
	}

	names, err = e.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"gaming", "work"}, names)
}

func TestGenerations(t *testing.T) {
	t.Run("keeps all by default", func(t *testing.T) {
		e, r, _ := newEnumerator(t, 0)
		r.EXPECT().Output(listCommand("/nix/var/nix/profiles/system")).Return(generationsOutput, nil)

		gens, err := e.Generations("system")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, gens)
	})

	t.Run("keeps the newest maxGenerations", func(t *testing.T) {
		e, r, _ := newEnumerator(t, 2)
		r.EXPECT().Output(listCommand("/nix/var/nix/profiles/system-profiles/work")).Return(generationsOutput, nil)

		gens, err := e.Generations("work")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, gens)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		e, r, _ := newEnumerator(t, 0)
		r.EXPECT().Output(gomock.Any()).Return("error: no profile\n", nil)

		_, err := e.Generations("system")
		assert.ErrorIs(t, err, nixenv.ErrBadGeneration)
	})

	t.Run("propagates nix-env failures", func(t *testing.T) {
		e, r, _ := newEnumerator(t, 0)
		failure := errors.New("exit status 1")
		r.EXPECT().Output(gomock.Any()).Return("", failure)

		_, err := e.Generations("system")
		assert.True(t, errors.Is(err, failure))
	})
}

func TestAll(t *testing.T) {
	e, r, fs := newEnumerator(t, 0)

	require.NoError(t, fs.MkdirAll("/nix/var/nix/profiles/system-profiles/work", 0755))
	for _, gen := range []int{1, 2, 3} {
		require.NoError(t, afero.WriteFile(fs, fmt.Sprintf("/nix/var/nix/profiles/system-%d-link/boot.json", gen), []byte(bootJSON(gen)), 0644))
	}
	require.NoError(t, afero.WriteFile(fs, "/nix/var/nix/profiles/system-profiles/work-8-link/boot.json", []byte(bootJSON(8)), 0644))

	gomock.InOrder(
		r.EXPECT().Output(listCommand("/nix/var/nix/profiles/system")).Return(generationsOutput, nil),
		r.EXPECT().Output(listCommand("/nix/var/nix/profiles/system-profiles/work")).Return("   8   2024-03-01 12:00:00\n", nil),
	)

	profiles, err := e.All()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "system", profiles[0].Name)
	require.Len(t, profiles[0].Generations, 3)
	assert.Equal(t, 3, profiles[0].Generations[0].Number)
	assert.Equal(t, "/nix/store/k3-linux/bzImage", profiles[0].Generations[0].BootSpec.Kernel)
	assert.Equal(t, 1, profiles[0].Generations[2].Number)

	assert.Equal(t, "work", profiles[1].Name)
	require.Len(t, profiles[1].Generations, 1)
	assert.Equal(t, "NixOS 8", profiles[1].Generations[0].BootSpec.Label)
}

func TestProfileMissingBootJSON(t *testing.T) {
	e, r, _ := newEnumerator(t, 0)
	r.EXPECT().Output(gomock.Any()).Return(generationsOutput, nil)

	_, err := e.Profile("system")
	assert.Error(t, err)
}
