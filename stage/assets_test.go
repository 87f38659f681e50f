package stage_test

import (
	"testing"

	"github.com/nanovms/nixos-refind/stage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallTheme(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/nix/store/t-minimal/theme.conf", []byte("banner bg.png"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/nix/store/t-minimal/icons/os_nixos.png", []byte("png"), 0644))

	a := stage.NewAssets(fs, "/boot/efi/refind")

	include, err := a.InstallTheme("/nix/store/t-minimal/")
	require.NoError(t, err)
	assert.Equal(t, "themes/t-minimal/theme.conf", include)

	content, err := afero.ReadFile(fs, "/boot/efi/refind/themes/t-minimal/icons/os_nixos.png")
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))
}

func TestInstallThemeRequiresDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/nix/store/theme.conf", []byte(""), 0644))
	a := stage.NewAssets(fs, "/boot/efi/refind")

	_, err := a.InstallTheme("/nix/store/theme.conf")
	assert.ErrorIs(t, err, stage.ErrNotDirectory)

	_, err = a.InstallTheme("/nix/store/missing")
	assert.ErrorIs(t, err, stage.ErrNotDirectory)
}

func TestInstallIconAndAsset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/art/nix.png", []byte("icon"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/art/banner.bmp", []byte("banner"), 0644))
	a := stage.NewAssets(fs, "/boot/efi/refind")

	dir, err := a.InstallIcon("os_nixos.png", "/art/nix.png")
	require.NoError(t, err)
	assert.Equal(t, "extra-icons", dir)

	exists, err := afero.Exists(fs, "/boot/efi/refind/extra-icons/os_nixos.png")
	require.NoError(t, err)
	assert.True(t, exists)

	rel, err := a.InstallAsset("banner", "/art/banner.bmp")
	require.NoError(t, err)
	assert.Equal(t, "assets/banner.bmp", rel)

	content, err := afero.ReadFile(fs, "/boot/efi/refind/assets/banner.bmp")
	require.NoError(t, err)
	assert.Equal(t, "banner", string(content))
}
