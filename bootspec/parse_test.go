package bootspec_test

import (
	"testing"

	"github.com/nanovms/nixos-refind/bootspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bootJSON = `{
  "org.nixos.bootspec.v1": {
    "system": "x86_64-linux",
    "init": "/nix/store/aaa-nixos-system/init",
    "initrd": "/nix/store/bbb-initrd-linux-6.6/initrd",
    "kernel": "/nix/store/ccc-linux-6.6/bzImage",
    "kernelParams": ["loglevel=4", "quiet"],
    "label": "NixOS 24.05.20240101.abcdef (Linux 6.6.8)",
    "toplevel": "/nix/store/aaa-nixos-system"
  },
  "org.nixos.specialisation.v1": {
    "recovery": {
      "org.nixos.bootspec.v1": {
        "system": "x86_64-linux",
        "init": "/nix/store/ddd-nixos-system/init",
        "kernel": "/nix/store/ccc-linux-6.6/bzImage",
        "kernelParams": ["single"],
        "label": "NixOS 24.05.20240101.abcdef (Linux 6.6.8)",
        "toplevel": "/nix/store/ddd-nixos-system"
      },
      "org.nixos.specialisation.v1": {}
    },
    "gaming": {
      "org.nixos.bootspec.v1": {
        "system": "x86_64-linux",
        "init": "/nix/store/eee-nixos-system/init",
        "kernel": "/nix/store/fff-linux-zen/bzImage",
        "kernelParams": [],
        "label": "NixOS 24.05",
        "toplevel": "/nix/store/eee-nixos-system"
      }
    }
  }
}`

func TestParse(t *testing.T) {
	bs, err := bootspec.Parse([]byte(bootJSON))
	require.NoError(t, err)

	assert.Equal(t, "/nix/store/aaa-nixos-system/init", bs.Init)
	assert.Equal(t, "/nix/store/ccc-linux-6.6/bzImage", bs.Kernel)
	assert.Equal(t, "/nix/store/bbb-initrd-linux-6.6/initrd", bs.Initrd)
	assert.Equal(t, []string{"loglevel=4", "quiet"}, bs.KernelParams)
	assert.Empty(t, bs.InitrdSecrets)

	t.Run("keeps specialisation declaration order", func(t *testing.T) {
		require.Len(t, bs.Specialisations, 2)
		assert.Equal(t, "recovery", bs.Specialisations[0].Name)
		assert.Equal(t, "gaming", bs.Specialisations[1].Name)
	})

	t.Run("nested specialisations are bootspecs", func(t *testing.T) {
		recovery := bs.Specialisations[0].BootSpec
		assert.Equal(t, []string{"single"}, recovery.KernelParams)
		assert.Empty(t, recovery.Initrd)
		assert.Empty(t, recovery.Specialisations)
	})
}

func TestParseMissingField(t *testing.T) {
	t.Run("missing kernel", func(t *testing.T) {
		_, err := bootspec.Parse([]byte(`{"org.nixos.bootspec.v1": {
			"system": "x86_64-linux", "init": "/init", "kernelParams": [],
			"label": "NixOS", "toplevel": "/top"}}`))

		assert.ErrorIs(t, err, bootspec.ErrMissingField)
		assert.Contains(t, err.Error(), "kernel")
	})

	t.Run("missing bootspec object", func(t *testing.T) {
		_, err := bootspec.Parse([]byte(`{}`))

		assert.ErrorIs(t, err, bootspec.ErrMissingField)
	})

	t.Run("broken specialisation fails the whole document", func(t *testing.T) {
		_, err := bootspec.Parse([]byte(`{"org.nixos.bootspec.v1": {
			"system": "x86_64-linux", "init": "/init", "kernel": "/k", "kernelParams": [],
			"label": "NixOS", "toplevel": "/top"},
			"org.nixos.specialisation.v1": {"broken": {"org.nixos.bootspec.v1": {}}}}`))

		assert.ErrorIs(t, err, bootspec.ErrMissingField)
		assert.Contains(t, err.Error(), "specialisation broken")
	})
}

func TestOptions(t *testing.T) {
	bs := &bootspec.BootSpec{Init: "/nix/store/x/init", KernelParams: []string{"quiet", "splash"}}

	assert.Equal(t, "init=/nix/store/x/init quiet splash", bs.Options())
}
