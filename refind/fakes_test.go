package refind_test

import (
	"path/filepath"

	"github.com/nanovms/nixos-refind/bootspec"
)

type fakeStager struct {
	staged []string
	fail   map[string]error
}

func (s *fakeStager) Stage(path string, needSignature bool) (string, error) {
	if err := s.fail[path]; err != nil {
		return "", err
	}
	s.staged = append(s.staged, path)
	return "/efi/nixos/" + filepath.Base(filepath.Dir(path)) + "-" + filepath.Base(path), nil
}

type fakeAssets struct {
	themes []string
	icons  []string
	assets []string
}

func (a *fakeAssets) InstallTheme(dir string) (string, error) {
	a.themes = append(a.themes, dir)
	return filepath.Join("themes", filepath.Base(dir), "theme.conf"), nil
}

func (a *fakeAssets) InstallIcon(name, path string) (string, error) {
	a.icons = append(a.icons, name)
	return "extra-icons", nil
}

func (a *fakeAssets) InstallAsset(name, path string) (string, error) {
	a.assets = append(a.assets, name)
	return filepath.Join("assets", name+filepath.Ext(path)), nil
}

// twoGenerations is generation 5 with a recovery specialisation and an
// older generation 4 without any.
func twoGenerations() []bootspec.Generation {
	recovery := &bootspec.BootSpec{
		Init:         "/nix/store/r5-nixos-system/init",
		Kernel:       "/nix/store/k5r-linux/bzImage",
		KernelParams: []string{"single"},
		Label:        "NixOS 24.05",
		Initrd:       "/nix/store/i5-initrd/initrd",
	}

	return []bootspec.Generation{
		{
			Number: 5,
			BootSpec: &bootspec.BootSpec{
				Init:            "/nix/store/s5-nixos-system/init",
				Kernel:          "/nix/store/k5-linux/bzImage",
				KernelParams:    []string{"quiet"},
				Label:           "NixOS 24.05",
				Initrd:          "/nix/store/i5-initrd/initrd",
				Specialisations: []bootspec.Specialisation{{Name: "recovery", BootSpec: recovery}},
			},
		},
		{
			Number: 4,
			BootSpec: &bootspec.BootSpec{
				Init:         "/nix/store/s4-nixos-system/init",
				Kernel:       "/nix/store/k4-linux/bzImage",
				KernelParams: []string{"quiet"},
				Label:        "NixOS 23.11",
			},
		},
	}
}
