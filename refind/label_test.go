package refind_test

import (
	"testing"

	"github.com/nanovms/nixos-refind/bootspec"
	"github.com/nanovms/nixos-refind/refind"
	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	bs := &bootspec.BootSpec{Label: "NixOS 24.05"}

	tests := []struct {
		name           string
		gen            int
		profile        string
		specialisation string
		want           string
	}{
		{"plain generation", 5, "", "", "NixOS Generation 5 24.05"},
		{"default profile adds no qualifier", 5, "system", "", "NixOS Generation 5 24.05"},
		{"named profile and specialisation", 3, "work", "recovery", `NixOS profile "work" Generation 3 (recovery) 24.05`},
		{"specialisation only", 7, "", "gaming", "NixOS Generation 7 (gaming) 24.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := refind.Label(bs, tt.gen, tt.profile, tt.specialisation)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, refind.Label(bs, tt.gen, tt.profile, tt.specialisation))
		})
	}
}

func TestLabelStripsDistributionName(t *testing.T) {
	bs := &bootspec.BootSpec{Label: "  NixOS 24.05.20240101.abcdef (Linux 6.6.8)  "}

	assert.Equal(t, "NixOS Generation 1 24.05.20240101.abcdef (Linux 6.6.8)", refind.Label(bs, 1, "", ""))
}

func TestShownProfile(t *testing.T) {
	one := []bootspec.Profile{{Name: "system"}}
	two := []bootspec.Profile{{Name: "system"}, {Name: "work"}}

	assert.Equal(t, "", refind.ShownProfile(one, "system"))
	assert.Equal(t, "work", refind.ShownProfile(two, "work"))
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "kernel_params", refind.SnakeCase("kernelParams"))
	assert.Equal(t, "default_selection", refind.SnakeCase("defaultSelection"))
	assert.Equal(t, "selection_big", refind.SnakeCase("selectionBig"))
	assert.Equal(t, "timeout", refind.SnakeCase("timeout"))
	assert.Equal(t, "loader", refind.SnakeCase("Loader"))
}
