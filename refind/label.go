package refind

import (
	"strconv"
	"strings"

	"github.com/nanovms/nixos-refind/bootspec"
	"github.com/nanovms/nixos-refind/constants"
)

// Label names the boot entry of a generation, optionally qualified by its
// profile and specialisation. An empty profile or the default profile
// adds no qualifier, an empty specialisation adds none either.
func Label(bs *bootspec.BootSpec, gen int, profile, specialisation string) string {
	var sb strings.Builder

	sb.WriteString("NixOS")
	if profile != "" && profile != constants.DefaultProfile {
		sb.WriteString(` profile "` + profile + `"`)
	}

	sb.WriteString(" Generation ")
	sb.WriteString(strconv.Itoa(gen))

	if specialisation != "" {
		sb.WriteString(" (" + specialisation + ")")
	}

	sb.WriteString(" ")
	sb.WriteString(strings.TrimSpace(strings.ReplaceAll(bs.Label, "NixOS", "")))

	return sb.String()
}

// ShownProfile returns the profile name to put in labels: profiles are
// only told apart when there is more than one.
func ShownProfile(profiles []bootspec.Profile, name string) string {
	if len(profiles) > 1 {
		return name
	}
	return ""
}
