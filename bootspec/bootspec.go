// Package bootspec models the NixOS bootspec documents (boot.json) that
// describe how to boot a system generation.
package bootspec

import (
	"strings"
)

// Document keys of the bootspec extensions this package understands.
const (
	V1Key             = "org.nixos.bootspec.v1"
	SpecialisationKey = "org.nixos.specialisation.v1"
)

// BootSpec describes how to boot one generation.
type BootSpec struct {
	System       string
	Init         string
	Kernel       string
	KernelParams []string
	Label        string
	Toplevel     string

	// Initrd and InitrdSecrets are empty when the generation has none.
	Initrd        string
	InitrdSecrets string

	// Specialisations are kept in declaration order.
	Specialisations []Specialisation
}

// Specialisation is a named variant of a generation.
type Specialisation struct {
	Name     string
	BootSpec *BootSpec
}

// Options returns the kernel command line without the loader and initrd.
func (bs *BootSpec) Options() string {
	args := append([]string{"init=" + bs.Init}, bs.KernelParams...)
	return strings.TrimSpace(strings.Join(args, " "))
}

// Generation is a numbered build of a profile.
type Generation struct {
	Number   int
	BootSpec *BootSpec
}

// Profile is a named lineage of generations, newest first.
type Profile struct {
	Name        string
	Generations []Generation
}
