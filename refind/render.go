package refind

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/nanovms/nixos-refind/bootspec"
)

// Markers around the generated NixOS entries in refind.conf.
const (
	EntriesStartMarker = "\n# NixOS boot entries start here\n\n"
	EntriesEndMarker   = "\n# NixOS boot entries end here\n\n"

	// ByProfile groups every generation of a profile under one entry.
	ByProfile = "by-profile"
)

// ErrInvalidTheme is returned when the theme setting is not a path.
var ErrInvalidTheme = errors.New("theme must be a directory")

// KernelStager places kernels and initrds where rEFInd can load them and
// returns the path rEFInd should use.
type KernelStager interface {
	Stage(path string, needSignature bool) (string, error)
}

// AssetInstaller copies theme and artwork files next to refind.conf and
// returns the paths refind.conf refers to them by.
type AssetInstaller interface {
	InstallTheme(dir string) (include string, err error)
	InstallIcon(name, path string) (dir string, err error)
	InstallAsset(name, path string) (rel string, err error)
}

// Renderer produces refind_linux.conf and refind.conf contents, staging
// every kernel the text points to.
type Renderer struct {
	kernels KernelStager
	assets  AssetInstaller
}

// NewRenderer returns a Renderer.
func NewRenderer(kernels KernelStager, assets AssetInstaller) *Renderer {
	return &Renderer{kernels: kernels, assets: assets}
}

func (r *Renderer) stage(bs *bootspec.BootSpec) (loader, initrd string, err error) {
	loader, err = r.kernels.Stage(bs.Kernel, true)
	if err != nil {
		return "", "", err
	}

	if bs.Initrd != "" {
		initrd, err = r.kernels.Stage(bs.Initrd, false)
		if err != nil {
			return "", "", err
		}
	}

	return loader, initrd, nil
}

func (r *Renderer) bootSpecConfig(bs *bootspec.BootSpec) (Config, error) {
	loader, initrd, err := r.stage(bs)
	if err != nil {
		return nil, err
	}

	config := Config{
		{Key: "loader", Value: StringValue(loader)},
		{Key: KeyOptions, Value: StringValue(bs.Options())},
	}
	if initrd != "" {
		config = append(config, Field{Key: "initrd", Value: StringValue(initrd)})
	}

	return config, nil
}

// LinuxConf renders refind_linux.conf: one `"label" "cmdline"` line per
// generation and per specialisation. Specialisation kernels are staged but
// their lines reuse the parent generation's loader and initrd.
func (r *Renderer) LinuxConf(profiles []bootspec.Profile) (string, error) {
	var sb strings.Builder

	for _, profile := range profiles {
		shown := ShownProfile(profiles, profile.Name)

		for _, gen := range profile.Generations {
			bs := gen.BootSpec
			loader, initrd, err := r.stage(bs)
			if err != nil {
				return "", err
			}

			initrdOption := ""
			if initrd != "" {
				initrdOption = " initrd=" + initrd
			}

			writeLinuxLine(&sb, Label(bs, gen.Number, shown, ""), loader, bs.Options(), initrdOption)

			for _, spec := range bs.Specialisations {
				if _, _, err := r.stage(spec.BootSpec); err != nil {
					return "", err
				}

				label := Label(spec.BootSpec, gen.Number, shown, spec.Name)
				writeLinuxLine(&sb, label, loader, spec.BootSpec.Options(), initrdOption)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func writeLinuxLine(sb *strings.Builder, label, loader, options, initrdOption string) {
	sb.WriteString(`"` + label + `" "` + loader + " " + options + initrdOption + `"` + "\n")
}

// MenuEntry renders one top level entry booting the newest generation, with
// its specialisations and every older generation (and theirs) as submenu
// entries. An empty generation list renders nothing.
func (r *Renderer) MenuEntry(gens []bootspec.Generation, profile string) (string, error) {
	if len(gens) == 0 {
		return "", nil
	}

	first, rest := gens[0], gens[1:]
	var subs []Entry

	add := func(label string, bs *bootspec.BootSpec) error {
		config, err := r.bootSpecConfig(bs)
		if err != nil {
			return err
		}
		entry, err := NewSubEntry(label, config)
		if err != nil {
			return err
		}
		subs = append(subs, entry)
		return nil
	}

	for _, spec := range first.BootSpec.Specialisations {
		if err := add(Label(first.BootSpec, first.Number, profile, spec.Name), spec.BootSpec); err != nil {
			return "", err
		}
	}

	for _, gen := range rest {
		if err := add(Label(gen.BootSpec, gen.Number, profile, ""), gen.BootSpec); err != nil {
			return "", err
		}
		for _, spec := range gen.BootSpec.Specialisations {
			if err := add(Label(gen.BootSpec, gen.Number, profile, spec.Name), spec.BootSpec); err != nil {
				return "", err
			}
		}
	}

	config, err := r.bootSpecConfig(first.BootSpec)
	if err != nil {
		return "", err
	}

	submenu, err := SubmenuValue(subs...)
	if err != nil {
		return "", err
	}
	config = append(config, Field{Key: KeySubmenuEntries, Value: submenu})

	return FormatEntry(Label(first.BootSpec, first.Number, profile, ""), config, false)
}

// RefindConf renders refind.conf from the ordered document, copying the
// artwork it references and expanding manageNixOSEntries into the NixOS
// generations of every profile. Any non-null manageNixOSEntries other than
// "by-profile" renders one entry per generation.
func (r *Renderer) RefindConf(doc Config, profiles []bootspec.Profile) (string, error) {
	var sb strings.Builder

	for _, field := range doc {
		if field.Value.IsNull() {
			continue
		}

		var text string
		var err error
		switch field.Key {
		case KeyMenuEntries:
			text, err = r.menuEntries(field.Value)
		case KeyTheme:
			text, err = r.theme(field.Value)
		case KeyExtraIcons:
			text, err = r.extraIcons(field.Value)
		case "banner", "selectionBig", "selectionSmall", "font":
			text, err = r.asset(field.Key, field.Value)
		case KeyManageNixOSEntries:
			text, err = r.nixosEntries(field.Value, profiles)
		default:
			text, err = FormatLine(field.Key, field.Value, "")
		}
		if err != nil {
			return "", err
		}

		sb.WriteString(text)
	}

	return strings.TrimSpace(sb.String()), nil
}

func (r *Renderer) menuEntries(v Value) (string, error) {
	if v.kind != Entries {
		return "", unsupported(KeyMenuEntries, v)
	}

	var sb strings.Builder
	for _, entry := range v.entries {
		block, err := FormatEntry(entry.Name, entry.Config, false)
		if err != nil {
			return "", err
		}
		sb.WriteString(block)
	}
	return sb.String(), nil
}

func (r *Renderer) theme(v Value) (string, error) {
	if v.kind != String {
		return "", ErrInvalidTheme
	}

	include, err := r.assets.InstallTheme(v.s)
	if err != nil {
		return "", err
	}
	return "include " + include + "\n", nil
}

func (r *Renderer) extraIcons(v Value) (string, error) {
	if v.kind != Map {
		return "", unsupported(KeyExtraIcons, v)
	}
	if len(v.pairs) == 0 {
		return "", nil
	}

	var dir string
	for _, icon := range v.pairs {
		var err error
		dir, err = r.assets.InstallIcon(icon.Key, icon.Value)
		if err != nil {
			return "", err
		}
	}
	return "icons_dir " + dir + "\n", nil
}

func (r *Renderer) asset(key string, v Value) (string, error) {
	if v.kind != String {
		return "", unsupported(key, v)
	}

	name := SnakeCase(key)
	rel, err := r.assets.InstallAsset(name, v.s)
	if err != nil {
		return "", err
	}
	return name + " " + rel + "\n", nil
}

func (r *Renderer) nixosEntries(v Value, profiles []bootspec.Profile) (string, error) {
	var sb strings.Builder
	sb.WriteString(EntriesStartMarker)

	for _, profile := range profiles {
		shown := ShownProfile(profiles, profile.Name)

		if v.kind == String && v.s == ByProfile {
			block, err := r.MenuEntry(profile.Generations, shown)
			if err != nil {
				return "", err
			}
			sb.WriteString(block)
			continue
		}

		for _, gen := range profile.Generations {
			block, err := r.MenuEntry([]bootspec.Generation{gen}, shown)
			if err != nil {
				return "", err
			}
			sb.WriteString(block)
		}
	}

	sb.WriteString(EntriesEndMarker)
	return sb.String(), nil
}
