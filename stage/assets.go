package stage

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

// Directories under the rEFInd directory holding copied artwork. They are
// removed before every install.
const (
	ThemesDir = "themes"
	IconsDir  = "extra-icons"
	AssetsDir = "assets"
)

// ErrNotDirectory is returned for a theme that is not a directory.
var ErrNotDirectory = errors.New("theme must be a directory")

// Assets copies theme and artwork files next to refind.conf.
type Assets struct {
	fs  afero.Fs
	dir string
}

// NewAssets returns an asset installer writing below refindDir.
func NewAssets(fs afero.Fs, refindDir string) *Assets {
	return &Assets{fs: fs, dir: refindDir}
}

// InstallTheme copies the theme directory and returns its include path.
func (a *Assets) InstallTheme(src string) (string, error) {
	isDir, err := afero.IsDir(a.fs, src)
	if err != nil || !isDir {
		return "", errors.Errorf("%w: %s", ErrNotDirectory, src)
	}

	name := filepath.Base(strings.TrimRight(src, `/\`))
	themes := filepath.Join(a.dir, ThemesDir)
	if err := a.fs.MkdirAll(themes, 0755); err != nil {
		return "", errors.Wrap(err, 0)
	}

	if err := CopyDir(a.fs, src, filepath.Join(themes, name)); err != nil {
		return "", errors.WrapPrefix(err, "copying theme "+src, 0)
	}

	return path.Join(ThemesDir, name, "theme.conf"), nil
}

// InstallIcon copies an icon under the given file name and returns the
// icon directory.
func (a *Assets) InstallIcon(name, src string) (string, error) {
	icons := filepath.Join(a.dir, IconsDir)
	if err := a.fs.MkdirAll(icons, 0755); err != nil {
		return "", errors.Wrap(err, 0)
	}

	if err := CopyFile(a.fs, src, filepath.Join(icons, name)); err != nil {
		return "", err
	}
	return IconsDir, nil
}

// InstallAsset copies a banner, selection image or font as name with the
// source extension and returns its path.
func (a *Assets) InstallAsset(name, src string) (string, error) {
	assets := filepath.Join(a.dir, AssetsDir)
	if err := a.fs.MkdirAll(assets, 0755); err != nil {
		return "", errors.Wrap(err, 0)
	}

	file := name + filepath.Ext(src)
	if err := CopyFile(a.fs, src, filepath.Join(assets, file)); err != nil {
		return "", err
	}
	return path.Join(AssetsDir, file), nil
}
