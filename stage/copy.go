package stage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

// CopyFile copies src to dst, replacing dst.
func CopyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return errors.WrapPrefix(err, "copying "+src, 0)
	}
	return out.Close()
}

// CopyDir copies the tree rooted at src to dst.
func CopyDir(fs afero.Fs, src, dst string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fs.MkdirAll(target, 0755)
		}
		return CopyFile(fs, path, target)
	})
}
