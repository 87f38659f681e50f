package installer

import (
	"github.com/go-errors/errors"
	"golang.org/x/sys/unix"
)

// SyncFS flushes the file system holding mountPoint. FAT keeps little
// recovery data, so an update is synced before the installer returns.
func SyncFS(mountPoint string) error {
	fd, err := unix.Open(mountPoint, unix.O_RDONLY, 0)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer unix.Close(fd)

	if err := unix.Syncfs(fd); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
