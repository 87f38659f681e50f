//go:build !linux

package installer

// SyncFS is a no-op where syncfs(2) is not available.
func SyncFS(mountPoint string) error {
	return nil
}
