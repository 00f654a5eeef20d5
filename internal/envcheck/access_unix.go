//go:build linux || darwin

package envcheck

import "golang.org/x/sys/unix"

func canRead(dir string) bool {
	return unix.Access(dir, unix.R_OK) == nil
}

func canWrite(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}

func canExecute(dir string) bool {
	return unix.Access(dir, unix.X_OK) == nil
}

// freeSpaceMB reports the free space available to unprivileged writes
// on dir's filesystem.
func freeSpaceMB(dir string) (float64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return 0, false
	}
	free := uint64(st.Bavail) * uint64(st.Bsize)
	return float64(free) / (1024 * 1024), true
}
