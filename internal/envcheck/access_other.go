//go:build !linux && !darwin

package envcheck

import "os"

// Without faccessat, approximate: stat succeeding is treated as
// readable and traversable, and writability is probed by the scaffold
// writes themselves.
func canRead(dir string) bool {
	_, err := os.Stat(dir)
	return err == nil
}

func canWrite(dir string) bool {
	return true
}

func canExecute(dir string) bool {
	return true
}

func freeSpaceMB(dir string) (float64, bool) {
	return 0, false
}
