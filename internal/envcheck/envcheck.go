// Package envcheck validates a scaffold target before anything reads
// or writes it: the directory must exist, be traversable, be writable,
// and sit on a filesystem with room to spare. Problems are collected,
// not returned one at a time.
package envcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MinFreeSpaceMB is the free-space floor for a scaffold target.
const MinFreeSpaceMB = 100

// Result lists every problem found with a target directory.
type Result struct {
	Errors []string
}

func (r *Result) add(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// OK reports whether the target passed every check.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Summary formats the result for terminal output, one numbered line
// per problem.
func (r *Result) Summary() string {
	if r.OK() {
		return "directory validation passed"
	}
	var b strings.Builder
	b.WriteString("directory validation failed:")
	for i, msg := range r.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, msg)
	}
	return b.String()
}

// Validate checks dir as a scaffold target. A missing directory is
// reported along with what is wrong with its parent, so the user
// learns everything in one pass.
func Validate(dir string) Result {
	var res Result
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		res.add("target directory does not exist: %s", dir)
		validateParent(dir, &res)
	case err != nil:
		res.add("system error accessing directory: %v", err)
	case !info.IsDir():
		res.add("path exists but is not a directory: %s", dir)
	default:
		validateExisting(dir, &res)
	}
	return res
}

func validateExisting(dir string, res *Result) {
	if !canRead(dir) {
		res.add("no read permission for directory: %s", dir)
	}
	if !canWrite(dir) {
		res.add("no write permission for directory: %s", dir)
	}
	// Execute permission is what lets us traverse into the directory.
	if !canExecute(dir) {
		res.add("no execute permission for directory: %s", dir)
	}
	checkDiskSpace(dir, res)
}

func validateParent(dir string, res *Result) {
	parent := filepath.Dir(dir)
	if _, err := os.Stat(parent); errors.Is(err, fs.ErrNotExist) {
		res.add("parent directory does not exist: %s", parent)
		return
	}
	if !canWrite(parent) {
		res.add("no write permission in parent directory: %s", parent)
	}
	checkDiskSpace(parent, res)
}

func checkDiskSpace(dir string, res *Result) {
	free, ok := freeSpaceMB(dir)
	if !ok {
		// No usable filesystem stats on this platform; skip the check
		// rather than fail the run.
		return
	}
	if free < MinFreeSpaceMB {
		res.add("insufficient disk space: %.1fMB available, %dMB required", free, MinFreeSpaceMB)
	}
}
