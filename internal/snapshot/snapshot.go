// Package snapshot takes a read-only inventory of the target directory.
// Every scaffolding decision is made against this single scan; changes
// to the directory after the scan are not observed.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot records what existed in the target directory at scan time.
type Snapshot struct {
	Dir         string
	ProjectName string

	entries map[string]bool
	dirs    map[string]bool
}

// Take scans dir once. It fails when dir does not exist or is not a
// directory; it never creates or modifies anything.
func Take(dir string) (*Snapshot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve target dir: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("target directory does not exist: %s", abs)
		}
		return nil, fmt.Errorf("stat target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target is not a directory: %s", abs)
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read target directory: %w", err)
	}

	snap := &Snapshot{
		Dir:         abs,
		ProjectName: filepath.Base(abs),
		entries:     make(map[string]bool, len(dirEntries)),
		dirs:        make(map[string]bool),
	}
	for _, e := range dirEntries {
		snap.entries[e.Name()] = true
		if e.IsDir() {
			snap.dirs[e.Name()] = true
		}
	}
	return snap, nil
}

// FileExists reports whether an entry with the given name existed at
// scan time. Directories count: a directory occupying a target filename
// blocks creation the same way a file does.
func (s *Snapshot) FileExists(name string) bool {
	return s.entries[name]
}

// HasSrcLayout reports whether a src/ directory existed at scan time.
func (s *Snapshot) HasSrcLayout() bool {
	return s.dirs["src"]
}

// HasTests reports whether a tests/ directory existed at scan time.
func (s *Snapshot) HasTests() bool {
	return s.dirs["tests"]
}
