// Package config loads optional user defaults for scaffold runs: a
// project-level .skello.yaml wins over the user-level config file, and
// a missing file simply means built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigDir overrides the user-level config directory.
	EnvConfigDir = "SKELLO_CONFIG_DIR"
	// FileName is the config filename inside the user config directory.
	FileName = "config.yaml"
	// ProjectFileName is the per-project override, looked up in the
	// target directory.
	ProjectFileName = ".skello.yaml"
)

type Config struct {
	Defaults Defaults `yaml:"defaults"`
}

// Defaults fill in request options the user left out. Resolution order
// for any value is request option, then config, then built-in.
type Defaults struct {
	Author  string `yaml:"author"`
	License string `yaml:"license"`
}

// Dir returns the user-level config directory, honoring EnvConfigDir.
func Dir() (string, error) {
	if d := os.Getenv(EnvConfigDir); d != "" {
		return d, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "skello"), nil
}

// Load reads defaults for a run against targetDir. Missing files yield
// zero values; a malformed file is an error.
func Load(targetDir string) (Config, error) {
	cfg, err := read(filepath.Join(targetDir, ProjectFileName))
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	cfg, err = read(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

func read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Init writes a starter user-level config file and returns its path.
// It refuses to overwrite an existing one.
func Init(cfg Config) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := writeAtomic(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic marshals cfg and lands it with a temp-file rename, so a
// crash mid-write never leaves a half-written config behind.
func writeAtomic(path string, cfg Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".skello-tmp-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Re-read and parse before the rename: a config file that cannot
	// round-trip must never land.
	written, err := os.ReadFile(tmpName)
	if err != nil {
		return fmt.Errorf("read temp file for validation: %w", err)
	}
	var check Config
	if err := yaml.Unmarshal(written, &check); err != nil {
		return fmt.Errorf("yaml validation failed: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
