package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional tally.toml manifest.
type fileConfig struct {
	Output  outputConfig  `toml:"output"`
	Server  serverConfig  `toml:"server"`
	History historyConfig `toml:"history"`
}

type outputConfig struct {
	// Precision is the number of decimal places; -1 means shortest form.
	Precision int `toml:"precision"`
}

type serverConfig struct {
	Addr string `toml:"addr"`
}

type historyConfig struct {
	Disabled bool `toml:"disabled"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Output: outputConfig{Precision: -1},
		Server: serverConfig{Addr: ":8080"},
	}
}

// findTallyToml walks upward from startDir looking for tally.toml.
func findTallyToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tally.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the manifest merged over defaults. A missing manifest
// is not an error; the defaults apply.
func loadConfig() (fileConfig, error) {
	cfg := defaultConfig()
	path, ok, err := findTallyToml(".")
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
