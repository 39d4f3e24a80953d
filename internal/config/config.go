// Package config loads the optional `.glox.yaml` file that supplies
// default values for repeated diagnostic flags, so a developer running
// `run --trace --dump-env` over and over can pin those flags once instead
// of retyping them (SPEC_FULL.md §6). Explicit command-line flags always
// override a config-file value.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// FileName is the config file's name, looked up first in the current
// working directory and then in the user's home directory.
const FileName = ".glox.yaml"

// Config holds the flag defaults a `.glox.yaml` file may set.
type Config struct {
	Trace   bool `yaml:"trace"`
	DumpAST bool `yaml:"dump_ast"`
	DumpEnv bool `yaml:"dump_env"`
	JSON    bool `yaml:"json"`
}

// Load searches the current directory and then $HOME for FileName,
// returning a zero-value Config (all defaults false) if neither has one.
// A malformed file that exists is a hard error; a missing file is not.
func Load() (*Config, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, FileName)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
