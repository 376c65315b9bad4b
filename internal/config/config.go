package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hooklint/hooklint/internal/tool"
)

const FileName = ".hooklint.toml"

// Config holds repo-level defaults for the hooks. Everything is optional;
// command-line arguments always win.
type Config struct {
	Tools map[string]ToolConfig `toml:"tools"`
}

// ToolConfig tunes one tool for the whole repository.
type ToolConfig struct {
	// Args are fixed flags inserted before the caller's flags.
	Args []string `toml:"args"`
	// Version pins the tool version, same semantics as --version.
	Version string `toml:"version"`
	// Files overrides the default file globs for the tool.
	Files []string `toml:"files"`
}

// Load finds and parses the nearest .hooklint.toml, walking up from dir.
// A missing file is not an error: everything defaults.
func Load(dir string) (Config, error) {
	path, ok := find(dir)
	if !ok {
		return Config{}, nil
	}
	return ParseFile(path)
}

func ParseFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for id := range cfg.Tools {
		if _, ok := tool.Lookup(id); !ok {
			return Config{}, fmt.Errorf("%s: unknown tool %q", path, id)
		}
	}
	return cfg, nil
}

// Tool returns the configuration for one tool, zero-valued when absent.
func (c Config) Tool(id string) ToolConfig {
	if c.Tools == nil {
		return ToolConfig{}
	}
	return c.Tools[id]
}

func find(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, FileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}
