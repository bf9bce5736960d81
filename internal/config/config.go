package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "radar.yaml"

// DefaultDataFile is the radar data artifact path relative to the docs directory.
var DefaultDataFile = filepath.Join("javascripts", "radar-data.js")

// Config is the in-memory representation of radar.yaml.
//
// An empty DataFile means the artifact follows the docs directory; use DataPath.
type Config struct {
	DocsDir   string `yaml:"docs_dir"`
	DataFile  string `yaml:"data_file,omitempty"`
	IndexFile string `yaml:"index_file,omitempty"`
}

// DefaultConfig returns the layout of a stock mkdocs radar site.
func DefaultConfig() *Config {
	return &Config{
		DocsDir:   "docs",
		IndexFile: "index.md",
	}
}

// DataPath returns where the radar data artifact is written: data_file when set
// explicitly, <docs>/javascripts/radar-data.js otherwise.
func (c *Config) DataPath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	return filepath.Join(c.DocsDir, DefaultDataFile)
}

// ExpandPath expands "~" and a leading "~/" to the user's home directory.
// Other paths, including "~user/...", are returned unchanged.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Load reads path. A missing file yields DefaultConfig. Relative paths in the
// result are resolved against the directory holding path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}
	if cfg.IndexFile == "" {
		cfg.IndexFile = "index.md"
	}
	if strings.ContainsAny(cfg.IndexFile, `/\`) {
		return nil, fmt.Errorf("index_file must be a file name, got %q", cfg.IndexFile)
	}

	base := filepath.Dir(path)
	if cfg.DocsDir, err = resolve(base, cfg.DocsDir); err != nil {
		return nil, err
	}
	if cfg.DataFile, err = resolve(base, cfg.DataFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save marshals cfg and writes it to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func resolve(base, p string) (string, error) {
	p, err := ExpandPath(p)
	if err != nil {
		return "", err
	}
	if p == "" || filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(base, p), nil
}
