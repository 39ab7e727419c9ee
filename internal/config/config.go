package config

import (
	"fmt"
	"os"

	"github.com/compdb-dev/compdb/internal/compdb"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-repo config file read from the working directory.
const FileName = ".compdb.yaml"

const (
	DefaultBuildConfig = "dbg"
	DefaultProfile     = "clang"
)

type Config struct {
	Version     int    `yaml:"version"`
	Plz         string `yaml:"plz"`
	BuildConfig string `yaml:"build_config"`
	Profile     string `yaml:"profile"`
	Output      string `yaml:"output"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:     1,
		Plz:         "plz",
		BuildConfig: DefaultBuildConfig,
		Profile:     DefaultProfile,
		Output:      compdb.DatabaseFile,
	}
}

// Load reads the config file at path. A missing file yields defaults; fields
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported %s version: %d", FileName, cfg.Version)
	}

	return cfg, nil
}
