// Package yaml loads mosaic settings from a YAML file.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/mosaic"
	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is where extracted records are written when no
// directory is configured.
const DefaultOutputDir = "results"

// Config represents the structure of a mosaic config file.
type Config struct {
	Origin    string           `yaml:"origin"`
	OutputDir string           `yaml:"output_dir"`
	Selectors mosaic.Selectors `yaml:"selectors"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Origin:    mosaic.DefaultOrigin,
		OutputDir: DefaultOutputDir,
		Selectors: mosaic.DefaultSelectors(),
	}
}

// LoadConfig reads the config file at path. An empty path returns the
// defaults. Fields missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, mosaic.Errorf(mosaic.ENOTFOUND, "config file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, mosaic.Errorf(mosaic.EINVALID, "invalid config file %s: %v", path, err)
	}

	cfg.Selectors = cfg.Selectors.WithDefaults()
	if cfg.Origin == "" {
		cfg.Origin = mosaic.DefaultOrigin
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	return cfg, nil
}
