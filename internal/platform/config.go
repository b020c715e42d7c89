package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config is the content of rapport.yaml. Environment variables override the file.
type Config struct {
	// File is the path the config was read from; empty when no file exists.
	File string `yaml:"-" env:"-"`

	DataFile   string `yaml:"data_file" env:"RAPPORT_DATA_FILE" default:"data/addressbook.json"`
	Adapter    string `yaml:"adapter" env:"RAPPORT_ADAPTER" default:"fs"`
	Versioning bool   `yaml:"versioning" env:"RAPPORT_VERSIONING"`
	ReadOnly   bool   `yaml:"read_only" env:"RAPPORT_READ_ONLY"`
	Strict     bool   `yaml:"strict" env:"RAPPORT_STRICT"`
	// Watch reloads the shell when the data file changes on disk.
	Watch bool `yaml:"watch" env:"RAPPORT_WATCH"`
}

// LoadConfig reads the config file at path, if it exists, on top of the
// defaults and then applies environment overrides. A relative data file is
// resolved against the directory of the config file.
func LoadConfig(path string) (*Config, error) {
	c := new(Config)
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("set default config: %w", err)
	}

	if path != "" {
		realpath, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(realpath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", realpath, err)
			}
			c.File = realpath
		}
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if c.File != "" && !filepath.IsAbs(c.DataFile) {
		c.DataFile = filepath.Join(filepath.Dir(c.File), c.DataFile)
	}
	return c, nil
}

// Save writes the config to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	c.File = path
	return nil
}

// Options converts the config into platform options.
func (c *Config) Options() []Option {
	return []Option{
		WithAdapter(c.Adapter),
		WithVersioning(c.Versioning),
		WithReadOnly(c.ReadOnly),
		WithStrict(c.Strict),
	}
}
