package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the bcinspect configuration file
// (~/.config/bcinspect/config.yaml). Pointer fields distinguish "not set"
// from false.
type Config struct {
	Format     string `yaml:"format"`
	LogLevel   string `yaml:"log_level"`
	Decompress *bool  `yaml:"decompress"`
	Mmap       *bool  `yaml:"mmap"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bcinspect", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields a zero
// Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig applies config file defaults when the corresponding flag was
// not explicitly set.
func applyConfig(c *cli.Command, cfg Config, g *globals) {
	if cfg.Format != "" {
		g.format = cfg.Format
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		g.logLevel = cfg.LogLevel
	}
	if cfg.Decompress != nil && !c.IsSet("decompress") {
		g.decompress = *cfg.Decompress
	}
	if cfg.Mmap != nil && !c.IsSet("mmap") {
		g.mmap = *cfg.Mmap
	}
}
