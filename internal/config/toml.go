// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Store  StoreConfig  `toml:"store"`
	Report ReportConfig `toml:"report"`
}

// StoreConfig maps record store settings.
type StoreConfig struct {
	Backend *string `toml:"backend"`
	Path    *string `toml:"path"`
}

// ReportConfig maps report presentation settings.
type ReportConfig struct {
	PlotHeight *int  `toml:"plot-height"`
	Color      *bool `toml:"color"`
	AvgWindow  *int  `toml:"avg-window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
