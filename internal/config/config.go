// Package config loads optional threshold files for blast-filter.
//
//	[filter]
//	pident = 90
//	qcovs  = 80
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type FilterConfig struct {
	PIdent *int `toml:"pident"`
	QCovs  *int `toml:"qcovs"`
}

type Config struct {
	Filter FilterConfig `toml:"filter"`
}

// Load reads and strictly decodes a TOML config; unknown keys are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML '%s': %w", path, err)
	}

	return &cfg, nil
}
