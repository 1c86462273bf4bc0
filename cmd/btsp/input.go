package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Input contains the flags of the root and solve commands.
type Input struct {
	configPath string
	verbose    bool
	logFormat  string

	instancePath string
	path         []int
	exact        bool
	cachePath    string
	format       string
	validate     bool
	report       bool
}

// Config is the optional YAML configuration file. Flags given on the
// command line win over it.
type Config struct {
	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
	Cache     string `yaml:"cache"`
	Format    string `yaml:"format"`
	Validate  *bool  `yaml:"validate"`
	Report    *bool  `yaml:"report"`
}

func readConfig(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", file, err)
	}
	return &c, nil
}
