package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/sagikazarmark/probes/probe"
)

const (
	defaultLogLevel = "info"
)

type Config struct {
	FilePath string `yaml:"-"`

	LogLevel string `yaml:"log_level"`

	// FibonacciIndex is the index the fibonacci command computes when --n is not given.
	FibonacciIndex int64 `yaml:"fibonacci_index"`

	// ProbeInputs are the inputs the exceptions command runs when --input is not given.
	ProbeInputs []int `yaml:"probe_inputs"`

	// Template is the default output template of the classname command.
	Template string `yaml:"template"`
}

func ConfigFilePath(homeDir string) string {
	return filepath.Join(homeDir, ".probes", "config.yaml")
}

func Default(homeDir string) *Config {
	cfg := &Config{
		FilePath: ConfigFilePath(homeDir),
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	return cfg
}

func Load(homeDir string) (*Config, error) {
	path := ConfigFilePath(homeDir)

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(homeDir), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config from YAML: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	cfg.FilePath = path

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.FibonacciIndex == 0 {
		cfg.FibonacciIndex = probe.DefaultFibonacciIndex
	}
	if len(cfg.ProbeInputs) == 0 {
		cfg.ProbeInputs = append([]int(nil), probe.DefaultProbeInputs...)
	}
}

func applyEnvOverrides(cfg *Config) {
	if logLevel := os.Getenv("PROBES_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if index := os.Getenv("PROBES_FIBONACCI_INDEX"); index != "" {
		// invalid values keep the configured index
		if n, err := strconv.ParseInt(index, 10, 64); err == nil {
			cfg.FibonacciIndex = n
		}
	}
}
