package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ShellConfig controls how the shell front-end presents itself.
// It never affects command semantics.
type ShellConfig struct {
	Prompt      string `yaml:"prompt" default:"$ "`
	Banner      bool   `yaml:"banner" default:"true"`
	Color       bool   `yaml:"color" default:"true"`
	HistorySize int    `yaml:"history_size" default:"100"`
	Verbose     bool   `yaml:"verbose"`
}

const ConfigFileName = "vfsh.yaml"

// Environment variables recognised by ApplyEnv.
const (
	EnvConfig   = "VFSH_CONFIG"
	EnvNoBanner = "VFSH_NO_BANNER"
	EnvPrompt   = "VFSH_PROMPT"
	EnvVerbose  = "VFSH_VERBOSE"
	EnvHistory  = "VFSH_HISTORY_SIZE"
	EnvNoColor  = "NO_COLOR"
)

// Default returns the configuration used when no file is present.
func Default() *ShellConfig {
	var c ShellConfig
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config: invalid default tags: %v", err))
	}
	return &c
}

// Load reads vfsh.yaml from dir.
func Load(dir string) (*ShellConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Keys absent from the file keep their defaults.
func LoadFile(path string) (*ShellConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", vfsh.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *ShellConfig) Validate() error {
	if c.HistorySize < 0 {
		return fmt.Errorf("%w: history_size must not be negative, got %d", vfsh.ErrInvalidConfig, c.HistorySize)
	}
	return nil
}

// ApplyEnv overlays environment overrides onto the config.
// getenv is usually os.Getenv.
func (c *ShellConfig) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPrompt); v != "" {
		c.Prompt = v
	}
	if isTruthy(getenv(EnvNoBanner)) {
		c.Banner = false
	}
	if getenv(EnvNoColor) != "" {
		c.Color = false
	}
	if isTruthy(getenv(EnvVerbose)) {
		c.Verbose = true
	}
	if v := getenv(EnvHistory); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", vfsh.ErrInvalidConfig, EnvHistory, v)
		}
		c.HistorySize = n
	}
	return c.Validate()
}

func isTruthy(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
