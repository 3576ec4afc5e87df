package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Resolve builds the effective configuration.
//
// Precedence (highest first): environment variables, the explicit path,
// $VFSH_CONFIG, ./vfsh.yaml, defaults. A .env file in the working directory
// is loaded into the environment first; variables already set win over it.
// An explicit path that does not exist is an error; an implicit one is not.
func Resolve(explicitPath string) (*ShellConfig, error) {
	_ = godotenv.Load()

	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	var cfg *ShellConfig
	var err error
	if path != "" {
		cfg, err = LoadFile(path)
	} else {
		cfg, err = Load(".")
		if errors.Is(err, ErrConfigNotFound) {
			cfg, err = Default(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}
