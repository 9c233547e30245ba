package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigPathEnv names a YAML file that must exist when set.
const ConfigPathEnv = "CONFIG_PATH"

const configFileName = "config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The file is $CONFIG_PATH when set, otherwise the first of ./config.yaml
// and ~/.algo-rewind/config.yaml that exists. The home lookup lets the CLI
// share one config from any working directory. With no file, ENV and
// defaults are used. Validation then resolves an empty store.path to
// ~/.algo-rewind/problems.json.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", describeSource(path), err)
	}

	return &cfg, nil
}

func findConfigFile() (string, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: %s=%s: %w", ConfigPathEnv, path, err)
		}
		return path, nil
	}

	candidates := []string{configFileName}
	if dir, err := appDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, configFileName))
	}

	for _, path := range candidates {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return path, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	return "", nil
}

func describeSource(path string) string {
	if path == "" {
		return "environment"
	}
	return path
}
