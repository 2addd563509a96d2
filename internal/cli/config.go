package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backend names.
const (
	StorageSQLite = "sqlite"
	StorageDiskv  = "diskv"
)

// Config holds CLI configuration persisted to disk.
type Config struct {
	Storage       string `yaml:"storage,omitempty"`
	DataDir       string `yaml:"data_dir,omitempty"`
	Port          int    `yaml:"port,omitempty"`
	MaxValueBytes int    `yaml:"max_value_bytes,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sauna-itta", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk. Returns a zero-value
// config if the file doesn't exist.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// resolveStorage returns the backend name from flag, env, config, or
// the sqlite default.
func (c Config) resolveStorage() string {
	if flagStorage != "" {
		return flagStorage
	}
	if v := os.Getenv("SI_STORAGE"); v != "" {
		return v
	}
	if c.Storage != "" {
		return c.Storage
	}
	return StorageSQLite
}

// resolveDataDir returns the data directory from flag, env, config,
// or ~/.sauna-itta.
func (c Config) resolveDataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if v := os.Getenv("SI_DATA_DIR"); v != "" {
		return v
	}
	if c.DataDir != "" {
		return c.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sauna-itta"
	}
	return filepath.Join(home, ".sauna-itta")
}

func (c Config) sqlitePath() string {
	return filepath.Join(c.resolveDataDir(), "visits.db")
}

func (c Config) diskvPath() string {
	return filepath.Join(c.resolveDataDir(), "kv")
}

// resolvePort returns the serve port from config or the 8080 default.
func (c Config) resolvePort() int {
	if c.Port > 0 {
		return c.Port
	}
	return 8080
}
