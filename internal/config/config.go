// Package config resolves where the ledger lives and how reports are shown.
// Settings come from command-line flags, the environment (optionally seeded
// from a .env file) and a YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledger/internal/model"
)

const (
	// DefaultFileName is the config file looked up in the working directory.
	DefaultFileName = ".ledger.yaml"
	// DefaultEnvFile is loaded into the environment when present.
	DefaultEnvFile = ".env"
	// EnvLedgerFile names the ledger document.
	EnvLedgerFile = "LEDGER_FILE"
	// EnvConfigFile overrides DefaultFileName.
	EnvConfigFile = "LEDGER_CONFIG"
)

// Config is the contents of the YAML config file.
type Config struct {
	LedgerFile string    `yaml:"ledger_file,omitempty"`
	Format     string    `yaml:"format"` // auto, plain, color or csv
	Color      bool      `yaml:"color"`  // false keeps auto format uncolored
	Git        GitConfig `yaml:"git"`
}

// GitConfig controls committing ledger changes when the ledger directory is
// a git repository.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Default returns the settings used when no config file exists.
func Default(ledgerFile string) *Config {
	return &Config{
		LedgerFile: ledgerFile,
		Format:     "auto",
		Color:      true,
		Git: GitConfig{
			AuthorName:  "ledger",
			AuthorEmail: "ledger@localhost",
		},
	}
}

// Load reads a config file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config: %w", model.ErrIO, err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config %s: %w", model.ErrParsing, path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing config: %w", model.ErrIO, err)
	}
	return nil
}

// Options carries the command-line side of resolution.
type Options struct {
	File       string // --file; wins over everything else
	ConfigPath string // --config; "" means LEDGER_CONFIG, then DefaultFileName
	EnvFile    string // "" means DefaultEnvFile, skipped when absent
}

// Resolve loads the environment and config file and settles the ledger path.
//
// The ledger path is taken from opts.File, then LEDGER_FILE, then the config
// file's ledger_file (relative paths there are relative to the config file).
// It is an ErrInvalidInput error for all three to be empty.
func Resolve(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("%w: loading %s: %w", model.ErrIO, opts.EnvFile, err)
		}
	} else {
		_ = godotenv.Load(DefaultEnvFile)
	}

	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	switch {
	case opts.File != "":
		cfg.LedgerFile = opts.File
	case os.Getenv(EnvLedgerFile) != "":
		cfg.LedgerFile = os.Getenv(EnvLedgerFile)
	}

	if cfg.LedgerFile == "" {
		return nil, fmt.Errorf("%w: no ledger file: pass --file, set %s or add ledger_file to %s",
			model.ErrInvalidInput, EnvLedgerFile, DefaultFileName)
	}
	return cfg, nil
}

// loadConfigFile reads the explicit config path, which must exist, or the
// implicit one, which may be absent.
func loadConfigFile(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		path = DefaultFileName
		explicit = false
	}

	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(""), nil
		}
		return nil, err
	}

	if cfg.LedgerFile != "" && !filepath.IsAbs(cfg.LedgerFile) {
		cfg.LedgerFile = filepath.Join(filepath.Dir(path), cfg.LedgerFile)
	}
	return cfg, nil
}
