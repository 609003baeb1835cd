// Package config handles the XDG configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"todo/internal/todo"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// StoreDir is the directory used by the file store.
	StoreDir = "store"

	// DBFile is the SQLite database filename.
	DBFile = "todo.db"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Store selects the storage backend: "file" or "sqlite".
	Store string `yaml:"store" env:"TODO_STORE"`

	// TaskTemplate is the task inserted by add when no title is given.
	TaskTemplate TaskTemplate `yaml:"task_template"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug" env:"TODO_DEBUG"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`
}

// TaskTemplate mirrors todo.Template in the config file.
type TaskTemplate struct {
	Name   string `yaml:"name" env:"TODO_TASK_NAME"`
	IsDone bool   `yaml:"is_done"`
	IsFav  bool   `yaml:"is_fav"`
}

// Template converts the configured template to the domain type.
func (t TaskTemplate) Template() todo.Template {
	return todo.Template{Name: t.Name, IsDone: t.IsDone, IsFav: t.IsFav}
}

// New creates a Config with defaults in the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// The config file and environment are not consulted; see Load.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:   dir,
		Store: StoreFile,
		TaskTemplate: TaskTemplate{
			Name:   todo.DefaultTemplate.Name,
			IsDone: todo.DefaultTemplate.IsDone,
			IsFav:  todo.DefaultTemplate.IsFav,
		},
	}, nil
}

// Load creates a Config like New, then applies config.yaml (if present)
// and environment overrides, in that order.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
		return nil
	default:
		return fmt.Errorf("unknown store: %q (want %q or %q)", c.Store, StoreFile, StoreSQLite)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to the config file.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// StorePath returns the directory of the file store.
func (c *Config) StorePath() string {
	return filepath.Join(c.Dir, StoreDir)
}

// DBPath returns the path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.Dir, DBFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
