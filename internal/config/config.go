package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the settings read from the environment.
type Config struct {
	Username string `env:"TODO_USERNAME" envDefault:"Gopher"`
	Env      string `env:"TODO_ENV" envDefault:"production"` // "development" or "production"
	AppTitle string `env:"TODO_APP_TITLE" envDefault:"Hooks demo"`
	Dark     bool   `env:"TODO_DARK" envDefault:"false"`

	LogLevel string `env:"TODO_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"TODO_LOG_FILE"` // empty means the user cache dir
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDevelopment selects human-readable log output.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// LogPath returns where logs go: TODO_LOG_FILE when set, otherwise
// todohooks/todo.log under the user cache dir, created if missing.
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cache dir: %w", err)
	}
	dir := filepath.Join(base, "todohooks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return filepath.Join(dir, "todo.log"), nil
}
