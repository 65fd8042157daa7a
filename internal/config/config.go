// Package config contains everything related to configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	SourcePath    string        `validate:"required"`
	SoundsDir     string        `validate:"required"`
	LogPath       string        `validate:"required"`
	LogLevel      string        `validate:"oneof=debug info warn warning error"`
	HistoryFiles  []string      `validate:"dive,required"`
	MdfindTimeout time.Duration `validate:"gt=0"`
	PmsetTimeout  time.Duration `validate:"gt=0"`
	Year          int           `validate:"min=1,max=9999"`
	EnableSound   bool
	EnableNotify  bool
	WatchSource   bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default values
const (
	defaultMdfindTimeout = 5 * time.Second
	defaultPmsetTimeout  = 3 * time.Second
	defaultLogLevel      = "info"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		Year:          getEnvInt("MACWRAP_YEAR", time.Now().Year()),
		SourcePath:    getEnvString("SCREEN_TIME_DB", getDefaultSourcePath()),
		HistoryFiles:  getEnvList("HISTORY_FILES", getDefaultHistoryFiles()),
		MdfindTimeout: getEnvDuration("MDFIND_TIMEOUT", defaultMdfindTimeout),
		PmsetTimeout:  getEnvDuration("PMSET_TIMEOUT", defaultPmsetTimeout),
		SoundsDir:     getEnvString("SOUNDS_DIR", getDefaultSoundsDir()),
		EnableSound:   getEnvBool("ENABLE_SOUND", true),
		EnableNotify:  getEnvBool("ENABLE_NOTIFY", true),
		WatchSource:   getEnvBool("WATCH_SOURCE", true),
		LogPath:       getEnvString("LOG_PATH", getDefaultLogPath()),
		LogLevel:      strings.ToLower(getEnvString("LOG_LEVEL", defaultLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Ensure log directory exists
	if err := ensureDir(filepath.Dir(cfg.LogPath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints. Load calls it; callers that override
// fields afterwards (such as a --year flag) should call it again.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "macwrap", ".env"))
	}

	return paths
}

// getDefaultSourcePath returns the Screen Time knowledge store location.
func getDefaultSourcePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "knowledgeC.db"
	}
	return filepath.Join(home, "Library", "Application Support", "Knowledge", "knowledgeC.db")
}

// getDefaultHistoryFiles returns the shell history files counted by default.
func getDefaultHistoryFiles() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".zsh_history"),
		filepath.Join(home, ".bash_history"),
		filepath.Join(home, ".history"),
	}
}

func getDefaultSoundsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sounds"
	}
	return filepath.Join(home, ".config", "macwrap", "sounds")
}

func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "macwrap.log"
	}
	return filepath.Join(home, ".config", "macwrap", "macwrap.log")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
// Accepts the forms understood by strconv.ParseBool.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList retrieves a comma separated list or returns the default.
// A leading "~/" in an entry is expanded to the home directory.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	home, _ := os.UserHomeDir()
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if home != "" && strings.HasPrefix(item, "~/") {
			item = filepath.Join(home, item[2:])
		}
		items = append(items, item)
	}
	return items
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
