// Package config resolves jsonconsole settings from defaults, a JSONC config
// file, the environment and command-line overrides.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// FileName is the project config file looked up in the work directory.
const FileName = ".jsonconsole.json"

// Environment variables consulted by Load.
const (
	EnvFile     = "JSONCONSOLE_FILE"
	EnvLogLevel = "JSONCONSOLE_LOG_LEVEL"
	EnvOutput   = "JSONCONSOLE_OUTPUT"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	// ErrFileNotFound is returned when an explicit config file does not exist.
	ErrFileNotFound = errors.New("config file not found")
	// ErrInvalid is returned when a config file cannot be parsed or validated.
	ErrInvalid = errors.New("invalid config")
	// ErrFileEmpty is returned when the resolved store file path is empty.
	ErrFileEmpty = errors.New("file must not be empty")
)

// Config holds all configuration options.
type Config struct {
	// File is the store file. Relative paths are resolved against the work
	// directory.
	File string `json:"file,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
	// Output is one of text, json, yaml.
	Output string `json:"output,omitempty"`

	// FileAbs is File resolved to an absolute path.
	FileAbs string `json:"-"`
	// Source is the config file that was loaded, if any.
	Source string `json:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		File:     "employees.json",
		LogLevel: "warn",
		Output:   OutputText,
	}
}

// Input holds the inputs for Load.
type Input struct {
	WorkDir    string            // if empty, os.Getwd() is used
	ConfigPath string            // explicit config file; must exist when set
	Overrides  Config            // non-empty fields win over everything else
	Env        map[string]string // environment variables
}

// Load resolves configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Config file (.jsonconsole.json in the work directory, or Input.ConfigPath)
// 3. Environment variables
// 4. Overrides.
func Load(input Input) (Config, error) {
	workDir := input.WorkDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := Default()

	fileCfg, source, err := loadFile(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, fileCfg)
	cfg.Source = source

	cfg = merge(cfg, Config{
		File:     input.Env[EnvFile],
		LogLevel: input.Env[EnvLogLevel],
		Output:   input.Env[EnvOutput],
	})
	cfg = merge(cfg, input.Overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if filepath.IsAbs(cfg.File) {
		cfg.FileAbs = cfg.File
	} else {
		cfg.FileAbs = filepath.Join(workDir, cfg.File)
	}
	return cfg, nil
}

// Validate checks that all fields hold supported values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return ErrFileEmpty
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Output)
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// loadFile loads the project config file or an explicit one. It returns the
// path that was loaded, or "" when the optional project file is absent.
func loadFile(workDir, configPath string) (Config, string, error) {
	path := filepath.Join(workDir, FileName)
	if configPath != "" {
		path = configPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if configPath == "" && errors.Is(err, os.ErrNotExist) {
			return Config{}, "", nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, "", fmt.Errorf("%w: %s", ErrFileNotFound, configPath)
		}
		return Config{}, "", fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}
	return cfg, path, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var cfg Config
	d := json.NewDecoder(bytes.NewReader(standardized))
	d.DisallowUnknownFields()
	if err := d.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.File != "" {
		base.File = overlay.File
	}
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}
	if overlay.Output != "" {
		base.Output = overlay.Output
	}
	return base
}
