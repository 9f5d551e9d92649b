package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/renatNoore/to-do-app/internal/storage"
)

// Config captures ticklist's runtime settings.
type Config struct {
	DataDir    string
	Backend    string
	StorageKey string
	LogLevel   string
	Theme      string
}

const (
	defaultConfigPath = "~/.config/ticklist/config.toml"
	defaultDataDir    = "~/.local/share/ticklist"
	defaultBackend    = storage.KindFile
	defaultLogLevel   = "info"
	defaultTheme      = "Nightfox"
)

// DefaultPath returns the default config file location (unexpanded).
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir:    mustExpand(defaultDataDir),
		Backend:    defaultBackend,
		StorageKey: storage.DefaultKey,
		LogLevel:   defaultLogLevel,
		Theme:      defaultTheme,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir    string `toml:"data_dir"`
		Backend    string `toml:"backend"`
		StorageKey string `toml:"storage_key"`
		LogLevel   string `toml:"log_level"`
		Theme      string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if backend := strings.ToLower(strings.TrimSpace(raw.Backend)); backend != "" {
		switch backend {
		case storage.KindFile, storage.KindSQLite, storage.KindBadger, storage.KindMemory:
			cfg.Backend = backend
		default:
			return Config{}, fmt.Errorf("parse config: unknown backend %q", raw.Backend)
		}
	}
	if key := strings.TrimSpace(raw.StorageKey); key != "" {
		cfg.StorageKey = key
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	return cfg, nil
}

// LogPath returns the log file written while the TUI owns the terminal.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/ticklist.log")
	}
	return filepath.Join(c.DataDir, "ticklist.log")
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ExpandPath resolves "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
