package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the few settings elogviewer reads.
type Config struct {
	ElogDir string
	Theme   string
}

const (
	defaultConfigPath = "~/.config/elogviewer/config.toml"
	defaultElogDir    = "/var/log/portage/elog"
	defaultTheme      = "Portage"
)

// Load locates and parses the config, falling back to defaults when the
// file is missing. The PORT_LOGDIR environment variable, when set, names
// the Portage log directory the same way it does for Portage itself; the
// elog directory sits beneath it.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ElogDir: fallbackElogDir(), Theme: defaultTheme}

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
		ElogDir string `toml:"elog_dir"`
		Theme   string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.ElogDir); dir != "" {
		cfg.ElogDir = mustExpand(dir)
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	return cfg, nil
}

func fallbackElogDir() string {
	if logdir := strings.TrimSpace(os.Getenv("PORT_LOGDIR")); logdir != "" {
		return filepath.Join(logdir, "elog")
	}
	return defaultElogDir
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
