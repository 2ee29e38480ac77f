package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	CACHE_ENV   = "NUMELCACHE"
	CONFIG_FILE = "config.yaml"
	HISTORY     = "history"
)

// Config holds the REPL settings read from config.yaml in the cache dir.
type Config struct {
	Prompt         string `yaml:"prompt"`
	ContinuePrompt string `yaml:"continue_prompt"`
	History        int    `yaml:"history"`      // entries kept; 0 disables history
	HistoryFile    string `yaml:"history_file"` // relative paths are under the cache dir
}

func defaultConfig() Config {
	return Config{
		Prompt:         ">> ",
		ContinuePrompt: ".. ",
		History:        1000,
		HistoryFile:    HISTORY,
	}
}

// defaultNumelCache returns env variable NUMELCACHE, or when it is unset
// the default cache dir for windows, mac, linux
func defaultNumelCache() string {
	if env := os.Getenv(CACHE_ENV); env != "" {
		return env
	}

	homeDir, _ := os.UserHomeDir()
	var cache string
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LocalAppData"); localAppData != "" {
			cache = filepath.Join(localAppData, "numel")
			break
		}
		cache = filepath.Join(homeDir, "AppData", "Local", "numel")

	case "darwin":
		cache = filepath.Join(homeDir, "Library", "Caches", "numel")

	default: // Linux and others
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			cache = filepath.Join(xdg, "numel")
			break
		}
		cache = filepath.Join(homeDir, ".cache", "numel")
	}

	return cache
}

// loadConfig reads cacheDir/config.yaml over the defaults. A missing file
// is not an error; unknown keys are.
func loadConfig(cacheDir string) (Config, error) {
	cfg := defaultConfig()
	path := filepath.Join(cacheDir, CONFIG_FILE)
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return defaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.History < 0 {
		return defaultConfig(), fmt.Errorf("config: %s: history must not be negative, got %d", path, cfg.History)
	}
	return cfg, nil
}

// historyPath resolves the configured history file against cacheDir.
func (c Config) historyPath(cacheDir string) string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	return filepath.Join(cacheDir, c.HistoryFile)
}
