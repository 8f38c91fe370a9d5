package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// SearchURL is the template the search box navigates to; the query
	// is appended URL-encoded.
	SearchURL string `json:"searchUrl"`

	// SuggestEndpoint is the autocomplete service the suggestion relay
	// passes queries through to.
	SuggestEndpoint string `json:"suggestEndpoint"`

	// Password guards the page when non-empty. Empty disables the gate.
	Password string `json:"password"`

	// DragThreshold is the pointer travel (cells) before a press counts
	// as a drag.
	DragThreshold int `json:"dragThreshold"`

	// ListenAddr is the bind address for serve mode.
	ListenAddr string `json:"listenAddr"`

	// LogLevel controls logging verbosity (debug/info/warn/error).
	LogLevel string `json:"logLevel"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchURL:       "https://www.google.com/search?q=",
		SuggestEndpoint: "https://suggestqueries.google.com/complete/search?client=firefox&q=",
		DragThreshold:   2,
		ListenAddr:      "127.0.0.1:7531",
		LogLevel:        "info",
	}
}

// Load reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if the write fails
			_ = Save(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.SearchURL == "" {
		config.SearchURL = defaults.SearchURL
	}
	if config.SuggestEndpoint == "" {
		config.SuggestEndpoint = defaults.SuggestEndpoint
	}
	if config.DragThreshold <= 0 {
		config.DragThreshold = defaults.DragThreshold
	}
	if config.ListenAddr == "" {
		config.ListenAddr = defaults.ListenAddr
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	return &config, nil
}

// Save writes config to the JSON file.
// Creates the directory if it doesn't exist.
func Save(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config path:
// ~/.config/startpage/config.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "startpage", "config.json"), nil
}

// DefaultLogPath returns where TUI sessions write their log:
// ~/.config/startpage/startpage.log
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "startpage", "startpage.log"), nil
}
