package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration for the mailsift client
type Config struct {
	// ServerURL is the base URL of the email classification server
	ServerURL string `json:"server_url"`

	// Timeout for HTTP requests to the server (Go duration string)
	Timeout string `json:"timeout"`

	// SearchDebounceMs is the quiescence window before a keystroke
	// triggers a server-side search
	SearchDebounceMs int `json:"search_debounce_ms"`

	// Local content cache
	CacheEnabled bool   `json:"cache_enabled"`
	CachePath    string `json:"cache_path"`

	// Layout configuration
	Layout LayoutConfig `json:"layout"`

	// Keyboard shortcuts
	Keys KeyBindings `json:"keys"`

	// Logging
	LogFile string `json:"log_file"`
}

// LayoutConfig defines layout-specific configuration
type LayoutConfig struct {
	ShowBorders    bool   `json:"show_borders"`
	ShowTitles     bool   `json:"show_titles"`
	CurrentTheme   string `json:"current_theme"`
	CustomThemeDir string `json:"custom_theme_dir"`
}

// KeyBindings defines keyboard shortcuts for the TUI
type KeyBindings struct {
	Refresh        string `json:"refresh"`
	CheckMail      string `json:"check_mail"` // Ask the server to ingest new mail
	Search         string `json:"search"`
	BulkMode       string `json:"bulk_mode"`
	BulkSelect     string `json:"bulk_select"`
	SelectAll      string `json:"select_all"`
	BulkMove       string `json:"bulk_move"`
	LearnPrimary   string `json:"learn_primary"`
	LearnSpam      string `json:"learn_spam"`
	LearnCustom    string `json:"learn_custom"`
	MoveEmail      string `json:"move_email"` // Move focused email onto a folder
	DeleteCategory string `json:"delete_category"`
	Quit           string `json:"quit"`
	Help           string `json:"help"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ServerURL:        "http://localhost:5000",
		Timeout:          "15s",
		SearchDebounceMs: 300,
		CacheEnabled:     true,
		CachePath:        "",
		Layout:           DefaultLayoutConfig(),
		Keys:             DefaultKeyBindings(),
		LogFile:          "",
	}
}

// DefaultLayoutConfig returns default layout configuration
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		ShowBorders:    true,
		ShowTitles:     true,
		CurrentTheme:   "mailsift-dark",
		CustomThemeDir: "",
	}
}

// DefaultKeyBindings returns default keyboard shortcuts
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Refresh:        "R",
		CheckMail:      "C",
		Search:         "/",
		BulkMode:       "v",
		BulkSelect:     "space",
		SelectAll:      "a",
		BulkMove:       "m",
		LearnPrimary:   "p",
		LearnSpam:      "s",
		LearnCustom:    "l",
		MoveEmail:      "f",
		DeleteCategory: "D",
		Quit:           "q",
		Help:           "?",
	}
}

// LoadConfig loads configuration from file, falling back to defaults for
// anything the file does not set
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mailsift", "config.json")
}

// DefaultCacheDir returns the default cache directory path
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mailsift", "cache")
}

// DefaultLogDir returns the default log directory path
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mailsift")
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetTimeout returns the parsed request timeout
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err == nil {
			return d
		}
	}
	return 15 * time.Second
}

// GetSearchDebounce returns the search quiescence window
func (c *Config) GetSearchDebounce() time.Duration {
	if c.SearchDebounceMs > 0 {
		return time.Duration(c.SearchDebounceMs) * time.Millisecond
	}
	return 300 * time.Millisecond
}
