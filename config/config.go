package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Theme   ThemeConfig   `toml:"theme"`
	Display DisplayConfig `toml:"display"`
}

type ServerConfig struct {
	BaseURL        string `toml:"base_url,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
}

type ThemeConfig struct {
	BG          string `toml:"bg,omitempty"`
	FG          string `toml:"fg,omitempty"`
	Accent      string `toml:"accent,omitempty"`
	Accent2     string `toml:"accent2,omitempty"`
	Muted       string `toml:"muted,omitempty"`
	Dim         string `toml:"dim,omitempty"`
	Critical    string `toml:"critical,omitempty"`
	Warning     string `toml:"warning,omitempty"`
	Suggestion  string `toml:"suggestion,omitempty"`
	Success     string `toml:"success,omitempty"`
	StatusBarBG string `toml:"status_bar_bg,omitempty"`
	StatusBarFG string `toml:"status_bar_fg,omitempty"`
	Error       string `toml:"error,omitempty"`
	CursorBG    string `toml:"cursor_bg,omitempty"`
	SpinnerFG   string `toml:"spinner_fg,omitempty"`
	SpinnerType string `toml:"spinner_type,omitempty"`

	FeedbackSuccessFG string `toml:"feedback_success_fg,omitempty"`
	FeedbackSuccessBG string `toml:"feedback_success_bg,omitempty"`
	FeedbackWarningFG string `toml:"feedback_warning_fg,omitempty"`
	FeedbackWarningBG string `toml:"feedback_warning_bg,omitempty"`
	FeedbackErrorFG   string `toml:"feedback_error_fg,omitempty"`
	FeedbackErrorBG   string `toml:"feedback_error_bg,omitempty"`
}

type DisplayConfig struct {
	DarkMode     *bool `toml:"dark_mode,omitempty"`
	HistoryLimit int   `toml:"history_limit,omitempty"`
}

// DefaultConfigPath returns ~/.config/scandash/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "scandash", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config back to a TOML file, creating the directory as
// needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolvedBaseURL returns the configured backend base URL or the local
// development default.
func (c Config) ResolvedBaseURL() string {
	if c.Server.BaseURL != "" {
		return c.Server.BaseURL
	}
	return "http://localhost:8080"
}

// ResolvedTimeout returns the HTTP client timeout. Defaults to 60s: an
// upload carries the whole archive and waits out server-side analysis.
func (c Config) ResolvedTimeout() time.Duration {
	if c.Server.TimeoutSeconds > 0 {
		return time.Duration(c.Server.TimeoutSeconds) * time.Second
	}
	return 60 * time.Second
}

// ResolvedDarkMode returns the configured dark_mode or true as default.
func (c Config) ResolvedDarkMode() bool {
	if c.Display.DarkMode != nil {
		return *c.Display.DarkMode
	}
	return true
}

// ResolvedHistoryLimit returns the number of past runs shown in the history
// panel, or 50 as default.
func (c Config) ResolvedHistoryLimit() int {
	if c.Display.HistoryLimit > 0 {
		return c.Display.HistoryLimit
	}
	return 50
}

// DarkTheme returns the default dark palette.
func DarkTheme() ThemeConfig {
	return ThemeConfig{
		BG:          "#101010",
		FG:          "#ffffff",
		Accent:      "#ffc799",
		Accent2:     "#99ffe4",
		Muted:       "#505050",
		Dim:         "#a0a0a0",
		Critical:    "#ff8080",
		Warning:     "#ffc799",
		Suggestion:  "#6699ff",
		Success:     "#99ffe4",
		StatusBarBG: "#1a1a1a",
		StatusBarFG: "#a0a0a0",
		Error:       "#ff8080",
		CursorBG:    "#2a2a2a",
		SpinnerFG:   "#ffc799",
		SpinnerType: "minidot",

		FeedbackSuccessFG: "#99ffe4",
		FeedbackSuccessBG: "#1a3a2a",
		FeedbackWarningFG: "#ffc799",
		FeedbackWarningBG: "#2a2215",
		FeedbackErrorFG:   "#ff8080",
		FeedbackErrorBG:   "#3a1a1a",
	}
}

// LightTheme returns the default light palette.
func LightTheme() ThemeConfig {
	return ThemeConfig{
		BG:          "#fafafa",
		FG:          "#1a1a1a",
		Accent:      "#b05a1a",
		Accent2:     "#0a7a5a",
		Muted:       "#b0b0b0",
		Dim:         "#606060",
		Critical:    "#c03030",
		Warning:     "#b07a10",
		Suggestion:  "#2050c0",
		Success:     "#0a7a5a",
		StatusBarBG: "#e8e8e8",
		StatusBarFG: "#505050",
		Error:       "#c03030",
		CursorBG:    "#e0e0e0",
		SpinnerFG:   "#b05a1a",
		SpinnerType: "minidot",

		FeedbackSuccessFG: "#0a7a5a",
		FeedbackSuccessBG: "#ddf2ea",
		FeedbackWarningFG: "#b07a10",
		FeedbackWarningBG: "#f5ecd5",
		FeedbackErrorFG:   "#c03030",
		FeedbackErrorBG:   "#f5dddd",
	}
}

// ResolvedTheme merges the config theme over the palette selected by
// dark_mode, per-field.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DarkTheme()
	if !c.ResolvedDarkMode() {
		d = LightTheme()
	}
	return ThemeConfig{
		BG:          pick(c.Theme.BG, d.BG),
		FG:          pick(c.Theme.FG, d.FG),
		Accent:      pick(c.Theme.Accent, d.Accent),
		Accent2:     pick(c.Theme.Accent2, d.Accent2),
		Muted:       pick(c.Theme.Muted, d.Muted),
		Dim:         pick(c.Theme.Dim, d.Dim),
		Critical:    pick(c.Theme.Critical, d.Critical),
		Warning:     pick(c.Theme.Warning, d.Warning),
		Suggestion:  pick(c.Theme.Suggestion, d.Suggestion),
		Success:     pick(c.Theme.Success, d.Success),
		StatusBarBG: pick(c.Theme.StatusBarBG, d.StatusBarBG),
		StatusBarFG: pick(c.Theme.StatusBarFG, d.StatusBarFG),
		Error:       pick(c.Theme.Error, d.Error),
		CursorBG:    pick(c.Theme.CursorBG, d.CursorBG),
		SpinnerFG:   pick(c.Theme.SpinnerFG, d.SpinnerFG),
		SpinnerType: pick(c.Theme.SpinnerType, d.SpinnerType),

		FeedbackSuccessFG: pick(c.Theme.FeedbackSuccessFG, d.FeedbackSuccessFG),
		FeedbackSuccessBG: pick(c.Theme.FeedbackSuccessBG, d.FeedbackSuccessBG),
		FeedbackWarningFG: pick(c.Theme.FeedbackWarningFG, d.FeedbackWarningFG),
		FeedbackWarningBG: pick(c.Theme.FeedbackWarningBG, d.FeedbackWarningBG),
		FeedbackErrorFG:   pick(c.Theme.FeedbackErrorFG, d.FeedbackErrorFG),
		FeedbackErrorBG:   pick(c.Theme.FeedbackErrorBG, d.FeedbackErrorBG),
	}
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
