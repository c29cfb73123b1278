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

// Tab is one entry in a tab strip.
type Tab struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

// User is the identity shown in the header.
type User struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Config holds everything jobsheet reads from config.toml.
type Config struct {
	Theme         string
	SeedFile      string // empty uses the built-in records
	LogFile       string // empty disables logging
	BlankRows     int
	Title         string
	Breadcrumbs   []string
	User          User
	Notifications int
	Tabs          []Tab
	BottomTabs    []Tab
}

const (
	defaultConfigPath = "~/.config/jobsheet/config.toml"
	defaultLogFile    = "~/.local/state/jobsheet/jobsheet.log"
	defaultBlankRows  = 20
	defaultTitle      = "Spreadsheet style"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:       mustExpand(defaultLogFile),
		BlankRows:     defaultBlankRows,
		Title:         defaultTitle,
		Breadcrumbs:   []string{"Workspace", "Folder 2", "Spreadsheet 3"},
		User:          User{Name: "John Doe", Email: "john@doe"},
		Notifications: 2,
		Tabs:          []Tab{{ID: "q3-overview", Label: "Q3 Financial Overview"}},
		BottomTabs: []Tab{
			{ID: "all-orders", Label: "All Orders"},
			{ID: "pending", Label: "Pending"},
			{ID: "reviewed", Label: "Reviewed"},
			{ID: "arrived", Label: "Arrived"},
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

type rawConfig struct {
	Theme         string   `toml:"theme"`
	SeedFile      string   `toml:"seed_file"`
	LogFile       *string  `toml:"log_file"`
	BlankRows     *int     `toml:"blank_rows"`
	Title         string   `toml:"title"`
	Breadcrumbs   []string `toml:"breadcrumbs"`
	User          User     `toml:"user"`
	Notifications *int     `toml:"notifications"`
	Tabs          []Tab    `toml:"tabs"`
	BottomTabs    []Tab    `toml:"bottom_tabs"`
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

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Theme = strings.TrimSpace(raw.Theme)

	if seed := strings.TrimSpace(raw.SeedFile); seed != "" {
		cfg.SeedFile = mustExpand(seed)
	}

	// An explicit empty log_file turns logging off.
	if raw.LogFile != nil {
		if logFile := strings.TrimSpace(*raw.LogFile); logFile != "" {
			cfg.LogFile = mustExpand(logFile)
		} else {
			cfg.LogFile = ""
		}
	}

	if raw.BlankRows != nil {
		if *raw.BlankRows < 0 {
			return Config{}, fmt.Errorf("parse config: blank_rows must not be negative")
		}
		cfg.BlankRows = *raw.BlankRows
	}

	if title := strings.TrimSpace(raw.Title); title != "" {
		cfg.Title = title
	}
	if crumbs := trimAll(raw.Breadcrumbs); len(crumbs) > 0 {
		cfg.Breadcrumbs = crumbs
	}
	if name := strings.TrimSpace(raw.User.Name); name != "" {
		cfg.User.Name = name
	}
	if email := strings.TrimSpace(raw.User.Email); email != "" {
		cfg.User.Email = email
	}
	if raw.Notifications != nil && *raw.Notifications >= 0 {
		cfg.Notifications = *raw.Notifications
	}

	if len(raw.Tabs) > 0 {
		tabs, err := cleanTabs("tabs", raw.Tabs)
		if err != nil {
			return Config{}, err
		}
		cfg.Tabs = tabs
	}
	if len(raw.BottomTabs) > 0 {
		tabs, err := cleanTabs("bottom_tabs", raw.BottomTabs)
		if err != nil {
			return Config{}, err
		}
		cfg.BottomTabs = tabs
	}

	return cfg, nil
}

func cleanTabs(section string, tabs []Tab) ([]Tab, error) {
	out := make([]Tab, 0, len(tabs))
	seen := make(map[string]struct{}, len(tabs))
	for i, t := range tabs {
		t.ID = strings.TrimSpace(t.ID)
		t.Label = strings.TrimSpace(t.Label)
		if t.ID == "" {
			return nil, fmt.Errorf("parse config: %s[%d]: id is empty", section, i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("parse config: %s: duplicate id %q", section, t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Label == "" {
			t.Label = t.ID
		}
		out = append(out, t)
	}
	return out, nil
}

func trimAll(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
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
