package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds application-level configuration.
type Config struct {
	SupabaseURL     string `toml:"supabase_url"`      // Project URL, e.g. "https://abc.supabase.co"
	SupabaseAnonKey string `toml:"supabase_anon_key"` // Public anon key for the data and auth APIs
	SessionPath     string `toml:"session_path"`      // Where the signed-in session is stored
}

// DefaultPath returns the config file location, ~/.config/track/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "track", "config.toml"), nil
}

// Load reads the config file when present, then applies environment
// overrides:
//
//	TRACK_SUPABASE_URL       — backend project URL (https only)
//	TRACK_SUPABASE_ANON_KEY  — public anon key
//	TRACK_SESSION            — session file path (default: ~/.config/track/session.json)
func Load() (Config, error) {
	var cfg Config

	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if v := os.Getenv("TRACK_SUPABASE_URL"); v != "" {
		cfg.SupabaseURL = v
	}
	if v := os.Getenv("TRACK_SUPABASE_ANON_KEY"); v != "" {
		cfg.SupabaseAnonKey = v
	}
	if v := os.Getenv("TRACK_SESSION"); v != "" {
		cfg.SessionPath = v
	}

	if cfg.SupabaseURL == "" {
		return Config{}, fmt.Errorf("supabase_url is not configured (set TRACK_SUPABASE_URL or %s)", path)
	}
	parsed, err := url.Parse(cfg.SupabaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid supabase_url: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid supabase_url: only https is allowed")
	}
	cfg.SupabaseURL = strings.TrimRight(parsed.String(), "/")

	if cfg.SupabaseAnonKey == "" {
		return Config{}, fmt.Errorf("supabase_anon_key is not configured (set TRACK_SUPABASE_ANON_KEY or %s)", path)
	}

	if cfg.SessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfg.SessionPath = filepath.Join(home, ".config", "track", "session.json")
	}

	return cfg, nil
}
