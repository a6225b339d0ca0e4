package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TRACK_SUPABASE_URL", "")
	t.Setenv("TRACK_SUPABASE_ANON_KEY", "")
	t.Setenv("TRACK_SESSION", "")
	return home
}

func TestLoad_EnvOnly(t *testing.T) {
	home := isolateHome(t)
	t.Setenv("TRACK_SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("TRACK_SUPABASE_ANON_KEY", "anon-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SupabaseURL != "https://abc.supabase.co" {
		t.Fatalf("url got %q", cfg.SupabaseURL)
	}
	if cfg.SupabaseAnonKey != "anon-key" {
		t.Fatalf("anon key got %q", cfg.SupabaseAnonKey)
	}
	want := filepath.Join(home, ".config", "track", "session.json")
	if cfg.SessionPath != want {
		t.Fatalf("session path got %q want %q", cfg.SessionPath, want)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".config", "track")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	file := "supabase_url = \"https://file.supabase.co\"\nsupabase_anon_key = \"file-key\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRACK_SUPABASE_URL", "https://env.supabase.co")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SupabaseURL != "https://env.supabase.co" {
		t.Fatalf("env should win over file, got %q", cfg.SupabaseURL)
	}
	if cfg.SupabaseAnonKey != "file-key" {
		t.Fatalf("file value lost, got %q", cfg.SupabaseAnonKey)
	}
}

func TestLoad_RejectsNonHTTPS(t *testing.T) {
	isolateHome(t)
	t.Setenv("TRACK_SUPABASE_URL", "http://abc.supabase.co")
	t.Setenv("TRACK_SUPABASE_ANON_KEY", "anon-key")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "https") {
		t.Fatalf("expected https error, got %v", err)
	}
}

func TestLoad_MissingURL(t *testing.T) {
	isolateHome(t)
	t.Setenv("TRACK_SUPABASE_ANON_KEY", "anon-key")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing supabase_url")
	}
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	isolateHome(t)
	t.Setenv("TRACK_SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("TRACK_SUPABASE_ANON_KEY", "anon-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.HasSuffix(cfg.SupabaseURL, "/") {
		t.Fatalf("trailing slash kept: %q", cfg.SupabaseURL)
	}
}
