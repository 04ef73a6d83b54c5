package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected exists=false for missing config")
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.History.Dir) {
		t.Fatalf("history dir not expanded: %q", cfg.History.Dir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[ffmpeg]
binary = "/opt/ffmpeg/bin/ffmpeg"
timeout_seconds = 120

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("binary: %q", cfg.FFmpeg.Binary)
	}
	if cfg.FFmpeg.TimeoutSeconds != 120 {
		t.Fatalf("timeout: %d", cfg.FFmpeg.TimeoutSeconds)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not lowercased: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"negative timeout", "[ffmpeg]\ntimeout_seconds = -1\n", "timeout_seconds"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error containing %q, got %v", tc.wantSub, err)
			}
		})
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/library.xml")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "library.xml") {
		t.Fatalf("got %q", got)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
