package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gather/internal/platform/config"
)

func TestFlagOverridesEnvAndFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "server: http://file.example")
	t.Setenv("GATHER_SERVER", "http://env.example")

	cfg, err := config.New("http://flag.example/", dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.BaseURL != "http://flag.example" {
		t.Fatalf("expected flag to win (trailing slash trimmed), got %s", cfg.BaseURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "server: http://file.example")
	t.Setenv("GATHER_SERVER", "http://env.example")

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.BaseURL != "http://env.example" {
		t.Fatalf("expected env to win, got %s", cfg.BaseURL)
	}
}

func TestFileThenDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GATHER_SERVER", "")

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:5500" {
		t.Fatalf("expected default base URL, got %s", cfg.BaseURL)
	}

	writeConfigFile(t, dir, "server: http://file.example/")
	cfg, err = config.New("", dir)
	if err != nil {
		t.Fatalf("new config with file: %v", err)
	}
	if cfg.BaseURL != "http://file.example" {
		t.Fatalf("expected file value, got %s", cfg.BaseURL)
	}
}

func TestStatePathsDeriveFromStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GATHER_SERVER", "")

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.TokenPath != filepath.Join(dir, "session.json") {
		t.Fatalf("unexpected token path %s", cfg.TokenPath)
	}
	if cfg.SnapshotPath != filepath.Join(dir, "gather.db") {
		t.Fatalf("unexpected snapshot path %s", cfg.SnapshotPath)
	}
	if cfg.LogPath != filepath.Join(dir, "gather.log") {
		t.Fatalf("unexpected log path %s", cfg.LogPath)
	}
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
}
