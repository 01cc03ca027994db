package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediavault/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Gallery.EventListLimit != 100 {
		t.Fatalf("expected default event list limit, got %d", cfg.Gallery.EventListLimit)
	}
	if len(cfg.Gallery.ImageExtensions) != 3 {
		t.Fatalf("expected default extensions, got %v", cfg.Gallery.ImageExtensions)
	}
	if !filepath.IsAbs(cfg.Paths.VaultDir) {
		t.Fatalf("expected expanded vault dir, got %q", cfg.Paths.VaultDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
vault_dir = "` + filepath.Join(dir, "vault") + `"
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[gallery]
image_extensions = ["JPG", ".Png"]
event_list_limit = 25

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved path %q, got %q (exists=%v)", path, resolved, exists)
	}
	want := []string{".jpg", ".png"}
	if len(cfg.Gallery.ImageExtensions) != len(want) {
		t.Fatalf("unexpected extensions: %v", cfg.Gallery.ImageExtensions)
	}
	for i, ext := range want {
		if cfg.Gallery.ImageExtensions[i] != ext {
			t.Fatalf("extension %d: got %q, want %q", i, cfg.Gallery.ImageExtensions[i], ext)
		}
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Gallery.EventListLimit != 25 {
		t.Fatalf("expected limit 25, got %d", cfg.Gallery.EventListLimit)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestDatabaseAndLockPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = "/tmp/mediavault-data"
	if cfg.DatabasePath() != "/tmp/mediavault-data/events.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
	if cfg.LockPath() != "/tmp/mediavault-data/import.lock" {
		t.Fatalf("unexpected lock path %q", cfg.LockPath())
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.VaultDir = filepath.Join(dir, "vault")
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, p := range []string{cfg.Paths.VaultDir, cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory at %q (err=%v)", p, err)
		}
	}
}
