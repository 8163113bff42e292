package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("missing file: got %+v", cfg)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("format: json\nlog_level: debug\ndecompress: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Format != "json" || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Decompress == nil || *cfg.Decompress {
		t.Errorf("Decompress = %v", cfg.Decompress)
	}
	if cfg.Mmap != nil {
		t.Errorf("Mmap should be unset, got %v", *cfg.Mmap)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("format: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed config")
	}

	if cfg, err := LoadConfig(""); err != nil || cfg != (Config{}) {
		t.Errorf("empty path: %+v, %v", cfg, err)
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := newLogger(level)
		if err != nil {
			t.Errorf("newLogger(%q): %v", level, err)
			continue
		}
		_ = l.Sync()
	}
	if _, err := newLogger("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
