package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ShowHidden {
		t.Error("show_hidden should default to false")
	}
	if !cfg.GitignoreEnabled() {
		t.Error("use_gitignore should default to true")
	}
	if !cfg.PreviewEnabled() {
		t.Error("preview should default to enabled")
	}
	if cfg.Preview.MaxBytes != 64*1024 {
		t.Errorf("preview max_bytes = %d, want 65536", cfg.Preview.MaxBytes)
	}
	if cfg.Accent == "" {
		t.Error("accent should have a default")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
show_hidden: true
use_gitignore: false
max_depth: 4
accent: "#ff00ff"
preview:
  enabled: false
  max_bytes: 1024
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ShowHidden {
		t.Error("show_hidden not applied")
	}
	if cfg.GitignoreEnabled() {
		t.Error("use_gitignore: false not applied")
	}
	if cfg.MaxDepth != 4 {
		t.Errorf("max_depth = %d, want 4", cfg.MaxDepth)
	}
	if cfg.PreviewEnabled() {
		t.Error("preview.enabled: false not applied")
	}
	if cfg.Preview.MaxBytes != 1024 {
		t.Errorf("preview.max_bytes = %d, want 1024", cfg.Preview.MaxBytes)
	}
	if cfg.Accent != "#ff00ff" {
		t.Errorf("accent = %q, want #ff00ff", cfg.Accent)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("show_hidden: [oops\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml must fail")
	}
}

func TestLoadRejectsNegativeDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_depth: -1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("negative max_depth must fail")
	}
}
