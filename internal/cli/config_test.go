package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabasePath != "" || cfg.Port != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "vlog")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "database_path: /data/visitors.db\nport: 9090\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabasePath != "/data/visitors.db" {
		t.Errorf("database_path = %q, want %q", cfg.DatabasePath, "/data/visitors.db")
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "vlog")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestDefaultPortEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VLOG_PORT", "3000")

	if got := defaultPort(); got != 3000 {
		t.Errorf("defaultPort = %d, want 3000", got)
	}
}

func TestDefaultPortFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VLOG_PORT", "")

	if got := defaultPort(); got != 8080 {
		t.Errorf("defaultPort = %d, want 8080", got)
	}
}
