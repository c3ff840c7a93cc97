package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/splitpixel/splitpixel/internal/config"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "splitpixel.toml"), false)
	if err != nil {
		t.Fatalf("expected missing default file to be fine, got %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DBPath != "./splitpixel.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"), true)
	if err == nil {
		t.Error("expected error for explicitly named missing file")
	}
}

func TestLoad_ParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitpixel.toml")
	content := `
port = 9090
base_url = "https://spx.example.com"
db = "/var/lib/splitpixel/data.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path, true)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.BaseURL != "https://spx.example.com" {
		t.Errorf("expected base_url, got %q", cfg.BaseURL)
	}
	if cfg.DBPath != "/var/lib/splitpixel/data.db" {
		t.Errorf("expected db path, got %q", cfg.DBPath)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitpixel.toml")
	if err := os.WriteFile(path, []byte("port = 3000\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path, true)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.DBPath != "./splitpixel.db" {
		t.Errorf("expected default db path kept, got %q", cfg.DBPath)
	}
}
