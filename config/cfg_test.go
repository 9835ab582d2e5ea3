package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Build.DefaultCombinator != " " {
		t.Errorf("Default combinator = %q, want %q", cfg.Build.DefaultCombinator, " ")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "normal")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
build:
  default_combinator: ">"
logging:
  console:
    level: none
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "cssel.log") + `
    mode: overwrite
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Build.DefaultCombinator != ">" {
		t.Errorf("DefaultCombinator = %q, want %q", cfg.Build.DefaultCombinator, ">")
	}
	if cfg.Logging.FileLogger.Level != "debug" {
		t.Errorf("FileLogger.Level = %q, want %q", cfg.Logging.FileLogger.Level, "debug")
	}
	if cfg.Logging.ConsoleLogger.Level != "none" {
		t.Errorf("ConsoleLogger.Level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "none")
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nunknown_field: true\n"), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Fatal("LoadConfiguration() accepted unknown field")
	}
	if !strings.Contains(err.Error(), "unknown_field") {
		t.Errorf("error does not name the unknown field: %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "default_combinator") {
		t.Error("Prepare() output does not contain build settings")
	}
}
