package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir != filepath.Join("/tmp/xdg", "orderchat") {
		t.Errorf("GetConfigDir() = %v, want /tmp/xdg/orderchat", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Default().Version = %v, want 1", cfg.Version)
	}
	if !cfg.AltScreen {
		t.Error("Default().AltScreen should be true")
	}
	if cfg.LogLevel != "" {
		t.Errorf("Default().LogLevel = %q, want silent", cfg.LogLevel)
	}
	if cfg.Theme.FormAccent != "#ff6f61" {
		t.Errorf("Default().Theme.FormAccent = %v, want #ff6f61", cfg.Theme.FormAccent)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Theme != DefaultTheme() {
		t.Errorf("missing file should load default theme, got %+v", cfg.Theme)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.AltScreen = false
	cfg.Theme.ChatAccent = "#ffd54f"

	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", loaded.LogLevel)
	}
	if loaded.AltScreen {
		t.Error("AltScreen should round-trip as false")
	}
	if loaded.Theme.ChatAccent != "#ffd54f" {
		t.Errorf("ChatAccent = %v, want #ffd54f", loaded.Theme.ChatAccent)
	}
}

func TestLoadFilePartialThemeFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\ntheme:\n  chat_accent: \"#000000\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Theme.ChatAccent != "#000000" {
		t.Errorf("ChatAccent = %v, want #000000", cfg.Theme.ChatAccent)
	}
	if cfg.Theme.BackButton != "#6c757d" {
		t.Errorf("BackButton = %v, want default", cfg.Theme.BackButton)
	}
}

func TestLoadFileRejectsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported config version") {
		t.Errorf("LoadFile() error = %v, want unsupported version", err)
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: [\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should fail on malformed YAML")
	}
}

func TestResolveLogFile(t *testing.T) {
	cfg := Default()
	cfg.LogFile = "/var/log/orderchat.log"
	got, err := cfg.ResolveLogFile()
	if err != nil || got != "/var/log/orderchat.log" {
		t.Errorf("ResolveLogFile() = %v, %v", got, err)
	}

	cfg.LogFile = ""
	got, err = cfg.ResolveLogFile()
	if err != nil {
		t.Fatalf("ResolveLogFile() error = %v", err)
	}
	if filepath.Base(got) != "orderchat.log" {
		t.Errorf("default log file = %v", got)
	}
}
