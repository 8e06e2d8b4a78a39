package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, key := range []string{"ATELIER_DATA_DIR", "ATELIER_THEME", "ATELIER_LOG_LEVEL"} {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}
	// keep godotenv away from a stray .env
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Exists() {
		t.Fatal("Exists() = true without a config file")
	}
	if cfg.Display.Currency != "€" || !cfg.General.ConfirmClear {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if want := filepath.Join(dir, "data", "atelier", "atelier.db"); DBPath(cfg) != want {
		t.Fatalf("DBPath = %s, want %s", DBPath(cfg), want)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.Display.Currency = "$"
	cfg.Display.Locale = "en-US"
	cfg.General.ConfirmClear = false
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Display.Currency != "$" || got.Display.Locale != "en-US" || got.General.ConfirmClear {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ATELIER_THEME=terminal\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ATELIER_DATA_DIR", filepath.Join(dir, "custom"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal (from .env)", cfg.Appearance.Theme)
	}
	if DataDir(cfg) != filepath.Join(dir, "custom") {
		t.Errorf("DataDir = %q", DataDir(cfg))
	}
}

func TestLoad_BadTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}
