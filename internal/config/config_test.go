package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at an empty directory so user configs do not leak in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"ARCADE_LOG_LEVEL", "ARCADE_LOG_FILE", "ARCADE_SSH_ADDR", "ARCADE_WEB_ADDR", "ARCADE_AUDIO"} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "web:\n  address: \":9090\"\naudio:\n  enabled: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Web.Address != ":9090" || cfg.Audio.Enabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.TUI.FrameMs != 50 || cfg.SSH.Address != ":23234" {
		t.Errorf("untouched keys should keep defaults: %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", fileName), "log:\n  level: debug\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected user config level debug, got %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "tui: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestNormalize(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "zero.yaml")
	writeFile(t, path, "tui:\n  frame_ms: 0\n  cell_px: -3\nweb:\n  session_ttl_min: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TUI.FrameInterval() != 50*time.Millisecond || cfg.TUI.CellPx != 10 {
		t.Errorf("invalid TUI values should fall back: %+v", cfg.TUI)
	}
	if cfg.Web.SessionTTL() != 15*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.Web.SessionTTL())
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ARCADE_LOG_LEVEL", "warn")
	t.Setenv("ARCADE_WEB_ADDR", "127.0.0.1:7000")
	t.Setenv("ARCADE_AUDIO", "false")

	cfg := Default()
	if err := ApplyEnv(&cfg, ""); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Web.Address != "127.0.0.1:7000" || cfg.Audio.Enabled {
		t.Errorf("env overrides not applied: %+v", cfg)
	}

	t.Setenv("ARCADE_AUDIO", "loud")
	if err := ApplyEnv(&cfg, ""); err == nil {
		t.Error("invalid ARCADE_AUDIO should fail")
	}
}

func TestApplyEnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv("ARCADE_SSH_ADDR")
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "ARCADE_SSH_ADDR=:2222\n")
	t.Cleanup(func() { os.Unsetenv("ARCADE_SSH_ADDR") })

	cfg := Default()
	if err := ApplyEnv(&cfg, envFile); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("Expected address from .env, got %q", cfg.SSH.Address)
	}

	// A missing .env file is fine
	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing .env should be ignored: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)
	if got := ExpandHome("~/.arcade/arcade.log"); got != filepath.Join(home, ".arcade", "arcade.log") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/var/log/arcade.log"); got != "/var/log/arcade.log" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
