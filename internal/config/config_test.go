package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var configKeys = []string{keyListenAddr, keyDataDir, keyCalibPath, keyMonitorIndex, keyUIPassword, keyScrollLock}

// isolate runs the test from an empty directory with every config key cleared.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

// TestLoad_Defaults verifies defaults apply when only the password is set.
func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("UI_PASSWORD", "pw")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{
		ListenAddr:   defaultListenAddr,
		UIPassword:   "pw",
		DataDir:      defaultDataDir,
		CalibPath:    filepath.Join(defaultDataDir, calibFileName),
		MonitorIndex: 1,
		ScrollLock:   true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

// TestLoad_RequiresPassword verifies a missing UI_PASSWORD is an error.
func TestLoad_RequiresPassword(t *testing.T) {
	isolate(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without UI_PASSWORD")
	}
}

// TestLoad_Overrides verifies environment overrides and derived paths.
func TestLoad_Overrides(t *testing.T) {
	isolate(t)
	t.Setenv("UI_PASSWORD", "pw")
	t.Setenv("DATA_DIR", "/srv/deskrect")
	t.Setenv("MONITOR_INDEX", "2")
	t.Setenv("SCROLL_LOCK", "off")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CalibPath != filepath.Join("/srv/deskrect", "calib.json") {
		t.Fatalf("expected calib path under DATA_DIR, got %q", cfg.CalibPath)
	}
	if cfg.MonitorIndex != 2 || cfg.ScrollLock {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

// TestLoad_InvalidMonitorIndex verifies bad monitor indexes are rejected.
func TestLoad_InvalidMonitorIndex(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-1"} {
		t.Run(raw, func(t *testing.T) {
			isolate(t)
			t.Setenv("UI_PASSWORD", "pw")
			t.Setenv("MONITOR_INDEX", raw)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for MONITOR_INDEX=%q", raw)
			}
		})
	}
}

// TestLoad_InvalidScrollLock verifies an unrecognised boolean is rejected instead of ignored.
func TestLoad_InvalidScrollLock(t *testing.T) {
	isolate(t)
	t.Setenv("UI_PASSWORD", "pw")
	t.Setenv("SCROLL_LOCK", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SCROLL_LOCK=sometimes")
	}
}

// TestLoad_EnvFile verifies .env values fill in unset keys only.
func TestLoad_EnvFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	env := "# comment\nexport UI_PASSWORD=\"secret\"\nLISTEN_ADDR=0.0.0.0:1\nbroken line\n"
	if err := os.WriteFile(filepath.Join(dir, "data", ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UIPassword != "secret" {
		t.Fatalf("expected password from .env, got %q", cfg.UIPassword)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Fatalf("expected environment to win, got %q", cfg.ListenAddr)
	}
}

// TestParseEnvLine verifies comment, export and quote handling.
func TestParseEnvLine(t *testing.T) {
	type tc struct {
		line       string
		key, value string
		ok         bool
	}

	tests := map[string]tc{
		"plain":           {line: "A=b", key: "A", value: "b", ok: true},
		"export":          {line: "export A = 'b c'", key: "A", value: "b c", ok: true},
		"double quotes":   {line: `A="x=y"`, key: "A", value: "x=y", ok: true},
		"unmatched quote": {line: `A="b'`, key: "A", value: `"b'`, ok: true},
		"empty value":     {line: "A=", key: "A", value: "", ok: true},
		"comment":         {line: "# A=b"},
		"blank":           {line: "   "},
		"no eq":           {line: "A"},
		"no key":          {line: "=b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			key, value, ok := parseEnvLine(tt.line)
			if key != tt.key || value != tt.value || ok != tt.ok {
				t.Fatalf("expected (%q,%q,%v), got (%q,%q,%v)", tt.key, tt.value, tt.ok, key, value, ok)
			}
		})
	}
}
