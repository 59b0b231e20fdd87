// Package config loads environment configuration for DeskRect.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr = "0.0.0.0:8787"
	defaultDataDir    = "./data"
	defaultMonitorIdx = 1
	defaultScrollLock = true
	calibFileName     = "calib.json"
	envFileName       = ".env"
)

// Environment keys read by Load.
const (
	keyListenAddr   = "LISTEN_ADDR"
	keyDataDir      = "DATA_DIR"
	keyCalibPath    = "CALIB_PATH"
	keyUIPassword   = "UI_PASSWORD"
	keyMonitorIndex = "MONITOR_INDEX"
	keyScrollLock   = "SCROLL_LOCK"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr   string
	UIPassword   string
	DataDir      string
	CalibPath    string
	MonitorIndex int
	// ScrollLock freezes the chat window while text is injected so its
	// scroll position is restored afterwards.
	ScrollLock bool
}

// Load reads configuration from ./data/.env and environment variables.
// Variables already present in the environment win over the file. The
// calibration file defaults to calib.json inside DATA_DIR.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		DataDir:      defaultDataDir,
		MonitorIndex: defaultMonitorIdx,
		ScrollLock:   defaultScrollLock,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, envFileName)); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString(keyListenAddr, cfg.ListenAddr)
	cfg.DataDir = envString(keyDataDir, cfg.DataDir)
	cfg.CalibPath = envString(keyCalibPath, filepath.Join(cfg.DataDir, calibFileName))
	cfg.UIPassword = strings.TrimSpace(os.Getenv(keyUIPassword))

	scrollLock, err := envBool(keyScrollLock, cfg.ScrollLock)
	if err != nil {
		return Config{}, err
	}
	cfg.ScrollLock = scrollLock

	monitorIdx, err := envInt(keyMonitorIndex, cfg.MonitorIndex)
	if err != nil {
		return Config{}, err
	}
	if monitorIdx <= 0 {
		return Config{}, fmt.Errorf("%s must be >= 1", keyMonitorIndex)
	}
	cfg.MonitorIndex = monitorIdx

	if cfg.UIPassword == "" {
		return Config{}, fmt.Errorf("%s is required", keyUIPassword)
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
// Unrecognised values are an error rather than a silent fallback.
func envBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value. A value wrapped
// in a matching pair of quotes is unquoted.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(value)), true
}

// unquote strips one matching pair of single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
