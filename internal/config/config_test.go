package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// isolate points every lookup at an empty temp dir so the developer's own
// config, env and .env never leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"TIMESHEET_CONFIG", "TIMESHEET_FORMAT", "TIMESHEET_LOG_LEVEL", "TIMESHEET_TZ", "TIMESHEET_OUTPUT", "TIMESHEET_CHART"} {
		t.Setenv(k, "")
	}
	return dir
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

// ============================================================
// Defaults
// ============================================================

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatText || cfg.LogLevel != "warn" || cfg.Chart || cfg.Output != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.File != "" {
		t.Fatalf("no config file should have been read, got %q", cfg.File)
	}
	loc, _ := cfg.Location()
	if loc != time.Local {
		t.Fatalf("default location = %v, want Local", loc)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Fatalf("unexpected path %q", path)
	}
}

// ============================================================
// Layers
// ============================================================

func TestLoadFromDefaultFile(t *testing.T) {
	isolate(t)
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, "format = \"csv\"\ntimezone = \"UTC\"\nchart = true\n")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatCSV || cfg.Timezone != "UTC" || !cfg.Chart {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.File != path {
		t.Fatalf("File = %q, want %q", cfg.File, path)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load([]string{"-config", filepath.Join(dir, "nope.toml")})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeFile(t, path, "format = \n")
	t.Setenv("TIMESHEET_CONFIG", path)

	if _, err := Load(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.toml")
	writeFile(t, path, "format = \"csv\"\n")
	t.Setenv("TIMESHEET_CONFIG", path)
	t.Setenv("TIMESHEET_FORMAT", "json")
	t.Setenv("TIMESHEET_CHART", "true")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatJSON || !cfg.Chart {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestDotEnvSeedsEnvironment(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("TIMESHEET_LOG_LEVEL")
	writeFile(t, filepath.Join(dir, ".env"), "TIMESHEET_LOG_LEVEL=debug\n")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug from .env", cfg.LogLevel)
	}
	os.Unsetenv("TIMESHEET_LOG_LEVEL")
}

func TestFlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("TIMESHEET_FORMAT", "json")
	t.Setenv("TIMESHEET_TZ", "Europe/Berlin")

	cfg, err := Load([]string{"-format", "styled", "-tz", "UTC", "-chart", "-o", "week.txt", "-log-level", "debug"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatStyled || cfg.Timezone != "UTC" || !cfg.Chart || cfg.Output != "week.txt" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	lvl, _ := cfg.Level()
	if lvl != log.DebugLevel {
		t.Fatalf("level = %v, want debug", lvl)
	}
}

func TestUnsetFlagsKeepEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TIMESHEET_FORMAT", "json")

	cfg, err := Load([]string{"-chart"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("Format = %q, want json", cfg.Format)
	}
}

// ============================================================
// Validation
// ============================================================

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"-format", "pdf"}},
		{name: "bad timezone", args: []string{"-tz", "Mars/Olympus"}},
		{name: "bad log level", args: []string{"-log-level", "loud"}},
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "positional", args: []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if _, err := Load(tt.args); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestBadChartEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TIMESHEET_CHART", "sometimes")
	if _, err := Load(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
