// Package config resolves how the report is produced: output format,
// timezone, logging. It never affects how the input is interpreted.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Output formats.
const (
	FormatText   = "text"
	FormatStyled = "styled"
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatXLSX   = "xlsx"
)

var formats = []string{FormatText, FormatStyled, FormatCSV, FormatJSON, FormatXLSX}

// ErrInvalid marks configuration that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
	// Timezone is an IANA name. Empty means the host's local zone.
	Timezone string `toml:"timezone"`
	// Chart appends a bar chart to the styled table.
	Chart bool `toml:"chart"`
	// Output is a file path. Empty means stdout.
	Output string `toml:"output"`

	// File is the config file that was read, if any.
	File string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// DefaultPath returns ~/.config/timesheet/config.toml
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "timesheet", "config.toml"), nil
}

// Load layers defaults, the TOML file, the environment (seeded from ./.env)
// and finally args.
func Load(args []string) (Config, error) {
	var (
		cfgPath  string
		format   string
		logLevel string
		tz       string
		output   string
		chart    bool
	)
	flags := flag.NewFlagSet("timesheet", flag.ContinueOnError)
	flags.StringVar(&cfgPath, "config", "", "Config file (default ~/.config/timesheet/config.toml)")
	flags.StringVar(&format, "format", "", "Output format: text, styled, csv, json or xlsx")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&tz, "tz", "", "Timezone for weekdays (default local)")
	flags.StringVar(&output, "o", "", "Write the report to this file instead of stdout")
	flags.BoolVar(&chart, "chart", false, "Append a bar chart (styled format)")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalid, flags.Arg(0))
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: .env: %v", ErrInvalid, err)
	}

	cfg := Default()

	explicit := cfgPath != ""
	if !explicit {
		cfgPath = os.Getenv("TIMESHEET_CONFIG")
		explicit = cfgPath != ""
	}
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			cfgPath = p
		}
	}
	if cfgPath != "" {
		if err := cfg.readFile(cfgPath, explicit); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	// Only flags given on the command line override.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = format
		case "log-level":
			cfg.LogLevel = logLevel
		case "tz":
			cfg.Timezone = tz
		case "o":
			cfg.Output = output
		case "chart":
			cfg.Chart = chart
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readFile overlays the TOML file at path. A missing file is only an error
// when the path was asked for explicitly.
func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrInvalid, path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	c.File = path
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TIMESHEET_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("TIMESHEET_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TIMESHEET_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("TIMESHEET_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("TIMESHEET_CHART"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TIMESHEET_CHART: %v", ErrInvalid, err)
		}
		c.Chart = b
	}
	return nil
}

// Validate checks every field can be used.
func (c Config) Validate() error {
	known := false
	for _, f := range formats {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Location resolves Timezone, defaulting to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalid, c.Timezone, err)
	}
	return loc, nil
}
