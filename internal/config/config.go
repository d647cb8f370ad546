// Package config provides persistent configuration for the waqt CLI.
//
// Configuration is stored as JSON at ~/.config/waqt/config.json
// (XDG-compliant). The merge priority is:
// CLI flags > WAQT_* environment variables > config file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/waqt-dev/waqt/internal/prayer"
)

const (
	configDirName  = "waqt"
	configFileName = "config.json"

	envPrefix = "WAQT_"
)

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"city",
	"latitude", "longitude", "utc_offset",
	"method", "asr_factor",
	"fajr_angle", "isha_angle", "isha_interval_min",
	"hijri_adjust",
	"time_format",
	"prayers",
}

// Config holds all user-configurable settings.
// Zero values mean "not set"; numeric fields where zero is meaningful are
// pointers so unset can be told apart from an explicit zero.
type Config struct {
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	// UTCOffset is the civil offset in hours; nil means "derive from the
	// city directory or the local clock".
	UTCOffset *float64 `json:"utc_offset,omitempty"`

	Method    string `json:"method,omitempty"`     // mwl, karachi, egypt, ummalqura, custom
	AsrFactor *int   `json:"asr_factor,omitempty"` // 1 (Shafi) or 2 (Hanafi)

	FajrAngle    *float64 `json:"fajr_angle,omitempty"`        // custom method only
	IshaAngle    *float64 `json:"isha_angle,omitempty"`        // custom method only
	IshaInterval *int     `json:"isha_interval_min,omitempty"` // minutes after Maghrib (ummalqura)

	HijriAdjust *int `json:"hijri_adjust,omitempty"` // days, typically -1..+2

	TimeFormat string `json:"time_format,omitempty"` // "12h" or "24h"
	Prayers    string `json:"prayers,omitempty"`     // comma-separated list
}

// Defaults returns a Config with all default values applied.
func Defaults() Config {
	asr := 1
	return Config{
		Method:     prayer.Karachi.String(),
		AsrFactor:  &asr,
		TimeFormat: "12h",
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk and applies WAQT_* environment
// overrides. A missing file is not an error; invalid JSON is.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads the config from a specific file path, without environment
// overrides.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnv overrides fields from WAQT_* variables. Each variable name is
// the upper-cased config key with the WAQT_ prefix, e.g. WAQT_UTC_OFFSET.
// Values go through the same validation as `config set`.
func (c *Config) applyEnv() error {
	for _, key := range ValidKeys {
		env := envPrefix + strings.ToUpper(key)
		val, ok := os.LookupEnv(env)
		if !ok || val == "" {
			continue
		}
		if err := c.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}

	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// Set sets a config key to the given value, validating key and value.
func (c *Config) Set(key, value string) error {
	switch key {
	case "city":
		c.City = value
	case "latitude":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q: must be a number", value)
		}
		if v < -90 || v > 90 {
			return fmt.Errorf("invalid latitude %q: must be between -90 and 90", value)
		}
		c.Latitude = v
	case "longitude":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q: must be a number", value)
		}
		if v < -180 || v > 180 {
			return fmt.Errorf("invalid longitude %q: must be between -180 and 180", value)
		}
		c.Longitude = v
	case "utc_offset":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid utc_offset %q: must be a number of hours", value)
		}
		if v < -12 || v > 14 {
			return fmt.Errorf("invalid utc_offset %q: must be between -12 and +14", value)
		}
		c.UTCOffset = &v
	case "method":
		if _, err := prayer.ParseMethod(value); err != nil {
			return err
		}
		c.Method = strings.ToLower(strings.TrimSpace(value))
	case "asr_factor":
		v, err := strconv.Atoi(value)
		if err != nil || (v != 1 && v != 2) {
			return fmt.Errorf("invalid asr_factor %q: must be 1 (Shafi) or 2 (Hanafi)", value)
		}
		c.AsrFactor = &v
	case "fajr_angle":
		v, err := parseAngle(value)
		if err != nil {
			return fmt.Errorf("invalid fajr_angle %q: %w", value, err)
		}
		c.FajrAngle = &v
	case "isha_angle":
		v, err := parseAngle(value)
		if err != nil {
			return fmt.Errorf("invalid isha_angle %q: %w", value, err)
		}
		c.IshaAngle = &v
	case "isha_interval_min":
		v, err := strconv.Atoi(value)
		if err != nil || v < 1 || v > 240 {
			return fmt.Errorf("invalid isha_interval_min %q: must be minutes between 1 and 240", value)
		}
		c.IshaInterval = &v
	case "hijri_adjust":
		v, err := strconv.Atoi(value)
		if err != nil || v < -3 || v > 3 {
			return fmt.Errorf("invalid hijri_adjust %q: must be days between -3 and 3", value)
		}
		c.HijriAdjust = &v
	case "time_format":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("invalid time_format %q: must be \"12h\" or \"24h\"", value)
		}
		c.TimeFormat = value
	case "prayers":
		names := strings.Split(value, ",")
		for _, n := range names {
			n = strings.TrimSpace(n)
			if !isValidPrayerName(n) {
				return fmt.Errorf("invalid prayer name %q in prayers list", n)
			}
		}
		c.Prayers = value
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}

	return nil
}

// parseAngle validates a twilight angle in degrees below the horizon.
func parseAngle(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.New("must be a number of degrees")
	}
	if v < -24 || v > 0 {
		return 0, errors.New("must be between -24 and 0 degrees (below horizon)")
	}
	return v, nil
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "city":
		return c.City, nil
	case "latitude":
		if c.Latitude == 0 {
			return "", nil
		}
		return strconv.FormatFloat(c.Latitude, 'f', -1, 64), nil
	case "longitude":
		if c.Longitude == 0 {
			return "", nil
		}
		return strconv.FormatFloat(c.Longitude, 'f', -1, 64), nil
	case "utc_offset":
		return formatFloatPtr(c.UTCOffset), nil
	case "method":
		return c.Method, nil
	case "asr_factor":
		return formatIntPtr(c.AsrFactor), nil
	case "fajr_angle":
		return formatFloatPtr(c.FajrAngle), nil
	case "isha_angle":
		return formatFloatPtr(c.IshaAngle), nil
	case "isha_interval_min":
		return formatIntPtr(c.IshaInterval), nil
	case "hijri_adjust":
		return formatIntPtr(c.HijriAdjust), nil
	case "time_format":
		return c.TimeFormat, nil
	case "prayers":
		return c.Prayers, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

func formatFloatPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func isValidPrayerName(name string) bool {
	for _, n := range prayer.EventNames {
		if n == name {
			return true
		}
	}
	return false
}

// MethodOrDefault parses the configured method, falling back to the given
// default when unset or unparsable.
func (c *Config) MethodOrDefault(def prayer.Method) prayer.Method {
	if c.Method == "" {
		return def
	}
	m, err := prayer.ParseMethod(c.Method)
	if err != nil {
		return def
	}
	return m
}

// AsrFactorOrDefault returns the asr factor, falling back to the default.
func (c *Config) AsrFactorOrDefault(def int) int {
	if c.AsrFactor != nil {
		return *c.AsrFactor
	}
	return def
}

// HijriAdjustOrZero returns the hijri day adjustment, zero when unset.
func (c *Config) HijriAdjustOrZero() int {
	if c.HijriAdjust != nil {
		return *c.HijriAdjust
	}
	return 0
}
