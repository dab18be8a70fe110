package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the file, the environment nor a flag sets a value.
const (
	DefaultCalendarBinary = "gog"
	DefaultPlacesBinary   = "goplaces"
	DefaultTimezone       = "America/New_York"
	DefaultStartHour      = 12
	DefaultEndHour        = 17
	DefaultDuration       = 30
)

// Environment variables read by Load.
const (
	EnvConfigPath     = "RENDEZVOUS_CONFIG"
	EnvCalendarBinary = "RENDEZVOUS_GOG_BIN"
	EnvPlacesBinary   = "RENDEZVOUS_GOPLACES_BIN"
	EnvTimezone       = "RENDEZVOUS_TZ"
	EnvStrict         = "RENDEZVOUS_STRICT"
	EnvCommandTimeout = "RENDEZVOUS_COMMAND_TIMEOUT"
)

// CalendarConfig configures the availability command.
type CalendarConfig struct {
	// Binary is the calendar query tool (default: gog).
	Binary string `yaml:"binary"`
	// Timezone is the IANA zone used when --tz is not given.
	Timezone string `yaml:"timezone"`
	// StartHour and EndHour bound the work window. Pointers, since 0 is a valid hour.
	StartHour *int `yaml:"start_hour"`
	EndHour   *int `yaml:"end_hour"`
	// Duration is the minimum free slot length in minutes.
	Duration *int `yaml:"duration"`
}

// PlacesConfig configures the venues command.
type PlacesConfig struct {
	// Binary is the places-search tool (default: goplaces).
	Binary    string  `yaml:"binary"`
	MinRating float64 `yaml:"min_rating"`
	Limit     int     `yaml:"limit"`
}

// Config is the top-level configuration.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	Places   PlacesConfig   `yaml:"places"`

	// CommandTimeout bounds each external command, as a Go duration string.
	// Empty or "0" means no timeout.
	CommandTimeout string `yaml:"command_timeout"`

	// Strict makes an external command failure fatal instead of yielding
	// an empty result.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	c := &Config{}
	c.Normalize()
	return c
}

// Normalize fills in missing values with defaults.
func (c *Config) Normalize() {
	if c.Calendar.Binary == "" {
		c.Calendar.Binary = DefaultCalendarBinary
	}
	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = DefaultTimezone
	}
	if c.Calendar.StartHour == nil {
		c.Calendar.StartHour = intPtr(DefaultStartHour)
	}
	if c.Calendar.EndHour == nil {
		c.Calendar.EndHour = intPtr(DefaultEndHour)
	}
	if c.Calendar.Duration == nil {
		c.Calendar.Duration = intPtr(DefaultDuration)
	}
	if c.Places.Binary == "" {
		c.Places.Binary = DefaultPlacesBinary
	}
}

// Timeout parses CommandTimeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.CommandTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid command_timeout %q: %w", c.CommandTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid command_timeout %q: must not be negative", c.CommandTimeout)
	}
	return d, nil
}

// DefaultPath returns the config file used when no path is given:
// $RENDEZVOUS_CONFIG, else <user config dir>/rendezvous/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rendezvous", "config.yaml")
}

// Load reads the config file at path, applies environment overrides and
// fills defaults. An empty path means DefaultPath, which may be absent;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// no config file; defaults apply
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	if _, err := cfg.Timeout(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(c *Config) error {
	if v := os.Getenv(EnvCalendarBinary); v != "" {
		c.Calendar.Binary = v
	}
	if v := os.Getenv(EnvPlacesBinary); v != "" {
		c.Places.Binary = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Calendar.Timezone = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be true or false", EnvStrict, v)
		}
		c.Strict = b
	}
	if v := os.Getenv(EnvCommandTimeout); v != "" {
		c.CommandTimeout = v
	}
	return nil
}

func intPtr(v int) *int {
	return &v
}
