package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of examsprint.
type Config struct {
	DBPath   string         `yaml:"db_path"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pomodoro PomodoroConfig `yaml:"pomodoro"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty writes to stderr
}

// PomodoroConfig holds the preset lengths in minutes.
type PomodoroConfig struct {
	FocusMin      int `yaml:"focus_min"`
	ShortBreakMin int `yaml:"short_break_min"`
	LongBreakMin  int `yaml:"long_break_min"`
}

// DefaultDir returns ~/.examsprint, or .examsprint when the home directory
// cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".examsprint"
	}
	return filepath.Join(home, ".examsprint")
}

// DefaultPath is the location of the optional config file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		DBPath: filepath.Join(DefaultDir(), "examsprint.db"),
		Logging: LoggingConfig{
			Level: "warn",
		},
		Pomodoro: PomodoroConfig{
			FocusMin:      25,
			ShortBreakMin: 5,
			LongBreakMin:  15,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EXAMSPRINT_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("EXAMSPRINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EXAMSPRINT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	envMinutes("EXAMSPRINT_FOCUS_MIN", &c.Pomodoro.FocusMin)
	envMinutes("EXAMSPRINT_SHORT_BREAK_MIN", &c.Pomodoro.ShortBreakMin)
	envMinutes("EXAMSPRINT_LONG_BREAK_MIN", &c.Pomodoro.LongBreakMin)
}

// envMinutes ignores values that are not positive integers.
func envMinutes(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	valid := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	p := c.Pomodoro
	if p.FocusMin <= 0 || p.ShortBreakMin <= 0 || p.LongBreakMin <= 0 {
		return fmt.Errorf("pomodoro lengths must be positive (focus %d, short break %d, long break %d)",
			p.FocusMin, p.ShortBreakMin, p.LongBreakMin)
	}
	return nil
}
