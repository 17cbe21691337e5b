// Package config loads settings from a config file and the
// environment, falling back to defaults that match a fresh install.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings.
type Config struct {
	DataDir       string `mapstructure:"data_dir"`
	WorkMinutes   int    `mapstructure:"work_minutes"`
	BreakMinutes  int    `mapstructure:"break_minutes"`
	Notifications bool   `mapstructure:"notifications"`
}

// WorkDuration is the focus session length.
func (c Config) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

// BreakDuration is the break length between sessions.
func (c Config) BreakDuration() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}

// Load reads configuration from ~/.config/fokus/config.yaml (if
// present) and FOKUS_* environment variables, over the defaults. A
// missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("work_minutes", 25)
	v.SetDefault("break_minutes", 5)
	v.SetDefault("notifications", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "fokus"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("fokus")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.WorkMinutes <= 0 {
		return Config{}, fmt.Errorf("work_minutes must be positive, got %d", cfg.WorkMinutes)
	}
	if cfg.BreakMinutes <= 0 {
		return Config{}, fmt.Errorf("break_minutes must be positive, got %d", cfg.BreakMinutes)
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fokus"
	}
	return filepath.Join(home, ".local", "share", "fokus")
}
