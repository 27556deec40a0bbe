// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Countdown CountdownConfig `toml:"countdown"`
	Alarm     AlarmConfig     `toml:"alarm"`
	Clock     ClockConfig     `toml:"clock"`
	Sound     SoundConfig     `toml:"sound"`
	Log       LogConfig       `toml:"log"`
	Journal   JournalConfig   `toml:"journal"`
}

// CountdownConfig maps the initial countdown duration.
type CountdownConfig struct {
	Hours   *int `toml:"hours"`
	Minutes *int `toml:"minutes"`
	Seconds *int `toml:"seconds"`
}

// AlarmConfig maps the time pre-filled in the new-alarm form.
type AlarmConfig struct {
	Hour   *int `toml:"hour"`
	Minute *int `toml:"minute"`
}

// ClockConfig maps clock rendering settings.
type ClockConfig struct {
	Locale     *string `toml:"locale"`
	TimeLayout *string `toml:"time-layout"`
	DateLayout *string `toml:"date-layout"`
}

// SoundConfig maps alarm sound settings.
type SoundConfig struct {
	Enabled *bool    `toml:"enabled"`
	Volume  *float64 `toml:"volume"`
}

// LogConfig maps logger settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// JournalConfig maps the event journal switch.
type JournalConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
