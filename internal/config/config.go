// Package config provides configuration management functionality for the chatkeys application.
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/connorhough/chatkeys/internal/games"
	"github.com/connorhough/chatkeys/internal/replay"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyPrefix        = "prefix"
	KeyToken         = "token"
	KeyGame          = "game"
	KeyBackend       = "backend"
	KeyTickInterval  = "tick_interval"
	KeyRepeatCeiling = "repeat_ceiling"
	KeyKeyDelay      = "key_delay"
	KeyWindowTitle   = "window_title"
	KeyKeymapFile    = "keymap_file"
	KeyLogLevel      = "log_level"
)

// Settings is the validated configuration of a bot run.
type Settings struct {
	Prefix        string
	Token         string
	Game          string
	Backend       string
	TickInterval  time.Duration
	RepeatCeiling int
	KeyDelay      time.Duration
	WindowTitle   string
	KeymapFile    string
	LogLevel      string
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault(KeyPrefix, ";")
	viper.SetDefault(KeyBackend, "robotgo")
	viper.SetDefault(KeyTickInterval, replay.DefaultInterval)
	viper.SetDefault(KeyRepeatCeiling, replay.DefaultCeiling)
	viper.SetDefault(KeyLogLevel, "info")
}

// Load reads Settings from viper and validates them.
func Load() (*Settings, error) {
	s := &Settings{
		Prefix:        viper.GetString(KeyPrefix),
		Token:         strings.TrimSpace(viper.GetString(KeyToken)),
		Game:          strings.ToLower(strings.TrimSpace(viper.GetString(KeyGame))),
		Backend:       viper.GetString(KeyBackend),
		TickInterval:  viper.GetDuration(KeyTickInterval),
		RepeatCeiling: viper.GetInt(KeyRepeatCeiling),
		KeyDelay:      viper.GetDuration(KeyKeyDelay),
		WindowTitle:   viper.GetString(KeyWindowTitle),
		KeymapFile:    viper.GetString(KeyKeymapFile),
		LogLevel:      viper.GetString(KeyLogLevel),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the settings can start a bot.
func (s *Settings) Validate() error {
	if utf8.RuneCountInString(s.Prefix) != 1 {
		return ErrInvalid(KeyPrefix, fmt.Sprintf("must be a single character, got %q", s.Prefix))
	}
	if s.Token == "" {
		return ErrMissing(KeyToken, "cannot build a bot without an OAuth token")
	}
	if s.Game == "" {
		return ErrMissing(KeyGame, "cannot build a bot without a supported game (one of: "+strings.Join(games.IDs(), ", ")+")")
	}
	if !games.Supported(s.Game) {
		return ErrInvalid(KeyGame, fmt.Sprintf("%q is either invalid or unsupported (supported: %s)", s.Game, strings.Join(games.IDs(), ", ")))
	}
	if s.TickInterval <= 0 {
		return ErrInvalid(KeyTickInterval, "must be a positive duration")
	}
	if s.RepeatCeiling <= 0 {
		return ErrInvalid(KeyRepeatCeiling, "must be a positive integer")
	}
	if s.KeyDelay < 0 {
		return ErrInvalid(KeyKeyDelay, "must not be negative")
	}
	return nil
}

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// SetValue sets a configuration value by key and persists it to the config file
func SetValue(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}
