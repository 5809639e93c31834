package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func loadFrom(t *testing.T, content string) (*Settings, error) {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	s, err := loadFrom(t, "token: abc\ngame: FTL\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Prefix != ";" {
		t.Errorf("prefix: got %q, want %q", s.Prefix, ";")
	}
	if s.Game != "ftl" {
		t.Errorf("game: got %q, want %q", s.Game, "ftl")
	}
	if s.Backend != "robotgo" {
		t.Errorf("backend: got %q, want %q", s.Backend, "robotgo")
	}
	if s.TickInterval != time.Millisecond {
		t.Errorf("tick_interval: got %v, want 1ms", s.TickInterval)
	}
	if s.RepeatCeiling != 20 {
		t.Errorf("repeat_ceiling: got %d, want 20", s.RepeatCeiling)
	}
	if s.LogLevel != "info" {
		t.Errorf("log_level: got %q, want info", s.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	s, err := loadFrom(t, `
prefix: "!"
token: abc
game: nds
backend: exec
tick_interval: 5ms
repeat_ceiling: 10
key_delay: 100ms
window_title: melonDS
keymap_file: /tmp/keymap.yaml
log_level: debug
`)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Settings{
		Prefix:        "!",
		Token:         "abc",
		Game:          "nds",
		Backend:       "exec",
		TickInterval:  5 * time.Millisecond,
		RepeatCeiling: 10,
		KeyDelay:      100 * time.Millisecond,
		WindowTitle:   "melonDS",
		KeymapFile:    "/tmp/keymap.yaml",
		LogLevel:      "debug",
	}
	if *s != want {
		t.Errorf("got %+v, want %+v", *s, want)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantKey string
	}{
		{name: "missing token", content: "game: ftl\n", wantKey: KeyToken},
		{name: "blank token", content: "token: '  '\ngame: ftl\n", wantKey: KeyToken},
		{name: "missing game", content: "token: abc\n", wantKey: KeyGame},
		{name: "unsupported game", content: "token: abc\ngame: tetris\n", wantKey: KeyGame},
		{name: "long prefix", content: "prefix: '!!'\ntoken: abc\ngame: ftl\n", wantKey: KeyPrefix},
		{name: "empty prefix", content: "prefix: ''\ntoken: abc\ngame: ftl\n", wantKey: KeyPrefix},
		{name: "zero tick", content: "token: abc\ngame: ftl\ntick_interval: 0s\n", wantKey: KeyTickInterval},
		{name: "zero ceiling", content: "token: abc\ngame: ftl\nrepeat_ceiling: 0\n", wantKey: KeyRepeatCeiling},
		{name: "negative delay", content: "token: abc\ngame: ftl\nkey_delay: -1ms\n", wantKey: KeyKeyDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFrom(t, tt.content)
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *config.Error, got %v", err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("key: got %q, want %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}

func TestGetSetValue(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("game: ftl\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	if _, err := GetValue("token"); err == nil {
		t.Error("expected error for unset key")
	}
	if err := SetValue("token", "abc"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	got, err := GetValue("token")
	if err != nil || got != "abc" {
		t.Errorf("GetValue(token) = %q, %v", got, err)
	}

	viper.Reset()
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to re-read config: %v", err)
	}
	if viper.GetString("token") != "abc" {
		t.Error("SetValue did not persist to the config file")
	}
}

func TestErrorMessages(t *testing.T) {
	err := ErrMissing(KeyToken, "cannot build a bot without an OAuth token")
	want := "invalid configuration: token: cannot build a bot without an OAuth token"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	underlying := errors.New("permission denied")
	err = ErrSource(KeyKeymapFile, underlying)
	if !errors.Is(err, underlying) {
		t.Error("error should unwrap to underlying error")
	}
}
