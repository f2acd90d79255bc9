// Package config provides Viper-based configuration loading for the inferno game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output lists zap sink paths ("stderr", "stdout" or a file path).
	// Empty means the zap default for the chosen format.
	Output []string `mapstructure:"output"`
}

// PlayerConfig holds the player's starting stats for a new session.
type PlayerConfig struct {
	Level     int `mapstructure:"level"`
	HitPoints int `mapstructure:"hitpoints"`
	MaxHP     int `mapstructure:"max_hp"`
	Atk       int `mapstructure:"atk"`
	Def       int `mapstructure:"def"`
}

// SessionConfig holds tick driver settings.
type SessionConfig struct {
	// TickInterval is the wall-clock period between ticks.
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// ActionQueueCap bounds the player action queues.
	ActionQueueCap int `mapstructure:"action_queue_cap"`
	// OutboxCap bounds each NPC's outgoing response queue.
	OutboxCap int `mapstructure:"outbox_cap"`
	// PendingCommandCap bounds console lines waiting for the next tick.
	PendingCommandCap int `mapstructure:"pending_command_cap"`
	// EventBuffer is the capacity of the driver's tick event channel.
	// Zero makes the channel unbuffered.
	EventBuffer int `mapstructure:"event_buffer"`
}

// FrontendConfig holds terminal frontend settings.
type FrontendConfig struct {
	// ScrollbackCap is the maximum number of command results kept on screen.
	ScrollbackCap int `mapstructure:"scrollback_cap"`
	// HistoryCap is the maximum number of console lines kept for recall.
	HistoryCap int `mapstructure:"history_cap"`
}

// ContentConfig locates static game content.
type ContentConfig struct {
	// WorldFile is the path to the world YAML file.
	WorldFile string `mapstructure:"world_file"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Player   PlayerConfig   `mapstructure:"player"`
	Session  SessionConfig  `mapstructure:"session"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	Content  ContentConfig  `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePlayer(c.Player); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSession(c.Session); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateFrontend(c.Frontend); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Content.WorldFile == "" {
		errs = append(errs, "content.world_file must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	for _, out := range l.Output {
		if strings.TrimSpace(out) == "" {
			return errors.New("logging.output entries must not be empty")
		}
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	var errs []string
	if p.MaxHP < 1 {
		errs = append(errs, fmt.Sprintf("player.max_hp must be >= 1, got %d", p.MaxHP))
	}
	if p.HitPoints < 0 || p.HitPoints > p.MaxHP {
		errs = append(errs, fmt.Sprintf("player.hitpoints must be in [0, max_hp], got %d", p.HitPoints))
	}
	if p.Atk < 1 {
		errs = append(errs, fmt.Sprintf("player.atk must be >= 1, got %d", p.Atk))
	}
	if p.Def < 0 {
		errs = append(errs, fmt.Sprintf("player.def must be >= 0, got %d", p.Def))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSession(s SessionConfig) error {
	var errs []string
	if s.TickInterval <= 0 {
		errs = append(errs, "session.tick_interval must be positive")
	}
	if s.ActionQueueCap < 1 {
		errs = append(errs, fmt.Sprintf("session.action_queue_cap must be >= 1, got %d", s.ActionQueueCap))
	}
	if s.OutboxCap < 1 {
		errs = append(errs, fmt.Sprintf("session.outbox_cap must be >= 1, got %d", s.OutboxCap))
	}
	if s.PendingCommandCap < 1 {
		errs = append(errs, fmt.Sprintf("session.pending_command_cap must be >= 1, got %d", s.PendingCommandCap))
	}
	if s.EventBuffer < 0 {
		errs = append(errs, fmt.Sprintf("session.event_buffer must be >= 0, got %d", s.EventBuffer))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateFrontend(f FrontendConfig) error {
	var errs []string
	if f.ScrollbackCap < 1 {
		errs = append(errs, fmt.Sprintf("frontend.scrollback_cap must be >= 1, got %d", f.ScrollbackCap))
	}
	if f.HistoryCap < 0 {
		errs = append(errs, fmt.Sprintf("frontend.history_cap must be >= 0, got %d", f.HistoryCap))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with INFERNO_ prefix
	v.SetEnvPrefix("INFERNO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// Default returns the configuration built from defaults alone.
//
// Postcondition: Returns a valid Config.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config.Default: defaults are invalid: %v", err))
	}
	return cfg
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("player.level", 0)
	v.SetDefault("player.hitpoints", 20)
	v.SetDefault("player.max_hp", 20)
	v.SetDefault("player.atk", 5)
	v.SetDefault("player.def", 2)

	v.SetDefault("session.tick_interval", "50ms")
	v.SetDefault("session.action_queue_cap", 64)
	v.SetDefault("session.outbox_cap", 64)
	v.SetDefault("session.pending_command_cap", 32)
	v.SetDefault("session.event_buffer", 16)

	v.SetDefault("frontend.scrollback_cap", 256)
	v.SetDefault("frontend.history_cap", 100)

	v.SetDefault("content.world_file", "content/world.yaml")
}
