// Package config provides YAML-based configuration loading for tilemerge.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Side limits for a board dimension.
const (
	MinSide = 1
	MaxSide = 16
)

// ErrInvalid is returned by Validate for an unusable configuration.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for tilemerge.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Pacing   PacingConfig   `yaml:"pacing"`
	SSH      SSHConfig      `yaml:"ssh"`
	WS       WSConfig       `yaml:"ws"`
	Sessions SessionsConfig `yaml:"sessions"`
	Log      LogConfig      `yaml:"log"`
}

// BoardConfig defines the board opened by default.
// An empty Preset means Width and Height are used as given.
type BoardConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Preset string `yaml:"preset"`
}

// PacingConfig defines the settle delay after a changed move.
type PacingConfig struct {
	MovePauseMS int `yaml:"move_pause_ms"`
}

// MovePause returns the settle delay as a duration.
func (p PacingConfig) MovePause() time.Duration {
	return time.Duration(p.MovePauseMS) * time.Millisecond
}

// SSHConfig defines the SSH server settings.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMin) * time.Minute
}

// WSConfig defines the WebSocket server settings.
type WSConfig struct {
	Address string `yaml:"address"`
}

// SessionsConfig defines eviction of remote (WebSocket and MCP) games.
type SessionsConfig struct {
	IdleMin int `yaml:"idle_min"` // 0 disables eviction
}

// Idle returns how long an untouched session survives.
func (s SessionsConfig) Idle() time.Duration {
	return time.Duration(s.IdleMin) * time.Minute
}

// LogConfig defines log level and optional rotated file output.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Validate checks the values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.Board.Width < MinSide || c.Board.Width > MaxSide {
		return fmt.Errorf("config: board width %d out of range %d..%d: %w", c.Board.Width, MinSide, MaxSide, ErrInvalid)
	}
	if c.Board.Height < MinSide || c.Board.Height > MaxSide {
		return fmt.Errorf("config: board height %d out of range %d..%d: %w", c.Board.Height, MinSide, MaxSide, ErrInvalid)
	}
	if c.Board.Width*c.Board.Height < 2 {
		return fmt.Errorf("config: board %dx%d has fewer than 2 cells: %w", c.Board.Width, c.Board.Height, ErrInvalid)
	}
	if c.Pacing.MovePauseMS < 0 {
		return fmt.Errorf("config: move_pause_ms %d is negative: %w", c.Pacing.MovePauseMS, ErrInvalid)
	}
	if c.SSH.IdleTimeoutMin < 0 {
		return fmt.Errorf("config: idle_timeout_min %d is negative: %w", c.SSH.IdleTimeoutMin, ErrInvalid)
	}
	if c.Sessions.IdleMin < 0 {
		return fmt.Errorf("config: sessions.idle_min %d is negative: %w", c.Sessions.IdleMin, ErrInvalid)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}
