package config

import (
	_ "embed"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  4,
			Height: 4,
			Preset: "classic",
		},
		Pacing: PacingConfig{
			MovePauseMS: 50,
		},
		SSH: SSHConfig{
			Address:        ":2222",
			HostKeyPath:    ".ssh/tilemerge_ed25519",
			IdleTimeoutMin: 30,
		},
		WS: WSConfig{
			Address: ":8080",
		},
		Sessions: SessionsConfig{
			IdleMin: 30,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
