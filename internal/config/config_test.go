package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"strip", func(c *Config) { c.Board.Width, c.Board.Height = 4, 1 }, true},
		{"single cell", func(c *Config) { c.Board.Width, c.Board.Height = 1, 1 }, false},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, false},
		{"too tall", func(c *Config) { c.Board.Height = MaxSide + 1 }, false},
		{"negative pause", func(c *Config) { c.Pacing.MovePauseMS = -1 }, false},
		{"zero pause", func(c *Config) { c.Pacing.MovePauseMS = 0 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 6\n  height: 4\npacing:\n  move_pause_ms: 120\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) = %v", path, err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 4 {
		t.Errorf("board = %dx%d, want 6x4", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Pacing.MovePause().Milliseconds() != 120 {
		t.Errorf("MovePause = %v, want 120ms", cfg.Pacing.MovePause())
	}
	// Unset sections keep their defaults.
	if cfg.SSH.Address != Default().SSH.Address {
		t.Errorf("SSH.Address = %q, want default", cfg.SSH.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [nope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 40\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("out-of-range custom file error = %v, want ErrInvalid", err)
	}
}

func TestLoadFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != Default() {
		t.Errorf("fallback config = %+v, want defaults", cfg)
	}
}
