package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tilemerge/internal/config"
)

func TestNewWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug"}, "test", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.Debug("moved", "dir", "left", "changed", true)

	out := buf.String()
	for _, want := range []string{"test", "moved", "dir=left", "changed=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn"}, "", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info line passed a warn logger: %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn line missing: %q", buf.String())
	}
}

func TestBadLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}, "", nil); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestNilFallbackDiscards(t *testing.T) {
	logger, err := New(config.LogConfig{}, "", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Error("nowhere")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilemerge.log")
	logger, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, "file", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("to disk", "session", "abc")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "session=abc") {
		t.Errorf("log file = %q, want session=abc", data)
	}
}
