package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	logger.Info("hidden")
	logger.WithField("session", "abc").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(out, "session=abc") {
		t.Errorf("Expected structured field in output, got %q", out)
	}
}

func TestNew_DefaultAndInvalidLevel(t *testing.T) {
	logger, err := New("", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", logger.GetLevel())
	}

	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, f, err := NewFile("debug", path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer f.Close()

	logger.Debug("written")
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}
}
