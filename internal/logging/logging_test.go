package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "arcade", "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "game", "snake")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "game=snake") || !strings.Contains(out, "arcade") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "", "chatty"); err == nil {
		t.Error("invalid level should fail")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arcade.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("hello\n"); err != nil {
		t.Errorf("write: %v", err)
	}
}
