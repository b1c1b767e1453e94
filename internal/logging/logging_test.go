package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Prefix: "test"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "k", 1)

	out := buf.String()
	for _, want := range []string{"hello", "run=", "k=1", "test"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn not logged: %q", buf.String())
	}

	if _, err := New(&buf, Options{Level: "chatty"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closeFn, err := Open(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("to file")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenDiscard(t *testing.T) {
	logger, closeFn, err := Open("", Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	logger.Info("nowhere")
}
