package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cjconf.log")
	if err := Init(path, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("staged edit", "path", "/home/u/.cjshrc")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "staged edit") {
		t.Fatalf("log missing debug entry:\n%s", data)
	}
}

func TestInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cjconf.log")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("hidden")
	Info("shown")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug entry written at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Fatalf("info entry missing")
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Close()
	Debug("noop")
	Info("noop")
	Warn("noop")
	Error("noop")
}

func TestPathEnv(t *testing.T) {
	t.Setenv("CJCONF_LOG_FILE", "/tmp/custom.log")
	if got := Path("/cfg"); got != "/tmp/custom.log" {
		t.Fatalf("Path = %q, want %q", got, "/tmp/custom.log")
	}
	t.Setenv("CJCONF_LOG_FILE", "")
	if got := Path("/cfg"); got != "/cfg/cjconf.log" {
		t.Fatalf("Path = %q, want %q", got, "/cfg/cjconf.log")
	}
}
