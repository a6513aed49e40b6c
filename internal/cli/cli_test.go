package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kobzarvs/cjconf/internal/app"
)

func stubTUI(t *testing.T, saved []string, err error) *app.Options {
	t.Helper()
	var got app.Options
	prev := runTUI
	runTUI = func(opts app.Options) ([]string, error) {
		got = opts
		return saved, err
	}
	t.Cleanup(func() { runTUI = prev })
	return &got
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	got := stubTUI(t, nil, nil)
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "cjconf") || !strings.Contains(out, "1.2.3") {
		t.Fatalf("version output = %q", out)
	}
	if got.Version != "" {
		t.Fatalf("TUI ran for --version")
	}
}

func TestDebugFlagReachesApp(t *testing.T) {
	got := stubTUI(t, nil, nil)
	if _, err := execute(t, "--debug"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !got.Debug || got.Version != "1.2.3" {
		t.Fatalf("options = %+v", *got)
	}
}

func TestRejectsArguments(t *testing.T) {
	stubTUI(t, nil, nil)
	if _, err := execute(t, "extra"); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}

func TestRestartNoticeAfterSave(t *testing.T) {
	stubTUI(t, []string{"~/.cjshrc"}, nil)
	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "~/.cjshrc") || !strings.Contains(out, "Restart your shell") {
		t.Fatalf("notice = %q", out)
	}
}

func TestNoNoticeWithoutSave(t *testing.T) {
	stubTUI(t, nil, nil)
	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestAppErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	stubTUI(t, nil, boom)
	if _, err := execute(t); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
