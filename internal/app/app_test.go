package app

import (
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/cjconf/internal/config"
	"github.com/kobzarvs/cjconf/internal/ui"
)

func newTestController(t *testing.T) (*ui.Controller, config.Paths) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Home = t.TempDir()
	paths := cfg.Resolve()
	if err := config.EnsureLayout(paths); err != nil {
		t.Fatalf("layout: %v", err)
	}
	return ui.New(paths, "test"), paths
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)
	return s
}

// feed posts keys from a goroutine so long sequences never overflow the
// screen's event queue.
func feed(s tcell.Screen, keys ...*tcell.EventKey) {
	go func() {
		for _, ev := range keys {
			s.PostEventWait(ev)
		}
	}()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runes(text string) []*tcell.EventKey {
	out := make([]*tcell.EventKey, 0, len(text))
	for _, r := range text {
		out = append(out, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return out
}

func TestLoopExitsFromMenu(t *testing.T) {
	ctrl, _ := newTestController(t)
	s := newTestScreen(t)

	feed(s, key(tcell.KeyUp), key(tcell.KeyEnter))
	loop(s, ctrl, ui.NewStyles(config.Default().Theme))

	if !ctrl.Done() {
		t.Fatalf("controller state = %v, want done", ctrl.State())
	}
}

func TestLoopSavesEdit(t *testing.T) {
	ctrl, paths := newTestController(t)
	s := newTestScreen(t)

	keys := []*tcell.EventKey{key(tcell.KeyEnter), key(tcell.KeyDown), key(tcell.KeyEnter)}
	keys = append(keys, runes("neofetch")...)
	keys = append(keys,
		key(tcell.KeyEnter), key(tcell.KeyEnter),
		key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyEnter),
		tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone),
		key(tcell.KeyUp), key(tcell.KeyEnter),
	)
	feed(s, keys...)
	loop(s, ctrl, ui.NewStyles(config.Default().Theme))

	data, err := os.ReadFile(paths.RCFile)
	if err != nil {
		t.Fatalf("read rc: %v", err)
	}
	if string(data) != "neofetch\n" {
		t.Fatalf("rc = %q", data)
	}
	if got := ctrl.Saved(); len(got) != 1 || got[0] != "~/.cjshrc" {
		t.Fatalf("saved = %v", got)
	}
}

func TestLoopCtrlCLeavesOriginal(t *testing.T) {
	ctrl, paths := newTestController(t)
	if err := os.WriteFile(paths.RCFile, []byte("echo hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestScreen(t)

	keys := []*tcell.EventKey{key(tcell.KeyEnter)}
	for i := 0; i < 6; i++ {
		keys = append(keys, key(tcell.KeyDown))
	}
	keys = append(keys, key(tcell.KeyEnter), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	feed(s, keys...)
	loop(s, ctrl, ui.NewStyles(config.Default().Theme))
	ctrl.Shutdown()

	data, err := os.ReadFile(paths.RCFile)
	if err != nil {
		t.Fatalf("read rc: %v", err)
	}
	if string(data) != "echo hi\n" {
		t.Fatalf("rc = %q, want original", data)
	}
	if _, err := os.Stat(paths.RCFile + paths.ScratchSuffix); !os.IsNotExist(err) {
		t.Fatalf("scratch file left behind: %v", err)
	}
}

func TestIsInterrupt(t *testing.T) {
	if !isInterrupt(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatalf("ctrl+c not treated as interrupt")
	}
	if isInterrupt(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) {
		t.Fatalf("plain c treated as interrupt")
	}
}
