package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/cjconf/internal/config"
	"github.com/kobzarvs/cjconf/internal/logger"
	"github.com/kobzarvs/cjconf/internal/treesitter"
	"github.com/kobzarvs/cjconf/internal/ui"
)

type Options struct {
	Version string
	Debug   bool
}

// App is the top-level runtime for cjconf.
type App struct {
	opts  Options
	saved []string
}

func New(opts Options) *App {
	return &App{opts: opts}
}

// Saved lists the startup files committed during the last Run.
func (a *App) Saved() []string {
	return a.saved
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("app.Run: load config: %w", err)
	}
	if dir, err := config.ConfigDir(); err == nil {
		if err := logger.Init(logger.Path(dir), a.opts.Debug); err != nil {
			return fmt.Errorf("app.Run: %w", err)
		}
		defer logger.Close()
	}

	paths := cfg.Resolve()
	if err := config.EnsureLayout(paths); err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	logger.Info("starting", "version", a.opts.Version, "rc", paths.RCFile, "profile", paths.ProfileFile)

	ctrl := ui.New(paths, a.opts.Version)
	defer func() {
		ctrl.Shutdown()
		a.saved = ctrl.Saved()
	}()
	if hl, err := treesitter.NewBash(); err != nil {
		logger.Warn("preview highlighting disabled", "error", err)
	} else {
		defer hl.Close()
		ctrl.SetHighlighter(hl)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer s.Fini()

	loop(s, ctrl, ui.NewStyles(cfg.Theme))
	logger.Info("exiting", "saved", ctrl.Saved())
	return nil
}

// loop feeds key events to the controller until it is done, the user hits
// Ctrl+C, or the screen goes away.
func loop(s tcell.Screen, ctrl *ui.Controller, st ui.Styles) {
	ui.Render(s, ctrl.View(), st)
	for !ctrl.Done() {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isInterrupt(ev) {
				logger.Info("interrupted", "state", ctrl.State().String())
				return
			}
			ctrl.Handle(ui.KeyFromEvent(ev))
		case *tcell.EventResize:
			s.Sync()
		}
		ui.Render(s, ctrl.View(), st)
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}
