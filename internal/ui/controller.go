// Package ui holds the configurator's menu state machine and draws it on a
// tcell screen. The controller never touches the terminal; it is driven by
// Handle and observed through View.
package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/kobzarvs/cjconf/internal/catalog"
	"github.com/kobzarvs/cjconf/internal/config"
	"github.com/kobzarvs/cjconf/internal/lines"
	"github.com/kobzarvs/cjconf/internal/logger"
	"github.com/kobzarvs/cjconf/internal/session"
	"github.com/kobzarvs/cjconf/internal/treesitter"
)

type State int

const (
	StateMain State = iota
	StateEdit
	StatePrompt
	StateRemove
	StateMessage
	StateConfirm
	StateManage
	StateDone
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateEdit:
		return "edit"
	case StatePrompt:
		return "prompt"
	case StateRemove:
		return "remove"
	case StateMessage:
		return "message"
	case StateConfirm:
		return "confirm"
	case StateManage:
		return "manage"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

const (
	AppTitle     = "CJ's Shell Configurator"
	PressAnyKey  = "Press any key..."
	SaveQuestion = "Save changes? (y/n)"
	RemovePrompt = "Line # to remove: "
)

var Splash = []string{
	"   ______       __   _____    __  __",
	"  / ____/      / /  / ___/   / / / /",
	" / /      __  / /   \\__ \\   / /_/ / ",
	"/ /___   / /_/ /   ___/ /  / __  /  ",
	"\\____/   \\____/   /____/  /_/ /_/   ",
}

// Highlighter colors preview lines. *treesitter.Highlighter satisfies it.
type Highlighter interface {
	Highlights(lines []string) map[int][]treesitter.HighlightSpan
}

type action int

const (
	actExit action = iota
	actEditRC
	actEditProfile
	actThemes
	actPlugins
	actAlias
	actCommand
	actExport
	actTheme
	actPlugin
	actArgument
	actRemoveLine
	actWipe
	actList
	actDownload
	actUninstall
)

type menuItem struct {
	label string
	act   action
}

type menu struct {
	title string
	items []menuItem
	index int
}

func newMenu(title string, items ...menuItem) menu {
	return menu{title: title, items: items}
}

func (m *menu) move(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.index = ((m.index+delta)%n + n) % n
}

func (m *menu) current() menuItem {
	return m.items[m.index]
}

func (m *menu) labels() []string {
	out := make([]string, len(m.items))
	for i, it := range m.items {
		out[i] = fmt.Sprintf("%d) %s", i+1, it.label)
	}
	return out
}

var rcItems = []menuItem{
	{label: "Set alias", act: actAlias},
	{label: "Add startup command", act: actCommand},
	{label: "Set environment variable", act: actExport},
	{label: "Set theme", act: actTheme},
	{label: "Add plugin", act: actPlugin},
	{label: "Remove line", act: actRemoveLine},
	{label: "Wipe file", act: actWipe},
	{label: "Exit", act: actExit},
}

var profileItems = []menuItem{
	{label: "Set alias", act: actAlias},
	{label: "Add startup command", act: actCommand},
	{label: "Set environment variable", act: actExport},
	{label: "Add startup argument", act: actArgument},
	{label: "Remove line", act: actRemoveLine},
	{label: "Wipe file", act: actWipe},
	{label: "Exit", act: actExit},
}

// collection describes one installable kind, themes or plugins.
type collection struct {
	title  string
	dir    string
	exts   []string
	labels [3]string
}

// field is one line of a prompt. A required field cancels the prompt when
// left blank. Name fields are also trimmed; other values are kept exactly as
// typed.
type field struct {
	label    string
	value    []rune
	required bool
	name     bool
}

type prompt struct {
	title  string
	fields []field
	cur    int
	submit func(values []string) (string, error)
}

// Controller is the configurator's state machine. It owns at most one
// edit session at a time.
type Controller struct {
	paths   config.Paths
	version string
	hl      Highlighter

	state  State
	main   menu
	edit   menu
	manage menu

	sess    *session.Session
	target  string
	preview []string
	spans   map[int][]treesitter.HighlightSpan

	prompt *prompt
	input  []rune

	themes  collection
	plugins collection
	coll    *collection

	title string
	body  []string
	back  State

	status    string
	statusErr bool
	saved     []string
}

func New(paths config.Paths, version string) *Controller {
	c := &Controller{
		paths:   paths,
		version: version,
		state:   StateMain,
		themes: collection{
			title:  "Themes",
			dir:    paths.ThemesDir,
			exts:   catalog.ThemeExts,
			labels: [3]string{"List Themes", "Download Themes", "Uninstall Themes"},
		},
		plugins: collection{
			title:  "Plugins",
			dir:    paths.PluginsDir,
			exts:   catalog.PluginExts,
			labels: [3]string{"List Installed Plugins", "Download Plugins", "Uninstall Plugins"},
		},
	}
	c.main = newMenu(AppTitle,
		menuItem{label: "Edit Interactive (" + c.display(paths.RCFile) + ")", act: actEditRC},
		menuItem{label: "Edit Login Profile (" + c.display(paths.ProfileFile) + ")", act: actEditProfile},
		menuItem{label: "Manage Themes", act: actThemes},
		menuItem{label: "Manage Plugins", act: actPlugins},
		menuItem{label: "Exit", act: actExit},
	)
	return c
}

// SetHighlighter enables syntax colors in the edit preview.
func (c *Controller) SetHighlighter(h Highlighter) {
	c.hl = h
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Done() bool {
	return c.state == StateDone
}

// Saved lists the files committed so far, in display form.
func (c *Controller) Saved() []string {
	return append([]string(nil), c.saved...)
}

// Shutdown discards an edit session that is still open. The original file
// is left as it was and the scratch copy is removed.
func (c *Controller) Shutdown() {
	if c.sess == nil {
		return
	}
	_, _ = c.sess.Close(nil)
	c.sess = nil
	c.preview = nil
	c.spans = nil
}

// Handle advances the state machine by one key.
func (c *Controller) Handle(k Key) {
	c.status = ""
	c.statusErr = false
	switch c.state {
	case StateMain:
		c.handleMain(k)
	case StateEdit:
		c.handleEdit(k)
	case StatePrompt:
		c.handlePrompt(k)
	case StateRemove:
		c.handleRemove(k)
	case StateMessage:
		c.state = c.back
		c.title = ""
		c.body = nil
	case StateConfirm:
		c.closeSession(k.Kind == KeyRune && (k.Rune == 'y' || k.Rune == 'Y'))
	case StateManage:
		c.handleManage(k)
	}
	if c.sess != nil {
		c.refreshPreview()
	}
}

// navigate applies the shared menu movement keys and reports whether the
// key was consumed.
func navigate(m *menu, k Key) bool {
	switch {
	case k.Kind == KeyUp, k.Kind == KeyRune && k.Rune == 'k':
		m.move(-1)
	case k.Kind == KeyDown, k.Kind == KeyRune && k.Rune == 'j':
		m.move(1)
	default:
		return false
	}
	return true
}

func (c *Controller) handleMain(k Key) {
	if navigate(&c.main, k) || k.Kind != KeyEnter {
		return
	}
	switch c.main.current().act {
	case actEditRC:
		c.openSession(c.paths.RCFile, rcItems)
	case actEditProfile:
		c.openSession(c.paths.ProfileFile, profileItems)
	case actThemes:
		c.openManage(&c.themes)
	case actPlugins:
		c.openManage(&c.plugins)
	case actExit:
		c.state = StateDone
	}
}

func (c *Controller) openSession(path string, items []menuItem) {
	s, err := session.Open(path, c.paths.ScratchSuffix)
	if err != nil {
		c.fail(err)
		return
	}
	c.sess = s
	c.target = c.display(path)
	c.edit = newMenu("Configure "+c.target, items...)
	c.state = StateEdit
}

func (c *Controller) handleEdit(k Key) {
	if navigate(&c.edit, k) {
		return
	}
	if k.Kind == KeyEscape {
		c.leaveEdit()
		return
	}
	if k.Kind != KeyEnter {
		return
	}
	switch c.edit.current().act {
	case actAlias:
		c.ask("Set alias", []field{{label: "Alias name: ", required: true, name: true}, {label: "Command: "}},
			func(v []string) (string, error) {
				return c.apply(lines.Alias(v[0], v[1]), "Alias")
			})
	case actCommand:
		c.ask("Add startup command", []field{{label: "Startup command: ", required: true}},
			func(v []string) (string, error) {
				return c.apply(lines.Command(v[0]), "Command")
			})
	case actExport:
		c.ask("Set environment variable", []field{{label: "Variable name: ", required: true, name: true}, {label: "Value: "}},
			func(v []string) (string, error) {
				return c.apply(lines.Export(v[0], v[1]), "Export")
			})
	case actTheme:
		c.ask("Set theme", []field{{label: "Theme name: ", required: true, name: true}},
			func(v []string) (string, error) {
				return c.apply(lines.Theme(v[0]), "Theme")
			})
	case actPlugin:
		c.ask("Add plugin", []field{{label: "Plugin name: ", required: true, name: true}},
			func(v []string) (string, error) {
				return c.apply(lines.Plugin(v[0]), "Plugin")
			})
	case actArgument:
		c.ask("Add startup argument", []field{{label: "Startup argument: ", required: true}},
			func(v []string) (string, error) {
				return c.apply(lines.Argument(v[0]), "Argument")
			})
	case actRemoveLine:
		c.input = nil
		c.state = StateRemove
	case actWipe:
		if err := c.sess.Wipe(); err != nil {
			c.fail(err)
			return
		}
		c.message("File wiped.", nil, StateEdit)
	case actExit:
		c.leaveEdit()
	}
}

func (c *Controller) apply(d lines.Directive, noun string) (string, error) {
	st, err := c.sess.Apply(d)
	if err != nil {
		return "", err
	}
	switch {
	case d.Kind == lines.KindTheme:
		return "Theme set.", nil
	case st == lines.StatusExists:
		return noun + " already exists.", nil
	case st == lines.StatusReplaced:
		return noun + " updated.", nil
	default:
		return noun + " added.", nil
	}
}

func (c *Controller) leaveEdit() {
	changed, err := c.sess.Changed()
	if err == nil && changed {
		c.state = StateConfirm
		return
	}
	c.closeSession(false)
	if err != nil {
		c.fail(err)
	}
}

func (c *Controller) closeSession(keep bool) {
	path := c.target
	outcome, err := c.sess.Close(func() bool { return keep })
	c.sess = nil
	c.preview = nil
	c.spans = nil
	c.state = StateMain
	if err != nil {
		c.fail(err)
		return
	}
	switch outcome {
	case session.OutcomeCommitted:
		c.saved = append(c.saved, path)
		c.notify("Saved " + path + ". Restart your shell to apply changes.")
	case session.OutcomeDiscarded:
		c.notify("Discarded changes to " + path + ".")
	default:
		c.notify("No changes to " + path + ".")
	}
}

func (c *Controller) ask(title string, fields []field, submit func([]string) (string, error)) {
	c.prompt = &prompt{title: title, fields: fields, submit: submit}
	c.state = StatePrompt
}

func (c *Controller) handlePrompt(k Key) {
	p := c.prompt
	f := &p.fields[p.cur]
	switch k.Kind {
	case KeyRune:
		f.value = append(f.value, k.Rune)
	case KeyBackspace:
		if n := len(f.value); n > 0 {
			f.value = f.value[:n-1]
		}
	case KeyEscape:
		c.prompt = nil
		c.state = StateEdit
		c.notify("Cancelled.")
	case KeyEnter:
		if f.required && strings.TrimSpace(string(f.value)) == "" {
			c.prompt = nil
			c.state = StateEdit
			c.notify(strings.TrimSuffix(strings.TrimSpace(f.label), ":") + " is empty, nothing changed.")
			return
		}
		if p.cur < len(p.fields)-1 {
			p.cur++
			return
		}
		values := make([]string, len(p.fields))
		for i, fl := range p.fields {
			values[i] = string(fl.value)
			if fl.name {
				values[i] = strings.TrimSpace(values[i])
			}
		}
		c.prompt = nil
		msg, err := p.submit(values)
		if err != nil {
			c.state = StateEdit
			c.fail(err)
			return
		}
		c.message(msg, nil, StateEdit)
	}
}

func (c *Controller) handleRemove(k Key) {
	switch k.Kind {
	case KeyRune:
		c.input = append(c.input, k.Rune)
		return
	case KeyBackspace:
		if n := len(c.input); n > 0 {
			c.input = c.input[:n-1]
		}
		return
	case KeyEscape:
		c.input = nil
		c.state = StateEdit
		return
	case KeyEnter:
	default:
		return
	}
	text := strings.TrimSpace(string(c.input))
	c.input = nil
	c.state = StateEdit
	n, err := strconv.Atoi(text)
	if err != nil {
		return
	}
	removed, err := c.sess.RemoveLine(n)
	if err != nil {
		c.fail(err)
		return
	}
	if removed {
		c.message(fmt.Sprintf("Removed line %d.", n), nil, StateEdit)
	}
}

func (c *Controller) openManage(coll *collection) {
	c.coll = coll
	c.manage = newMenu("Manage "+coll.title,
		menuItem{label: coll.labels[0], act: actList},
		menuItem{label: coll.labels[1], act: actDownload},
		menuItem{label: coll.labels[2], act: actUninstall},
		menuItem{label: "Exit", act: actExit},
	)
	c.state = StateManage
}

func (c *Controller) handleManage(k Key) {
	if navigate(&c.manage, k) {
		return
	}
	if k.Kind == KeyEscape {
		c.state = StateMain
		return
	}
	if k.Kind != KeyEnter {
		return
	}
	switch c.manage.current().act {
	case actList:
		names, err := catalog.List(c.coll.dir, c.coll.exts...)
		if err != nil {
			c.fail(err)
			return
		}
		if len(names) == 0 {
			names = []string{"(none)"}
		}
		c.message("Installed "+c.coll.title+":", names, StateManage)
	case actDownload, actUninstall:
		c.message("Not yet implemented.", nil, StateManage)
	case actExit:
		c.state = StateMain
	}
}

func (c *Controller) message(title string, body []string, back State) {
	c.title = title
	c.body = body
	c.back = back
	c.state = StateMessage
}

func (c *Controller) refreshPreview() {
	got, err := c.sess.Preview()
	if err != nil {
		c.preview = nil
		c.spans = nil
		c.fail(err)
		return
	}
	c.preview = got
	c.spans = nil
	if c.hl != nil {
		c.spans = c.hl.Highlights(got)
	}
}

func (c *Controller) notify(msg string) {
	c.status = msg
	c.statusErr = false
}

func (c *Controller) fail(err error) {
	logger.Error("operation failed", "state", c.state.String(), "error", err)
	c.status = describe(err)
	c.statusErr = true
}

func describe(err error) string {
	detail := err.Error()
	var pe *fs.PathError
	if errors.As(err, &pe) {
		detail = pe.Error()
	}
	switch {
	case errors.Is(err, session.ErrOpen):
		return "Cannot open file: " + detail
	case errors.Is(err, session.ErrCommit):
		return "Save failed: " + detail
	default:
		return "Error: " + detail
	}
}

// display shortens paths under the home directory to ~/...
func (c *Controller) display(path string) string {
	home := strings.TrimSuffix(c.paths.Home, "/")
	if home != "" && strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}
