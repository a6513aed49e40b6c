package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/cjconf/internal/config"
	"github.com/kobzarvs/cjconf/internal/treesitter"
)

type Styles struct {
	Base     tcell.Style
	Title    tcell.Style
	Splash   tcell.Style
	Selected tcell.Style
	Preview  tcell.Style
	Status   tcell.Style
	Error    tcell.Style
	Syntax   map[string]tcell.Style
}

func NewStyles(t config.Theme) Styles {
	bg := parseColor(t.Background, tcell.ColorDefault)
	fg := parseColor(t.Foreground, tcell.ColorDefault)
	base := tcell.StyleDefault.Foreground(fg).Background(bg)
	fgStyle := func(name string) tcell.Style {
		return base.Foreground(parseColor(name, fg))
	}

	selected := base.Reverse(true)
	if t.SelectedBackground != "" {
		selected = base.
			Foreground(parseColor(t.SelectedForeground, bg)).
			Background(parseColor(t.SelectedBackground, fg))
	}
	return Styles{
		Base:     base,
		Title:    fgStyle(t.TitleForeground).Bold(true),
		Splash:   fgStyle(t.SplashForeground),
		Selected: selected,
		Preview:  fgStyle(t.PreviewForeground),
		Status:   fgStyle(t.StatusForeground),
		Error:    fgStyle(t.ErrorForeground).Bold(true),
		Syntax: map[string]tcell.Style{
			"keyword":  fgStyle(t.SyntaxKeyword),
			"string":   fgStyle(t.SyntaxString),
			"comment":  fgStyle(t.SyntaxComment).Italic(true),
			"variable": fgStyle(t.SyntaxVariable),
			"function": fgStyle(t.SyntaxFunction),
			"number":   fgStyle(t.SyntaxNumber),
			"operator": fgStyle(t.SyntaxOperator),
		},
	}
}

// Render draws v. Menus and prompts take the left half of the screen when a
// splash or preview occupies the right half; the bottom row is the status
// line.
func Render(s tcell.Screen, v View, st Styles) {
	s.SetStyle(st.Base)
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		s.Show()
		return
	}
	half := w / 2
	textMax := w
	if v.ShowPreview || len(v.Splash) > 0 {
		textMax = half - 1
	}
	bottom := h - 1
	if h == 1 {
		bottom = 1
	}
	put := func(x, y int, text string, style tcell.Style) int {
		if y >= bottom {
			return x
		}
		return drawText(s, x, y, textMax, text, style)
	}

	for i, line := range v.Splash {
		if i >= bottom {
			break
		}
		drawText(s, half, i, w, line, st.Splash)
	}

	row := 0
	put(0, row, v.Title, st.Title)
	row++
	if v.Subtitle != "" {
		put(0, row, v.Subtitle, st.Base)
		row++
	}
	row++

	for i, item := range v.Items {
		style := st.Base
		if i == v.Selected {
			style = st.Selected
		}
		put(2, row+i, item, style)
	}
	if len(v.Items) > 0 {
		row += len(v.Items) + 1
	}

	body := v.Body
	if room := bottom - row - len(v.Prompt) - 1; len(v.Prompt) > 0 && room >= 0 && len(body) > room {
		body = body[len(body)-room:]
	}
	for _, line := range body {
		put(0, row, line, st.Base)
		row++
	}
	if len(body) > 0 {
		row++
	}

	cursorX, cursorY := -1, -1
	for _, p := range v.Prompt {
		x := put(0, row, p.Label, st.Title)
		x = put(x, row, p.Value, st.Base)
		if p.Active && row < bottom {
			cursorX, cursorY = x, row
		}
		row++
	}
	if v.Footer != "" {
		put(0, row, v.Footer, st.Base)
	}

	if v.ShowPreview {
		drawText(s, half, 1, w, "Preview:", st.Title)
		for i, line := range v.Preview {
			y := i + 2
			if y >= bottom {
				break
			}
			drawHighlighted(s, half, y, w-1, line, v.PreviewSpans[i], st)
		}
	}

	if v.Status != "" && h > 1 {
		style := st.Status
		if v.StatusError {
			style = st.Error
		}
		drawText(s, 0, h-1, w, v.Status, style)
	}

	if cursorX >= 0 {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
	s.Show()
}

// drawText writes text from x up to maxX (exclusive) and returns the column
// after the last cell written.
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, r := range text {
		x = drawRune(s, x, y, maxX, r, style)
		if x < 0 {
			break
		}
	}
	if x < 0 {
		return maxX
	}
	return x
}

// drawRune returns -1 once the rune no longer fits.
func drawRune(s tcell.Screen, x, y, maxX int, r rune, style tcell.Style) int {
	if r == '\t' {
		r = ' '
	}
	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		return x
	}
	if x+rw > maxX {
		return -1
	}
	s.SetContent(x, y, r, nil, style)
	return x + rw
}

func drawHighlighted(s tcell.Screen, x, y, maxX int, line string, spans []treesitter.HighlightSpan, st Styles) {
	for i, r := range line {
		x = drawRune(s, x, y, maxX, r, spanStyle(i, spans, st))
		if x < 0 {
			return
		}
	}
}

// spanStyle picks the last span covering byte offset col; later captures
// are the more specific ones.
func spanStyle(col int, spans []treesitter.HighlightSpan, st Styles) tcell.Style {
	style := st.Preview
	for _, sp := range spans {
		if col < sp.StartCol || col >= sp.EndCol {
			continue
		}
		if sty, ok := st.Syntax[sp.Kind]; ok {
			style = sty
		}
	}
	return style
}

// parseColor accepts "#rrggbb", a tcell color name or "default". Anything
// else, including an empty name, gives fallback.
func parseColor(name string, fallback tcell.Color) tcell.Color {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "":
		return fallback
	case "default":
		return tcell.ColorDefault
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return fallback
}
