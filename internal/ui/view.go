package ui

import (
	"fmt"

	"github.com/kobzarvs/cjconf/internal/treesitter"
)

// PromptLine is one input field as drawn. Only the active field shows the
// cursor.
type PromptLine struct {
	Label  string
	Value  string
	Active bool
}

// View is a snapshot of everything the screen shows. It shares nothing
// mutable with the controller.
type View struct {
	State    State
	Title    string
	Subtitle string
	Splash   []string
	Items    []string
	Selected int
	Body     []string
	Prompt   []PromptLine
	Footer   string

	ShowPreview  bool
	Preview      []string
	PreviewSpans map[int][]treesitter.HighlightSpan

	Status      string
	StatusError bool
}

func (c *Controller) View() View {
	v := View{
		State:       c.state,
		Selected:    -1,
		Status:      c.status,
		StatusError: c.statusErr,
	}
	switch c.state {
	case StateMain:
		v.Title = AppTitle
		v.Subtitle = "Version: " + c.version
		v.Splash = append([]string(nil), Splash...)
		v.Items = c.main.labels()
		v.Selected = c.main.index
	case StateEdit:
		v.Title = c.edit.title
		v.Items = c.edit.labels()
		v.Selected = c.edit.index
		c.withPreview(&v)
	case StatePrompt:
		p := c.prompt
		v.Title = p.title
		for i := 0; i <= p.cur && i < len(p.fields); i++ {
			f := p.fields[i]
			v.Prompt = append(v.Prompt, PromptLine{Label: f.label, Value: string(f.value), Active: i == p.cur})
		}
		c.withPreview(&v)
	case StateRemove:
		v.Title = "Remove line from " + c.target
		v.Body = make([]string, len(c.preview))
		for i, line := range c.preview {
			v.Body[i] = fmt.Sprintf("%d: %s", i+1, line)
		}
		v.Prompt = []PromptLine{{Label: RemovePrompt, Value: string(c.input), Active: true}}
	case StateConfirm:
		v.Title = SaveQuestion
		v.Body = []string{c.target}
		c.withPreview(&v)
	case StateMessage:
		v.Title = c.title
		v.Body = append([]string(nil), c.body...)
		v.Footer = PressAnyKey
	case StateManage:
		v.Title = c.manage.title
		v.Items = c.manage.labels()
		v.Selected = c.manage.index
	}
	return v
}

func (c *Controller) withPreview(v *View) {
	v.ShowPreview = true
	v.Preview = append([]string(nil), c.preview...)
	if len(c.spans) == 0 {
		return
	}
	v.PreviewSpans = make(map[int][]treesitter.HighlightSpan, len(c.spans))
	for line, spans := range c.spans {
		v.PreviewSpans[line] = append([]treesitter.HighlightSpan(nil), spans...)
	}
}
