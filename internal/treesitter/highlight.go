// Package treesitter colors startup-file previews with the tree-sitter bash
// grammar.
package treesitter

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
)

// HighlightSpan covers bytes [StartCol, EndCol) of one line.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Kind     string
}

// Highlighter parses shell source and returns capture spans per line.
// It is not safe for concurrent use.
type Highlighter struct {
	parser *sitter.Parser
	query  *sitter.Query
}

func NewBash() (*Highlighter, error) {
	lang := bash.GetLanguage()
	query, err := sitter.NewQuery([]byte(bashHighlightQuery), lang)
	if err != nil {
		return nil, err
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Highlighter{parser: p, query: query}, nil
}

// Highlights maps line index to spans for the given lines.
func (h *Highlighter) Highlights(lines []string) map[int][]HighlightSpan {
	if h == nil || len(lines) == 0 {
		return nil
	}
	source := []byte(strings.Join(lines, "\n"))
	tree, err := h.parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return nil
	}
	defer tree.Close()
	return collectSpans(h.query, tree.RootNode(), source, lines)
}

func (h *Highlighter) Close() {
	if h == nil {
		return
	}
	h.query.Close()
	h.parser.Close()
}

func collectSpans(query *sitter.Query, root *sitter.Node, source []byte, lines []string) map[int][]HighlightSpan {
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, root)

	spans := make(map[int][]HighlightSpan)
	for m, ok := qc.NextMatch(); ok; m, ok = qc.NextMatch() {
		if m = qc.FilterPredicates(m, source); m == nil {
			continue
		}
		for _, c := range m.Captures {
			addSpan(spans, lines, c.Node.StartPoint(), c.Node.EndPoint(), query.CaptureNameForId(c.Index))
		}
	}
	return spans
}

// addSpan records a capture from..to as one span per line it touches. Rows
// past the end of lines are ignored and empty pieces are dropped.
func addSpan(spans map[int][]HighlightSpan, lines []string, from, to sitter.Point, kind string) {
	first, last := int(from.Row), int(to.Row)
	for row := first; row <= last && row < len(lines); row++ {
		sp := HighlightSpan{EndCol: len(lines[row]), Kind: kind}
		if row == first {
			sp.StartCol = int(from.Column)
		}
		if row == last {
			sp.EndCol = int(to.Column)
		}
		if sp.EndCol > sp.StartCol {
			spans[row] = append(spans[row], sp)
		}
	}
}

const bashHighlightQuery = `
((comment) @comment)
((string) @string)
((raw_string) @string)
((number) @number)
((variable_name) @variable)
((simple_expansion) @variable)
((command_name) @function)
((function_definition name: (word) @function))
[
  "if" "then" "else" "elif" "fi" "case" "esac" "for" "while" "until"
  "do" "done" "in" "function" "export" "local" "readonly" "declare" "unset"
] @keyword
["&&" "||" "|" "&" ";" "<" ">" ">>"] @operator
`
