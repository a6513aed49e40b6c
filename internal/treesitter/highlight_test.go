package treesitter

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
)

func kindsAt(spans []HighlightSpan, col int) []string {
	var kinds []string
	for _, s := range spans {
		if col >= s.StartCol && col < s.EndCol {
			kinds = append(kinds, s.Kind)
		}
	}
	return kinds
}

func contains(kinds []string, want string) bool {
	for _, k := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func TestBashHighlights(t *testing.T) {
	h, err := NewBash()
	if err != nil {
		t.Fatalf("NewBash error: %v", err)
	}
	defer h.Close()

	lines := []string{
		"# prompt settings",
		"alias ll='ls -la'",
		`echo "$HOME"`,
	}
	spans := h.Highlights(lines)

	if kinds := kindsAt(spans[0], 0); !contains(kinds, "comment") {
		t.Fatalf("line 0 kinds = %v, want comment", kinds)
	}
	if kinds := kindsAt(spans[1], 0); !contains(kinds, "function") {
		t.Fatalf("line 1 kinds = %v, want function", kinds)
	}
	if kinds := kindsAt(spans[1], 9); !contains(kinds, "string") {
		t.Fatalf("line 1 col 9 kinds = %v, want string", kinds)
	}
	if kinds := kindsAt(spans[2], 5); !contains(kinds, "string") {
		t.Fatalf("line 2 col 5 kinds = %v, want string", kinds)
	}
}

func TestHighlightsEmptyAndNil(t *testing.T) {
	var h *Highlighter
	if got := h.Highlights([]string{"echo"}); got != nil {
		t.Fatalf("nil highlighter returned %v", got)
	}
	h, err := NewBash()
	if err != nil {
		t.Fatalf("NewBash error: %v", err)
	}
	defer h.Close()
	if got := h.Highlights(nil); got != nil {
		t.Fatalf("empty input returned %v", got)
	}
}

func TestAddSpanSplitsAcrossLines(t *testing.T) {
	lines := []string{`echo "a`, `bc`, `d" x`}
	spans := make(map[int][]HighlightSpan)

	addSpan(spans, lines, sitter.Point{Row: 0, Column: 5}, sitter.Point{Row: 2, Column: 2}, "string")

	want := map[int]HighlightSpan{
		0: {StartCol: 5, EndCol: 7, Kind: "string"},
		1: {StartCol: 0, EndCol: 2, Kind: "string"},
		2: {StartCol: 0, EndCol: 2, Kind: "string"},
	}
	for row, w := range want {
		if len(spans[row]) != 1 || spans[row][0] != w {
			t.Fatalf("row %d spans = %v, want %v", row, spans[row], w)
		}
	}
}

func TestAddSpanDropsEmptyAndOutOfRange(t *testing.T) {
	lines := []string{"echo"}
	spans := make(map[int][]HighlightSpan)

	addSpan(spans, lines, sitter.Point{Row: 0, Column: 4}, sitter.Point{Row: 1, Column: 0}, "comment")

	if len(spans) != 0 {
		t.Fatalf("spans = %v, want none", spans)
	}
}
