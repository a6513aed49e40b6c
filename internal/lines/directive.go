package lines

import "strings"

// Kind names a category of startup-file line.
type Kind int

const (
	KindAlias Kind = iota
	KindExport
	KindTheme
	KindPlugin
	KindCommand
	KindArgument
)

func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindExport:
		return "export"
	case KindTheme:
		return "theme"
	case KindPlugin:
		return "plugin"
	case KindCommand:
		return "command"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Directive is a canonical line plus, for keyed kinds, the prefix that
// identifies older lines for the same key. Unkeyed directives have an empty
// Prefix and dedup by exact match.
type Directive struct {
	Kind   Kind
	Line   string
	Prefix string
}

// Keyed reports whether the directive replaces earlier lines sharing its prefix.
func (d Directive) Keyed() bool {
	return d.Prefix != ""
}

// Match is the upsert predicate for d.
func (d Directive) Match(line string) bool {
	return d.Prefix != "" && strings.HasPrefix(line, d.Prefix)
}

func Alias(name, command string) Directive {
	return Directive{
		Kind:   KindAlias,
		Line:   "alias " + name + "='" + command + "'",
		Prefix: "alias " + name + "=",
	}
}

func Export(name, value string) Directive {
	return Directive{
		Kind:   KindExport,
		Line:   "export " + name + "=" + value,
		Prefix: "export " + name + "=",
	}
}

// Theme selects the single active theme; any previous theme line is replaced.
func Theme(name string) Directive {
	return Directive{
		Kind:   KindTheme,
		Line:   "theme load " + name,
		Prefix: "theme load ",
	}
}

func Plugin(name string) Directive {
	return Directive{
		Kind:   KindPlugin,
		Line:   "plugin " + name + " enable",
		Prefix: "plugin " + name + " ",
	}
}

func Command(line string) Directive {
	return Directive{Kind: KindCommand, Line: line}
}

func Argument(line string) Directive {
	return Directive{Kind: KindArgument, Line: line}
}

// Apply writes d into path using upsert for keyed directives and append-once
// otherwise.
func Apply(path string, d Directive) (Status, error) {
	if d.Keyed() {
		return Upsert(path, d.Match, d.Line)
	}
	return AppendOnce(path, d.Line)
}
