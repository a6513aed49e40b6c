package lines

// Predicate reports whether a line belongs to a key.
type Predicate func(line string) bool

// Status describes what a mutation did to the file.
type Status int

const (
	StatusAdded Status = iota
	StatusReplaced
	StatusExists
)

func (s Status) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusReplaced:
		return "replaced"
	case StatusExists:
		return "exists"
	default:
		return "unknown"
	}
}

// Upsert drops every line matching match and appends line at the end, so at
// most one line per key survives.
func Upsert(path string, match Predicate, line string) (Status, error) {
	current, err := Read(path)
	if err != nil {
		return StatusAdded, err
	}
	status := StatusAdded
	kept := make([]string, 0, len(current)+1)
	for _, l := range current {
		if match(l) {
			status = StatusReplaced
			continue
		}
		kept = append(kept, l)
	}
	kept = append(kept, line)
	if err := Write(path, kept); err != nil {
		return status, err
	}
	return status, nil
}

// AppendOnce appends line unless a byte-identical line is already present.
func AppendOnce(path, line string) (Status, error) {
	current, err := Read(path)
	if err != nil {
		return StatusAdded, err
	}
	for _, l := range current {
		if l == line {
			return StatusExists, nil
		}
	}
	if err := Append(path, line); err != nil {
		return StatusAdded, err
	}
	return StatusAdded, nil
}
