// Package lines reads and rewrites shell startup files as ordered sequences
// of text lines.
package lines

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const defaultMode fs.FileMode = 0o644

// Read returns the lines of path. A missing file reads as no lines.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("lines.Read: %w", err)
	}
	return Split(data), nil
}

// Split breaks data on '\n'. A trailing newline does not start a new line.
func Split(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.Split(text, "\n")
}

// Join renders lines the way Write stores them: every line newline-terminated.
func Join(lines []string) []byte {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Write truncates path and stores lines, each terminated by '\n'.
func Write(path string, lines []string) error {
	mode := defaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, Join(lines), mode); err != nil {
		return fmt.Errorf("lines.Write: %w", err)
	}
	return nil
}

// Append adds one line at the end of path, creating the file if needed.
func Append(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, defaultMode)
	if err != nil {
		return fmt.Errorf("lines.Append: %w", err)
	}
	defer f.Close()

	prefix := ""
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err == nil && last[0] != '\n' {
			prefix = "\n"
		}
	}
	if _, err := f.WriteString(prefix + line + "\n"); err != nil {
		return fmt.Errorf("lines.Append: %w", err)
	}
	return nil
}

// Wipe truncates path to zero bytes.
func Wipe(path string) error {
	if err := os.Truncate(path, 0); err != nil {
		return fmt.Errorf("lines.Wipe: %w", err)
	}
	return nil
}

// RemoveAt deletes the 1-based line index from path. An index outside
// [1, len] leaves the file untouched and reports false.
func RemoveAt(path string, index int) (bool, error) {
	current, err := Read(path)
	if err != nil {
		return false, err
	}
	if index < 1 || index > len(current) {
		return false, nil
	}
	kept := make([]string, 0, len(current)-1)
	kept = append(kept, current[:index-1]...)
	kept = append(kept, current[index:]...)
	if err := Write(path, kept); err != nil {
		return false, err
	}
	return true, nil
}
