// Package session stages edits to a startup file in a scratch copy and
// promotes the copy over the original only when the user confirms.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"

	"github.com/kobzarvs/cjconf/internal/lines"
	"github.com/kobzarvs/cjconf/internal/logger"
)

// DefaultSuffix is appended to the original path to name the scratch copy.
const DefaultSuffix = ".tmp"

var (
	ErrOpen   = errors.New("cannot stage file")
	ErrClosed = errors.New("session closed")
	ErrCommit = errors.New("commit failed")
)

// Outcome is the result of closing a session.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeCommitted
	OutcomeDiscarded
	OutcomeCommitFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeCommitted:
		return "committed"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeCommitFailed:
		return "commit failed"
	default:
		return "unknown"
	}
}

// Session owns one scratch copy of an original file from Open until Close.
// The original is only written by Close, in a single rename.
type Session struct {
	original string
	scratch  string
	closed   bool
}

// Open copies original to original+suffix. If the copy fails after the
// scratch file was created it is removed again; a file that was already at
// that path is left alone when the original cannot be read. The returned
// error wraps ErrOpen.
func Open(original, suffix string) (*Session, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	scratch := original + suffix
	if created, err := copyFile(original, scratch); err != nil {
		if created {
			_ = os.Remove(scratch)
		}
		logger.Warn("session open failed", "path", original, "error", err)
		return nil, fmt.Errorf("session.Open: %w: %w", ErrOpen, err)
	}
	logger.Info("session opened", "path", original, "scratch", scratch)
	return &Session{original: original, scratch: scratch}, nil
}

// Original returns the path being edited.
func (s *Session) Original() string {
	return s.original
}

// Scratch returns the path of the staged copy.
func (s *Session) Scratch() string {
	return s.scratch
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Upsert replaces every line matching match with line, appended at the end.
func (s *Session) Upsert(match lines.Predicate, line string) (lines.Status, error) {
	if s.closed {
		return lines.StatusAdded, ErrClosed
	}
	status, err := lines.Upsert(s.scratch, match, line)
	s.logMutation("upsert", line, err)
	return status, err
}

// AppendOnce appends line unless an identical line exists.
func (s *Session) AppendOnce(line string) (lines.Status, error) {
	if s.closed {
		return lines.StatusAdded, ErrClosed
	}
	status, err := lines.AppendOnce(s.scratch, line)
	s.logMutation("append", line, err)
	return status, err
}

// Apply routes d to Upsert or AppendOnce.
func (s *Session) Apply(d lines.Directive) (lines.Status, error) {
	if d.Keyed() {
		return s.Upsert(d.Match, d.Line)
	}
	return s.AppendOnce(d.Line)
}

// Wipe empties the scratch copy.
func (s *Session) Wipe() error {
	if s.closed {
		return ErrClosed
	}
	err := lines.Wipe(s.scratch)
	s.logMutation("wipe", "", err)
	return err
}

// RemoveLine deletes the 1-based line index. Out-of-range indexes are a
// no-op and report false.
func (s *Session) RemoveLine(index int) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	removed, err := lines.RemoveAt(s.scratch, index)
	s.logMutation("remove", fmt.Sprint(index), err)
	return removed, err
}

// Preview reads the current scratch content.
func (s *Session) Preview() ([]string, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return lines.Read(s.scratch)
}

// Changed reports whether the scratch copy differs from the original in any
// byte.
func (s *Session) Changed() (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	same, err := sameContent(s.original, s.scratch)
	if err != nil {
		return false, fmt.Errorf("session.Changed: %w", err)
	}
	return !same, nil
}

// Close ends the session. When the scratch copy differs from the original,
// decide is asked whether to keep the edit; a nil decide discards. The
// scratch copy is removed on every path.
func (s *Session) Close(decide func() bool) (Outcome, error) {
	if s.closed {
		return OutcomeUnchanged, ErrClosed
	}
	outcome, err := s.finish(decide)
	s.closed = true
	if rmErr := os.Remove(s.scratch); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		err = multierr.Append(err, fmt.Errorf("session.Close: remove scratch: %w", rmErr))
	}
	if err != nil {
		logger.Error("session closed with error", "path", s.original, "outcome", outcome.String(), "error", err)
	} else {
		logger.Info("session closed", "path", s.original, "outcome", outcome.String())
	}
	return outcome, err
}

func (s *Session) finish(decide func() bool) (Outcome, error) {
	changed, err := s.Changed()
	if err != nil {
		return OutcomeDiscarded, err
	}
	if !changed {
		return OutcomeUnchanged, nil
	}
	if decide == nil || !decide() {
		return OutcomeDiscarded, nil
	}
	if err := replaceFile(s.scratch, s.original); err != nil {
		return OutcomeCommitFailed, fmt.Errorf("session.Close: %w: %w", ErrCommit, err)
	}
	return OutcomeCommitted, nil
}

func (s *Session) logMutation(op, line string, err error) {
	if err != nil {
		logger.Warn("session mutation failed", "op", op, "scratch", s.scratch, "line", line, "error", err)
		return
	}
	logger.Debug("session mutation", "op", op, "scratch", s.scratch, "line", line)
}
