package entities

import (
	"strings"
)

// CommitMessage is a commit message split into lines. No structural parsing
// happens beyond line splitting; the validation rules live in the domain
// commands layer.
type CommitMessage struct {
	raw   string
	lines []string
}

// NewCommitMessage wraps the raw text of a commit message.
func NewCommitMessage(raw string) CommitMessage {
	return CommitMessage{
		raw:   raw,
		lines: strings.Split(strings.TrimSuffix(raw, "\n"), "\n"),
	}
}

// Raw returns the original message text.
func (m CommitMessage) Raw() string {
	return m.raw
}

// Subject returns the first line of the message.
func (m CommitMessage) Subject() string {
	if len(m.lines) == 0 {
		return ""
	}
	return m.lines[0]
}

// SecondLine returns the second line of the message and whether one exists.
// Single-line messages have no second line.
func (m CommitMessage) SecondLine() (string, bool) {
	if len(m.lines) < 2 {
		return "", false
	}
	return m.lines[1], true
}
