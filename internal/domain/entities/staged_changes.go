package entities

import (
	"path/filepath"
	"strings"
)

// StagedChanges is the immutable set of files staged for the next commit,
// together with the tree reference they were diffed against. Paths are kept
// as an explicit slice; they are never reassembled from whitespace-joined
// text, so names containing spaces survive intact.
type StagedChanges struct {
	Ref   string
	Files []string
}

// Empty reports whether nothing is staged.
func (c *StagedChanges) Empty() bool {
	return len(c.Files) == 0
}

// GoFiles returns the staged paths ending in .go, preserving order.
func (c *StagedChanges) GoFiles() []string {
	var files []string
	for _, f := range c.Files {
		if strings.HasSuffix(f, ".go") {
			files = append(files, f)
		}
	}
	return files
}

// ShellFiles returns the staged paths ending in .sh, preserving order.
func (c *StagedChanges) ShellFiles() []string {
	var files []string
	for _, f := range c.Files {
		if strings.HasSuffix(f, ".sh") {
			files = append(files, f)
		}
	}
	return files
}

// ModFiles returns the staged go.mod files, preserving order.
func (c *StagedChanges) ModFiles() []string {
	var files []string
	for _, f := range c.Files {
		if filepath.Base(f) == "go.mod" {
			files = append(files, f)
		}
	}
	return files
}

// GoDirs returns the unique directories containing staged Go files, in
// first-seen order. Vet operates per directory, so two files in the same
// directory yield a single entry.
func (c *StagedChanges) GoDirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range c.GoFiles() {
		dir := filepath.Dir(f)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
