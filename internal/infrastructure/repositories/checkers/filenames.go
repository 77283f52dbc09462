package checkers

import (
	"context"
	"fmt"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// FilenameChecker rejects staged paths containing bytes outside the
// printable-ASCII range. All offending paths are reported together.
type FilenameChecker struct{}

// NewFilenameChecker creates a new FilenameChecker.
func NewFilenameChecker() *FilenameChecker {
	return &FilenameChecker{}
}

func (it *FilenameChecker) Label() string { return "filenames" }

func (it *FilenameChecker) Applies(_ *entities.StagedChanges) bool { return true }

func (it *FilenameChecker) Run(
	_ context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	var details []string
	for _, path := range changes.Files {
		if !isPrintableASCII(path) {
			details = append(details, fmt.Sprintf(
				"file name contains non-ASCII or non-printable characters: %q", path,
			))
		}
	}
	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
