package checkers

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// GoFormatChecker runs gofmt in list mode with simplification rules over the
// staged Go files; any file needing a rewrite fails the check.
type GoFormatChecker struct {
	runner domainRepos.CommandRunner
}

// NewGoFormatChecker creates a new GoFormatChecker.
func NewGoFormatChecker(runner domainRepos.CommandRunner) *GoFormatChecker {
	return &GoFormatChecker{runner: runner}
}

func (it *GoFormatChecker) Label() string { return "gofmt" }

func (it *GoFormatChecker) Applies(changes *entities.StagedChanges) bool {
	return len(changes.GoFiles()) > 0
}

func (it *GoFormatChecker) Run(
	ctx context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	args := append([]string{"-l", "-s"}, changes.GoFiles()...)
	out, err := it.runner.Run(ctx, "", "gofmt", args...)
	if err != nil {
		return entities.FailResult(it.Label(), err.Error())
	}
	if !out.Succeeded() {
		return entities.FailResult(it.Label(), strings.TrimSpace(out.Stderr))
	}

	var details []string
	for _, file := range splitLines(out.Stdout) {
		details = append(details, fmt.Sprintf("%s needs reformatting (gofmt -s)", file))
	}
	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}

// splitLines splits tool output into non-empty lines.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
