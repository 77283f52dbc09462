package checkers

import (
	"context"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// GoLintChecker runs the style linter per staged Go file; any output at all
// fails the check. Diagnostics from every file are aggregated before the
// pass/fail decision.
type GoLintChecker struct {
	runner domainRepos.CommandRunner
}

// NewGoLintChecker creates a new GoLintChecker.
func NewGoLintChecker(runner domainRepos.CommandRunner) *GoLintChecker {
	return &GoLintChecker{runner: runner}
}

func (it *GoLintChecker) Label() string { return "golint" }

func (it *GoLintChecker) Applies(changes *entities.StagedChanges) bool {
	return len(changes.GoFiles()) > 0
}

func (it *GoLintChecker) Run(
	ctx context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	var details []string
	for _, file := range changes.GoFiles() {
		out, err := it.runner.Run(ctx, "", "golint", file)
		if err != nil {
			details = append(details, err.Error())
			continue
		}
		details = append(details, splitLines(out.Stdout)...)
	}

	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}
