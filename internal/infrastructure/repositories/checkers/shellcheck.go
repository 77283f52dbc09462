package checkers

import (
	"context"
	"strings"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// ShellcheckChecker lints staged shell scripts with shellcheck in its
// machine-parseable gcc output format; any output fails the check.
type ShellcheckChecker struct {
	runner domainRepos.CommandRunner
}

// NewShellcheckChecker creates a new ShellcheckChecker.
func NewShellcheckChecker(runner domainRepos.CommandRunner) *ShellcheckChecker {
	return &ShellcheckChecker{runner: runner}
}

func (it *ShellcheckChecker) Label() string { return "shellcheck" }

func (it *ShellcheckChecker) Applies(changes *entities.StagedChanges) bool {
	return len(changes.ShellFiles()) > 0
}

func (it *ShellcheckChecker) Run(
	ctx context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	var details []string
	for _, file := range changes.ShellFiles() {
		out, err := it.runner.Run(ctx, "", "shellcheck", "-f", "gcc", file)
		if err != nil {
			details = append(details, err.Error())
			continue
		}

		details = append(details, splitLines(out.Stdout)...)
		if !out.Succeeded() && strings.TrimSpace(out.Stdout) == "" {
			details = append(details, strings.TrimSpace(out.Stderr))
		}
	}

	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}
