package checkers

import (
	"context"
	"strings"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// GoVetChecker runs go vet once per unique directory containing staged Go
// files. Vet operates per package, so per-file invocations would be both
// redundant and wrong. Failure is decided by the tool's exit code rather
// than by pattern-matching its trailer text.
type GoVetChecker struct {
	runner domainRepos.CommandRunner
}

// NewGoVetChecker creates a new GoVetChecker.
func NewGoVetChecker(runner domainRepos.CommandRunner) *GoVetChecker {
	return &GoVetChecker{runner: runner}
}

func (it *GoVetChecker) Label() string { return "govet" }

func (it *GoVetChecker) Applies(changes *entities.StagedChanges) bool {
	return len(changes.GoFiles()) > 0
}

func (it *GoVetChecker) Run(
	ctx context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	var details []string
	for _, dir := range changes.GoDirs() {
		out, err := it.runner.Run(ctx, "", "go", "vet", packageArg(dir))
		if err != nil {
			details = append(details, err.Error())
			continue
		}
		if out.Succeeded() {
			continue
		}

		if diag := strings.TrimSpace(out.Stderr); diag != "" {
			details = append(details, diag)
		}
		if diag := strings.TrimSpace(out.Stdout); diag != "" {
			details = append(details, diag)
		}
	}

	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}

// packageArg turns a directory into a relative package path go vet accepts.
func packageArg(dir string) string {
	if dir == "." {
		return "."
	}
	return "./" + dir
}
