package checkers

import (
	"context"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// WhitespaceChecker delegates to git's own index-diff check, which flags
// trailing whitespace and related textual problems in the staged changes.
type WhitespaceChecker struct {
	gitRepo domainRepos.GitRepository
}

// NewWhitespaceChecker creates a new WhitespaceChecker.
func NewWhitespaceChecker(gitRepo domainRepos.GitRepository) *WhitespaceChecker {
	return &WhitespaceChecker{gitRepo: gitRepo}
}

func (it *WhitespaceChecker) Label() string { return "whitespace" }

func (it *WhitespaceChecker) Applies(_ *entities.StagedChanges) bool { return true }

func (it *WhitespaceChecker) Run(
	ctx context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	output, err := it.gitRepo.DiffCheck(ctx, changes.Ref)
	if err != nil {
		return entities.FailResult(it.Label(), err.Error())
	}
	if output != "" {
		return entities.FailResult(it.Label(), output)
	}
	return entities.PassResult(it.Label())
}
