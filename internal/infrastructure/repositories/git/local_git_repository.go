package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// emptyTreeHash is the well-known hash of git's empty tree object, used as
// the diff baseline on repositories that have no commits yet.
const emptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// LocalGitRepository reads repository state through go-git where possible
// and shells out to git for the index-diff plumbing go-git does not expose.
type LocalGitRepository struct {
	runner domainRepos.CommandRunner
}

// NewLocalGitRepository creates a repository backed by the current working
// directory's git checkout.
func NewLocalGitRepository(runner domainRepos.CommandRunner) *LocalGitRepository {
	return &LocalGitRepository{runner: runner}
}

func (it *LocalGitRepository) open() (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

// ResolveRef returns the HEAD commit hash, or the canonical empty-tree hash
// when no commit exists, so index diffs work identically on fresh repos.
func (it *LocalGitRepository) ResolveRef(_ context.Context) (string, error) {
	repo, err := it.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return emptyTreeHash, nil
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// HeadMessage returns the full message of the most recent commit.
func (it *LocalGitRepository) HeadMessage(_ context.Context) (string, error) {
	repo, err := it.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("repository has no commits: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", head.Hash(), err)
	}

	return commit.Message, nil
}

// StagedFiles lists the paths staged against ref, excluding deletions. The
// output is NUL-separated so paths containing spaces or quoting-sensitive
// characters come through verbatim.
func (it *LocalGitRepository) StagedFiles(ctx context.Context, ref string) ([]string, error) {
	out, err := it.runner.Run(
		ctx, "", "git",
		"diff-index", "--cached", "--name-only", "--diff-filter=d", "-z", ref,
	)
	if err != nil {
		return nil, fmt.Errorf("git diff-index: %w", err)
	}
	if !out.Succeeded() {
		return nil, fmt.Errorf(
			"git diff-index exited %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr),
		)
	}

	var files []string
	for _, path := range strings.Split(out.Stdout, "\x00") {
		if path == "" {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// DiffCheck runs git's whitespace check over the staged changes and returns
// its diagnostics, empty when the index is clean. A non-zero exit without
// diagnostics on stdout means git itself failed, not that whitespace errors
// were found, and is reported as an error.
func (it *LocalGitRepository) DiffCheck(ctx context.Context, ref string) (string, error) {
	out, err := it.runner.Run(ctx, "", "git", "diff-index", "--check", "--cached", ref, "--")
	if err != nil {
		return "", fmt.Errorf("git diff-index --check: %w", err)
	}
	if out.Succeeded() {
		return "", nil
	}
	if strings.TrimSpace(out.Stdout) == "" {
		return "", fmt.Errorf(
			"git diff-index --check exited %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr),
		)
	}
	return strings.TrimRight(out.Stdout, "\n"), nil
}
