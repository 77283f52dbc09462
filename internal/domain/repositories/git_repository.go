package repositories

import (
	"context"
)

// GitRepository exposes the version-control queries the hook tasks need.
// Implementations talk to the local repository; tests substitute a spy.
type GitRepository interface {
	// ResolveRef returns the tree reference staged changes are diffed
	// against: the HEAD commit hash, or the canonical empty-tree hash
	// when the repository has no commits yet.
	ResolveRef(ctx context.Context) (string, error)

	// StagedFiles lists the paths staged against the given reference,
	// excluding deletions.
	StagedFiles(ctx context.Context, ref string) ([]string, error)

	// HeadMessage returns the full text of the most recent commit message.
	HeadMessage(ctx context.Context) (string, error)

	// DiffCheck runs git's own index-diff check (trailing whitespace and
	// friends) against the given reference and returns its diagnostics,
	// empty when clean.
	DiffCheck(ctx context.Context, ref string) (string, error)
}
