package repositories

import (
	"context"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// CheckerRepository is a single step of the code-quality pipeline. Each
// checker aggregates all of its per-file diagnostics into one result; the
// pipeline decides whether to keep going.
type CheckerRepository interface {
	// Label is the check's display label and its key in the config file.
	Label() string

	// Applies reports whether the check has anything to do for the given
	// staged set (e.g. the Go checks only apply when Go files are staged).
	Applies(changes *entities.StagedChanges) bool

	// Run executes the check against the staged set.
	Run(ctx context.Context, changes *entities.StagedChanges) entities.CheckResult
}
