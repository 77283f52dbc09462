package repositories

import (
	"context"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// CommandRunner abstracts external process invocation so checkers can be
// tested without the real binaries. A non-zero exit status is returned in
// the output; the error is reserved for failures to start the process at
// all (typically a missing tool).
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*entities.CommandOutput, error)
}
