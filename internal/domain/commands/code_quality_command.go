package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	"github.com/rios0rios0/commitgate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/commitgate/internal/infrastructure/repositories"
	"github.com/rios0rios0/commitgate/internal/ui"
)

// labelWidth left-justifies every check label to the same column so the
// OK/ERROR markers line up.
const labelWidth = 12

// CodeQuality is the interface for the code_quality task.
type CodeQuality interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// CodeQualityCommand runs the ordered check pipeline over the staged file
// set, halting at the first failing check.
type CodeQualityCommand struct {
	gitRepo  repositories.GitRepository
	registry *infraRepos.CheckerRegistry
	out      io.Writer
}

// NewCodeQualityCommand creates a new CodeQualityCommand reporting to stdout.
func NewCodeQualityCommand(
	gitRepo repositories.GitRepository,
	registry *infraRepos.CheckerRegistry,
) *CodeQualityCommand {
	return &CodeQualityCommand{
		gitRepo:  gitRepo,
		registry: registry,
		out:      os.Stdout,
	}
}

// SetOutput redirects the check report, used by tests.
func (it *CodeQualityCommand) SetOutput(w io.Writer) {
	it.out = w
}

// Execute resolves the staged file set and runs every applicable check in
// registration order. Diagnostics within one check are aggregated; the first
// failing check stops the run.
func (it *CodeQualityCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) error {
	ref, err := it.gitRepo.ResolveRef(ctx)
	if err != nil {
		return err
	}

	files, err := it.gitRepo.StagedFiles(ctx, ref)
	if err != nil {
		return err
	}

	changes := &entities.StagedChanges{Ref: ref, Files: files}
	if changes.Empty() {
		logger.Debug("Nothing staged, skipping all checks")
		return nil
	}

	for _, checker := range it.registry.All() {
		if !settings.CheckEnabled(checker.Label()) {
			logger.Debugf("Check %q disabled by config", checker.Label())
			continue
		}
		if !checker.Applies(changes) {
			continue
		}

		fmt.Fprintf(it.out, "%-*s", labelWidth, checker.Label())

		result := checker.Run(ctx, changes)
		if result.Passed {
			fmt.Fprintln(it.out, ui.OK())
			continue
		}

		fmt.Fprintln(it.out, ui.Error())
		if output := result.Output(); output != "" {
			fmt.Fprintln(it.out, output)
		}
		return fmt.Errorf("%s check failed", checker.Label())
	}

	return nil
}
