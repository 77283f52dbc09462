package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
	"github.com/rios0rios0/commitgate/internal/infrastructure/repositories/checkers"
	gitRepo "github.com/rios0rios0/commitgate/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/commitgate/internal/infrastructure/repositories/system"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the exec-backed command runner behind its domain interface
	if err := container.Provide(func() domainRepos.CommandRunner {
		return system.NewExecCommandRunner()
	}); err != nil {
		return err
	}

	// Register the local git repository behind its domain interface
	if err := container.Provide(func(runner domainRepos.CommandRunner) domainRepos.GitRepository {
		return gitRepo.NewLocalGitRepository(runner)
	}); err != nil {
		return err
	}

	// Register the checker registry with the pipeline in its fixed order
	if err := container.Provide(func(
		git domainRepos.GitRepository,
		runner domainRepos.CommandRunner,
	) *CheckerRegistry {
		reg := NewCheckerRegistry()
		reg.Register(checkers.NewWhitespaceChecker(git))
		reg.Register(checkers.NewFilenameChecker())
		reg.Register(checkers.NewGoSyntaxChecker())
		reg.Register(checkers.NewGoFormatChecker(runner))
		reg.Register(checkers.NewGoVetChecker(runner))
		reg.Register(checkers.NewGoLintChecker(runner))
		reg.Register(checkers.NewGoModChecker())
		reg.Register(checkers.NewShellcheckChecker(runner))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
