//go:build unit

package checkers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	"github.com/rios0rios0/commitgate/internal/infrastructure/repositories/checkers"
	builders "github.com/rios0rios0/commitgate/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/commitgate/test/domain/repositorydoubles"
)

func TestGoVetChecker(t *testing.T) {
	t.Parallel()

	t.Run("should vet each directory exactly once", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.StubCommandRunner{
			DefaultOutput: &entities.CommandOutput{},
		}
		checker := checkers.NewGoVetChecker(runner)
		changes := builders.NewStagedChangesBuilder().
			WithFiles("pkg/a.go", "pkg/b.go", "cmd/tool/main.go").
			BuildStagedChanges()

		// when
		result := checker.Run(context.Background(), changes)

		// then
		require.True(t, result.Passed)
		assert.Equal(t, []string{"go vet ./pkg", "go vet ./cmd/tool"}, runner.CommandLines())
	})

	t.Run("should vet the repository root as a relative package", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.StubCommandRunner{
			DefaultOutput: &entities.CommandOutput{},
		}
		checker := checkers.NewGoVetChecker(runner)
		changes := builders.NewStagedChangesBuilder().
			WithFiles("main.go").
			BuildStagedChanges()

		// when
		result := checker.Run(context.Background(), changes)

		// then
		require.True(t, result.Passed)
		assert.Equal(t, []string{"go vet ."}, runner.CommandLines())
	})

	t.Run("should fail on a non-zero exit with the tool's diagnostics", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.StubCommandRunner{
			Outputs: map[string]*entities.CommandOutput{
				"go vet ./pkg": {
					Stderr:   "pkg/a.go:10:2: unreachable code",
					ExitCode: 1,
				},
			},
			DefaultOutput: &entities.CommandOutput{},
		}
		checker := checkers.NewGoVetChecker(runner)
		changes := builders.NewStagedChangesBuilder().
			WithFiles("pkg/a.go", "cmd/tool/main.go").
			BuildStagedChanges()

		// when
		result := checker.Run(context.Background(), changes)

		// then
		require.False(t, result.Passed)
		assert.Contains(t, result.Output(), "unreachable code")
		// the remaining directory is still vetted so all diagnostics surface
		assert.Len(t, runner.Calls, 2)
	})

	t.Run("should not apply without staged Go files", func(t *testing.T) {
		t.Parallel()

		// given
		changes := builders.NewStagedChangesBuilder().
			WithFiles("scripts/deploy.sh").
			BuildStagedChanges()

		// when / then
		assert.False(t, checkers.NewGoVetChecker(&doubles.StubCommandRunner{}).Applies(changes))
	})
}
