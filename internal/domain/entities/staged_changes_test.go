//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

func TestStagedChanges(t *testing.T) {
	t.Parallel()

	t.Run("should report empty when nothing is staged", func(t *testing.T) {
		t.Parallel()

		// given
		changes := &entities.StagedChanges{Ref: "HEAD"}

		// when
		empty := changes.Empty()

		// then
		assert.True(t, empty)
	})

	t.Run("should filter Go and shell files by extension", func(t *testing.T) {
		t.Parallel()

		// given
		changes := &entities.StagedChanges{
			Files: []string{"main.go", "scripts/deploy.sh", "README.md", "pkg/util.go"},
		}

		// when
		goFiles := changes.GoFiles()
		shellFiles := changes.ShellFiles()

		// then
		assert.Equal(t, []string{"main.go", "pkg/util.go"}, goFiles)
		assert.Equal(t, []string{"scripts/deploy.sh"}, shellFiles)
	})

	t.Run("should find staged go.mod files anywhere in the tree", func(t *testing.T) {
		t.Parallel()

		// given
		changes := &entities.StagedChanges{
			Files: []string{"go.mod", "tools/go.mod", "go.sum", "gomodule.go"},
		}

		// when
		modFiles := changes.ModFiles()

		// then
		assert.Equal(t, []string{"go.mod", "tools/go.mod"}, modFiles)
	})

	t.Run("should deduplicate Go directories preserving first-seen order", func(t *testing.T) {
		t.Parallel()

		// given
		changes := &entities.StagedChanges{
			Files: []string{"pkg/a.go", "main.go", "pkg/b.go", "cmd/tool/main.go"},
		}

		// when
		dirs := changes.GoDirs()

		// then
		assert.Equal(t, []string{"pkg", ".", "cmd/tool"}, dirs)
	})

	t.Run("should keep paths with spaces intact", func(t *testing.T) {
		t.Parallel()

		// given
		changes := &entities.StagedChanges{
			Files: []string{"docs/read me.md", "my dir/file.go"},
		}

		// when
		goFiles := changes.GoFiles()

		// then
		assert.Equal(t, []string{"my dir/file.go"}, goFiles)
	})
}
