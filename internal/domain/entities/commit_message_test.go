//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

func TestCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("should expose the first line as the subject", func(t *testing.T) {
		t.Parallel()

		// given
		msg := entities.NewCommitMessage("feat: add gate\n\nlonger body\n")

		// when
		subject := msg.Subject()

		// then
		assert.Equal(t, "feat: add gate", subject)
	})

	t.Run("should report no second line for single-line messages", func(t *testing.T) {
		t.Parallel()

		// given
		msg := entities.NewCommitMessage("feat: add gate\n")

		// when
		_, ok := msg.SecondLine()

		// then
		assert.False(t, ok)
	})

	t.Run("should return the second line when one exists", func(t *testing.T) {
		t.Parallel()

		// given
		msg := entities.NewCommitMessage("feat: add gate\nnot blank\n")

		// when
		second, ok := msg.SecondLine()

		// then
		assert.True(t, ok)
		assert.Equal(t, "not blank", second)
	})

	t.Run("should handle an empty message", func(t *testing.T) {
		t.Parallel()

		// given
		msg := entities.NewCommitMessage("")

		// when
		subject := msg.Subject()
		_, ok := msg.SecondLine()

		// then
		assert.Empty(t, subject)
		assert.False(t, ok)
	})
}
