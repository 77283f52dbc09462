//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitgate/internal/domain/commands"
	"github.com/rios0rios0/commitgate/internal/domain/entities"
	doubles "github.com/rios0rios0/commitgate/test/domain/repositorydoubles"
)

func runMessageCommand(t *testing.T, message string) error {
	t.Helper()

	spy := &doubles.SpyGitRepository{Message: message}
	cmd := commands.NewCommitMessageCommand(spy)
	return cmd.Execute(context.Background(), entities.DefaultSettings())
}

func TestCommitMessageCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should accept a compliant message with a body", func(t *testing.T) {
		t.Parallel()

		// given
		message := "feat: add staged-file gate\n\nLonger explanation here.\n"

		// when
		err := runMessageCommand(t, message)

		// then
		require.NoError(t, err)
	})

	t.Run("should accept a single-line message", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix: handle empty index\n")

		// then
		require.NoError(t, err)
	})

	t.Run("should accept a parenthesized scope", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "refactor(pipeline): split checker registry\n")

		// then
		require.NoError(t, err)
	})

	t.Run("should accept a subject of exactly the limit", func(t *testing.T) {
		t.Parallel()

		// given
		subject := "feat: " + strings.Repeat("a", 44) // 50 characters
		require.Len(t, subject, 50)

		// when
		err := runMessageCommand(t, subject+"\n")

		// then
		require.NoError(t, err)
	})

	t.Run("should reject a subject one over the limit", func(t *testing.T) {
		t.Parallel()

		// given
		subject := "feat: " + strings.Repeat("a", 45) // 51 characters
		require.Len(t, subject, 51)

		// when
		err := runMessageCommand(t, subject+"\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit is 50")
	})

	t.Run("should count characters rather than bytes against the limit", func(t *testing.T) {
		t.Parallel()

		// given
		subject := "feat: " + strings.Repeat("é", 44) // 50 characters, 94 bytes
		require.Equal(t, 50, utf8.RuneCountInString(subject))
		require.Greater(t, len(subject), 50)

		// when
		err := runMessageCommand(t, subject+"\n")

		// then
		require.NoError(t, err)
	})

	t.Run("should reject a multi-byte subject one character over the limit", func(t *testing.T) {
		t.Parallel()

		// given
		subject := "feat: " + strings.Repeat("é", 45) // 51 characters
		require.Equal(t, 51, utf8.RuneCountInString(subject))

		// when
		err := runMessageCommand(t, subject+"\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subject line is 51 characters")
	})

	t.Run("should reject an over-limit subject even when otherwise valid", func(t *testing.T) {
		t.Parallel()

		// given
		subject := "docs(readme): " + strings.Repeat("b", 40)
		require.Greater(t, len(subject), 50)

		// when
		err := runMessageCommand(t, subject+"\n\nbody\n")

		// then
		require.Error(t, err)
	})

	t.Run("should reject an unknown type tag", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "update: tweak things\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "allowed types")
	})

	t.Run("should reject a subject ending in a period", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix: handle empty index.\n")

		// then
		require.Error(t, err)
	})

	t.Run("should reject a subject with trailing whitespace", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix: handle empty index \n")

		// then
		require.Error(t, err)
	})

	t.Run("should reject an empty description", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix: \n")

		// then
		require.Error(t, err)
	})

	t.Run("should reject a one-character scope", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix(x): short scope\n")

		// then
		require.Error(t, err)
	})

	t.Run("should reject a missing space after the colon", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix:no space\n")

		// then
		require.Error(t, err)
	})

	t.Run("should reject a non-empty second line", func(t *testing.T) {
		t.Parallel()

		// when
		err := runMessageCommand(t, "fix: handle empty index\nbody starts too early\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "second line must be empty")
	})

	t.Run("should honor a configured subject limit", func(t *testing.T) {
		t.Parallel()

		// given
		subject := "feat: " + strings.Repeat("a", 60)
		spy := &doubles.SpyGitRepository{Message: subject + "\n"}
		settings := entities.DefaultSettings()
		settings.Message.SubjectLimit = 72

		// when
		err := commands.NewCommitMessageCommand(spy).
			Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
	})

	t.Run("should propagate failures to read the message", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{
			MessageErr: errors.New("repository has no commits"),
		}

		// when
		err := commands.NewCommitMessageCommand(spy).
			Execute(context.Background(), entities.DefaultSettings())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read commit message")
	})
}

func TestSubjectPattern(t *testing.T) {
	t.Parallel()

	t.Run("should build the pattern from configured types", func(t *testing.T) {
		t.Parallel()

		// given
		pattern := commands.SubjectPattern([]string{"wip"})

		// then
		assert.True(t, pattern.MatchString("wip: half-done work"))
		assert.False(t, pattern.MatchString("feat: add gate"))
	})
}
