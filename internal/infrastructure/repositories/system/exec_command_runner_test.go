//go:build unit

package system_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitgate/internal/infrastructure/repositories/system"
)

func TestExecCommandRunner(t *testing.T) {
	t.Parallel()

	t.Run("should capture stdout of a successful command", func(t *testing.T) {
		t.Parallel()

		// given
		runner := system.NewExecCommandRunner()

		// when
		out, err := runner.Run(context.Background(), "", "sh", "-c", "printf hello")

		// then
		require.NoError(t, err)
		assert.Equal(t, "hello", out.Stdout)
		assert.True(t, out.Succeeded())
	})

	t.Run("should report a non-zero exit in the output, not as an error", func(t *testing.T) {
		t.Parallel()

		// given
		runner := system.NewExecCommandRunner()

		// when
		out, err := runner.Run(context.Background(), "", "sh", "-c", "echo oops >&2; exit 3")

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, out.ExitCode)
		assert.False(t, out.Succeeded())
		assert.Contains(t, out.Stderr, "oops")
	})

	t.Run("should error when the binary does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		runner := system.NewExecCommandRunner()

		// when
		_, err := runner.Run(context.Background(), "", "definitely-not-a-real-binary")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run")
	})

	t.Run("should run in the requested working directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		runner := system.NewExecCommandRunner()

		// when
		out, err := runner.Run(context.Background(), dir, "pwd")

		// then
		require.NoError(t, err)
		assert.Contains(t, out.Stdout, dir)
	})
}
