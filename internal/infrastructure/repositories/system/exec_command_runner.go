package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// ExecCommandRunner runs external tools through os/exec, capturing both
// output streams and the exit code.
type ExecCommandRunner struct{}

// NewExecCommandRunner creates a new ExecCommandRunner.
func NewExecCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{}
}

// Run executes name with args in dir (the working directory is inherited
// when dir is empty). A non-zero exit status is reported in the output, not
// as an error; errors mean the process could not be started at all.
func (it *ExecCommandRunner) Run(
	ctx context.Context,
	dir, name string,
	args ...string,
) (*entities.CommandOutput, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := &entities.CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return output, nil
}
