package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
)

// Install is the interface for the install task.
type Install interface {
	Execute(ctx context.Context, opts InstallOptions) error
}

// InstallOptions holds runtime options for hook installation.
type InstallOptions struct {
	RepoDir string
	Force   bool // overwrite hooks that already exist
}

// hookScript is the shell stub written into .git/hooks. The binary is
// resolved through PATH so reinstalling after moving it is unnecessary.
const hookScript = `#!/bin/sh
exec commitgate %s
`

// hookTasks maps each git hook to the commitgate task it runs, in the order
// they are installed.
var hookTasks = []struct {
	Hook string
	Task string
}{
	{Hook: "pre-commit", Task: "code_quality"},
	{Hook: "post-commit", Task: "commit_message"},
}

// InstallCommand wires commitgate into a repository's .git/hooks directory.
type InstallCommand struct{}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand() *InstallCommand {
	return &InstallCommand{}
}

// Execute writes the pre-commit and post-commit hook scripts. Existing hooks
// are left alone unless Force is set.
func (it *InstallCommand) Execute(_ context.Context, opts InstallOptions) error {
	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	gitDir := filepath.Join(repoDir, ".git")
	if info, statErr := os.Stat(gitDir); statErr != nil || !info.IsDir() {
		return fmt.Errorf("%s is not the root of a git repository", repoDir)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if mkdirErr := os.MkdirAll(hooksDir, 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create hooks directory: %w", mkdirErr)
	}

	for _, entry := range hookTasks {
		path := filepath.Join(hooksDir, entry.Hook)
		if _, statErr := os.Stat(path); statErr == nil && !opts.Force {
			return fmt.Errorf(
				"hook %s already exists, re-run with --force to overwrite", path,
			)
		}

		script := fmt.Sprintf(hookScript, entry.Task)
		if writeErr := os.WriteFile(path, []byte(script), 0o755); writeErr != nil {
			return fmt.Errorf("failed to write hook %s: %w", path, writeErr)
		}
		logger.Infof("Installed %s hook (%s task)", entry.Hook, entry.Task)
	}

	return nil
}
