package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitgate/internal/domain/commands"
	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command commands.Install
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install) *InstallController {
	return &InstallController{command: command}
}

// GetBind returns the Cobra command metadata for this controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install [path]",
		Short: "Install the git hooks into a repository",
		Long: `Install the pre-commit (code_quality) and post-commit
(commit_message) hook scripts into the repository's .git/hooks
directory. Existing hooks are preserved unless --force is given.`,
	}
}

// Execute installs the hook scripts.
func (it *InstallController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	force, _ := cmd.Flags().GetBool("force")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	return it.command.Execute(ctx, commands.InstallOptions{
		RepoDir: repoDir,
		Force:   force,
	})
}

// AddFlags adds the install-specific flags to the given Cobra command.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Overwrite hooks that already exist")
}
