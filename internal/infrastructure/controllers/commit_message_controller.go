package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitgate/internal/domain/commands"
	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// CommitMessageController handles the "commit_message" subcommand, intended
// to run as git's post-commit (or commit-msg) hook.
type CommitMessageController struct {
	command commands.CommitMessage
}

// NewCommitMessageController creates a new CommitMessageController.
func NewCommitMessageController(command commands.CommitMessage) *CommitMessageController {
	return &CommitMessageController{command: command}
}

// GetBind returns the Cobra command metadata for this controller.
func (it *CommitMessageController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commit_message",
		Short: "Validate the most recent commit message",
		Long: `Validate the most recent commit message against three rules:
the subject length limit, the "type(scope): description" pattern,
and the blank line separating subject and body.

Wire this task as git's post-commit hook.`,
	}
}

// Execute runs the commit-message validation.
func (it *CommitMessageController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings)
}
