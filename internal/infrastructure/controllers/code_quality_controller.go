package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitgate/internal/domain/commands"
	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// CodeQualityController handles the "code_quality" subcommand, intended to
// run as git's pre-commit hook.
type CodeQualityController struct {
	command commands.CodeQuality
}

// NewCodeQualityController creates a new CodeQualityController.
func NewCodeQualityController(command commands.CodeQuality) *CodeQualityController {
	return &CodeQualityController{command: command}
}

// GetBind returns the Cobra command metadata for this controller.
func (it *CodeQualityController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "code_quality",
		Short: "Run the staged-file check pipeline",
		Long: `Run the ordered check pipeline over the staged files:
whitespace, ASCII file names, Go syntax, gofmt, go vet, golint,
go.mod validity, and shellcheck.

The run stops at the first failing check; diagnostics within one
check are reported together. Wire this task as git's pre-commit hook.`,
	}
}

// Execute runs the code-quality pipeline.
func (it *CodeQualityController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings)
}
