package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCommitMessageController); err != nil {
		return err
	}
	if err := container.Provide(NewCodeQualityController); err != nil {
		return err
	}
	if err := container.Provide(NewInstallController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	codeQualityController *CodeQualityController,
	commitMessageController *CommitMessageController,
	installController *InstallController,
) *[]entities.Controller {
	return &[]entities.Controller{
		codeQualityController,
		commitMessageController,
		installController,
	}
}
