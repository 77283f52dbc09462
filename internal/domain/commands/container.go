package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewCommitMessageCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCodeQualityCommand); err != nil {
		return err
	}
	if err := container.Provide(NewInstallCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CommitMessageCommand) CommitMessage {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CodeQualityCommand) CodeQuality {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *InstallCommand) Install {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
