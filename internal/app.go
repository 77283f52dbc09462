package internal

import (
	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// AppInternal holds the assembled application: the full set of CLI
// controllers in display order.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate from the controller set.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
