package internal

import (
	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// AppInternal aggregates the wired application pieces the entrypoint needs.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the app context from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
