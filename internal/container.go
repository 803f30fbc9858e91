package internal

import (
	"github.com/rios0rios0/outdated/internal/domain/commands"
	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/infrastructure/controllers"
	"github.com/rios0rios0/outdated/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers every layer with the DIG container, bottom-up
// so each provider finds its dependencies already registered: infrastructure
// repositories, domain entities, domain commands, then controllers.
func RegisterProviders(container *dig.Container) error {
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	return container.Provide(NewAppInternal)
}
