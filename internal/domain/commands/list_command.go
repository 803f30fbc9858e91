package commands

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	infraRepos "github.com/rios0rios0/outdated/internal/infrastructure/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(dir string) ([]entities.CheckerStatus, error)
}

// ListCommand reports the registered checkers and whether each one detects
// a supported project in the target directory.
type ListCommand struct {
	registry *infraRepos.CheckerRegistry
}

// NewListCommand creates a new ListCommand with the given registry.
func NewListCommand(registry *infraRepos.CheckerRegistry) *ListCommand {
	return &ListCommand{registry: registry}
}

// Execute returns the detection status of every registered checker,
// sorted by name.
func (it *ListCommand) Execute(dir string) ([]entities.CheckerStatus, error) {
	abs, err := filepath.Abs(targetDir(dir))
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	names := it.registry.Names()
	sort.Strings(names)

	statuses := make([]entities.CheckerStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, entities.CheckerStatus{
			Name:     name,
			Detected: it.registry.Get(name).Detect(abs),
		})
	}

	return statuses, nil
}
