//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/outdated/internal/domain/commands"
	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	Statuses         []entities.CheckerStatus
	ExecuteErr       error
	LastDir          string
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(dir string) ([]entities.CheckerStatus, error) {
	s.ExecuteCallCount++
	s.LastDir = dir
	return s.Statuses, s.ExecuteErr
}
