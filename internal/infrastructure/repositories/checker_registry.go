package repositories

import (
	domainRepos "github.com/rios0rios0/outdated/internal/domain/repositories"
)

// CheckerRegistry manages all registered checker implementations.
type CheckerRegistry struct {
	checkers map[string]domainRepos.CheckerRepository
}

// NewCheckerRegistry creates an empty checker registry.
func NewCheckerRegistry() *CheckerRegistry {
	return &CheckerRegistry{
		checkers: make(map[string]domainRepos.CheckerRepository),
	}
}

// Register adds a checker under its name. A later registration with the
// same name replaces the earlier one.
func (r *CheckerRegistry) Register(checker domainRepos.CheckerRepository) {
	r.checkers[checker.Name()] = checker
}

// Get returns the checker with the given name, or nil if not registered.
func (r *CheckerRegistry) Get(name string) domainRepos.CheckerRepository {
	return r.checkers[name]
}

// All returns every registered checker.
func (r *CheckerRegistry) All() []domainRepos.CheckerRepository {
	result := make([]domainRepos.CheckerRepository, 0, len(r.checkers))
	for _, checker := range r.checkers {
		result = append(result, checker)
	}
	return result
}

// Names returns the list of registered checker names.
func (r *CheckerRegistry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	return names
}
