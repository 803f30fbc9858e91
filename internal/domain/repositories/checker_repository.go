package repositories

import (
	"context"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// CheckerRepository defines the interface for ecosystem-specific outdated
// dependency checks (dotnet packages, Go modules, Terraform modules).
//
// Checkers are read-only: they inspect a tree and report what could be
// upgraded, they never modify anything. Each implementation handles the
// specifics of its ecosystem's tooling while this interface lets the
// command layer treat them uniformly.
type CheckerRepository interface {
	// Name returns the checker identifier (e.g. "dotnet", "golang").
	Name() string

	// Detect returns true if the given directory uses this ecosystem.
	Detect(dir string) bool

	// Check runs the analysis and returns the normalized result. Each
	// checker honors the subset of options that applies to its
	// ecosystem and ignores the rest.
	Check(ctx context.Context, options entities.OutdatedOptions) (*entities.CheckResult, error)
}
