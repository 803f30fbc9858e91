package repositories

import (
	"context"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// RunnerRepository abstracts external process execution so checkers can be
// exercised with canned process results instead of real binaries.
type RunnerRepository interface {
	// Run executes name with args, optionally in dir (empty means the
	// inherited working directory), and captures the outcome. A non-zero
	// exit status is data, not an error; only a failure to run the
	// process at all is returned as an error.
	Run(ctx context.Context, dir, name string, args ...string) (entities.ProcessResult, error)
}
