//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/domain/repositories"
)

// SpyRunnerRepository implements repositories.RunnerRepository as a
// configurable spy. When ReportContent is set, the spy writes it to the
// path following a "--output" argument, imitating a tool that drops a
// report file next to its exit status.
type SpyRunnerRepository struct {
	// --- configured responses ---
	Result        entities.ProcessResult
	Err           error
	ReportContent []byte

	// --- Run ---
	Calls []RunCall
}

// RunCall records a single invocation of Run.
type RunCall struct {
	Dir  string
	Name string
	Args []string
}

var _ repositories.RunnerRepository = (*SpyRunnerRepository)(nil)

func (r *SpyRunnerRepository) Run(
	_ context.Context,
	dir, name string,
	args ...string,
) (entities.ProcessResult, error) {
	r.Calls = append(r.Calls, RunCall{Dir: dir, Name: name, Args: args})

	if r.ReportContent != nil {
		if path := OutputPath(args); path != "" {
			_ = os.WriteFile(path, r.ReportContent, 0o600)
		}
	}

	return r.Result, r.Err
}

// OutputPath returns the value following a "--output" flag, or empty.
func OutputPath(args []string) string {
	for i, arg := range args {
		if arg == "--output" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
