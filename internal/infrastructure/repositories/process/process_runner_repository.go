package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rios0rios0/outdated/internal/domain/entities"
)

// ProcessRunnerRepository runs external commands with os/exec.
type ProcessRunnerRepository struct{}

// NewProcessRunnerRepository creates a new process runner.
func NewProcessRunnerRepository() *ProcessRunnerRepository {
	return &ProcessRunnerRepository{}
}

// Run executes the command and captures stdout, stderr, and the exit code.
// A non-zero exit is a normal result; only failures to start or wait on
// the process are errors.
func (r *ProcessRunnerRepository) Run(
	ctx context.Context,
	dir, name string,
	args ...string,
) (entities.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := entities.ProcessResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return result, nil
}
