//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/domain/repositories"
)

// StubCheckerRepository implements repositories.CheckerRepository with
// configured responses, recording what it was asked.
type StubCheckerRepository struct {
	// --- identity ---
	CheckerName string

	// --- Detect ---
	DetectResult bool
	DetectDirs   []string

	// --- Check ---
	Result     *entities.CheckResult
	CheckErr   error
	CheckCalls []entities.OutdatedOptions
}

var _ repositories.CheckerRepository = (*StubCheckerRepository)(nil)

func (c *StubCheckerRepository) Name() string { return c.CheckerName }

func (c *StubCheckerRepository) Detect(dir string) bool {
	c.DetectDirs = append(c.DetectDirs, dir)
	return c.DetectResult
}

func (c *StubCheckerRepository) Check(
	_ context.Context,
	options entities.OutdatedOptions,
) (*entities.CheckResult, error) {
	c.CheckCalls = append(c.CheckCalls, options)
	return c.Result, c.CheckErr
}
