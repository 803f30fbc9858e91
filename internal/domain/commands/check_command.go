package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	infraRepos "github.com/rios0rios0/outdated/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) ([]entities.CheckResult, error)
}

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	CheckerName string // If set, only run this checker (CLI override)
	Verbose     bool
	Options     entities.OutdatedOptions
}

// CheckCommand orchestrates a check run: resolve the target tree, pick the
// applicable checkers, run each one, and aggregate their results.
type CheckCommand struct {
	registry *infraRepos.CheckerRegistry
}

// NewCheckCommand creates a new CheckCommand with the given registry.
func NewCheckCommand(registry *infraRepos.CheckerRegistry) *CheckCommand {
	return &CheckCommand{registry: registry}
}

// Execute runs every applicable checker against the target tree. Any
// checker failure aborts the whole run: a broken checker must never let
// a CI gate pass as up to date.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) ([]entities.CheckResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	options := opts.Options

	dir, err := filepath.Abs(targetDir(options.InputDir))
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}
	options.InputDir = dir

	if opts.CheckerName != "" && it.registry.Get(opts.CheckerName) == nil {
		return nil, fmt.Errorf("unknown checker %q (registered: %v)", opts.CheckerName, it.registry.Names())
	}

	var results []entities.CheckResult

	for _, checker := range it.registry.All() {
		// Skip if CLI filter is set and doesn't match
		if opts.CheckerName != "" && checker.Name() != opts.CheckerName {
			continue
		}

		// Skip if disabled in config
		if checkerCfg, ok := settings.Checkers[checker.Name()]; ok {
			if !checkerCfg.Enabled {
				logger.Debugf("[%s] Disabled in config, skipping", checker.Name())
				continue
			}
		}

		if !checker.Detect(dir) {
			logger.Debugf("[%s] Not detected in %s, skipping", checker.Name(), dir)
			continue
		}

		logger.Infof("[%s] Checking %s", checker.Name(), dir)

		result, checkErr := checker.Check(ctx, mergeSettings(options, settings, checker.Name()))
		if checkErr != nil {
			return nil, fmt.Errorf("[%s] check failed: %w", checker.Name(), checkErr)
		}

		logger.Infof("[%s] %s (%d outdated)", checker.Name(), result.Requirement, len(result.Outdated))
		results = append(results, *result)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no supported project found in %s", dir)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Checker < results[j].Checker
	})

	return results, nil
}

func targetDir(inputDir string) string {
	if inputDir == "" {
		return "."
	}
	return inputDir
}

// mergeSettings appends the checker's standing include and exclude lists
// from the settings file after the ones given on the command line.
func mergeSettings(
	options entities.OutdatedOptions,
	settings *entities.Settings,
	name string,
) entities.OutdatedOptions {
	checkerCfg, ok := settings.Checkers[name]
	if !ok {
		return options
	}

	if len(checkerCfg.Include) > 0 {
		options.Include = append(append([]string{}, options.Include...), checkerCfg.Include...)
	}
	if len(checkerCfg.Exclude) > 0 {
		options.Exclude = append(append([]string{}, options.Exclude...), checkerCfg.Exclude...)
	}

	return options
}
