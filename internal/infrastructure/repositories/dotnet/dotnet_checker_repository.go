package dotnet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/domain/repositories"
)

const (
	checkerName    = "dotnet"
	dotnetBinary   = "dotnet"
	reportFileName = "outdated.json"
)

// ErrPathConversion indicates the report path cannot be handed to the
// external tool as text.
var ErrPathConversion = errors.New("report path is not valid UTF-8 text")

// ErrOutputNotText indicates captured process output is not valid UTF-8.
var ErrOutputNotText = errors.New("captured process output is not valid UTF-8")

// DotnetCheckerRepository checks .NET projects by shelling out to the
// dotnet-outdated tool and reading back its JSON report.
type DotnetCheckerRepository struct {
	runner repositories.RunnerRepository
}

// NewDotnetCheckerRepository creates a new dotnet checker.
func NewDotnetCheckerRepository(runner repositories.RunnerRepository) *DotnetCheckerRepository {
	return &DotnetCheckerRepository{runner: runner}
}

// Name returns the checker identifier.
func (c *DotnetCheckerRepository) Name() string {
	return checkerName
}

// Detect returns true if the directory contains a solution or project file.
func (c *DotnetCheckerRepository) Detect(dir string) bool {
	for _, pattern := range []string{"*.sln", "*.csproj", "*.fsproj"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

// Check runs the analysis and flattens the report into normalized rows.
func (c *DotnetCheckerRepository) Check(
	ctx context.Context,
	options entities.OutdatedOptions,
) (*entities.CheckResult, error) {
	requirement, data, err := c.Outdated(ctx, options)
	if err != nil {
		return nil, err
	}

	return &entities.CheckResult{
		Checker:     checkerName,
		Requirement: requirement,
		Outdated:    flattenReport(data),
	}, nil
}

// Outdated invokes dotnet-outdated and reconciles its exit status and
// report file into a verdict plus the typed report.
//
// The exit status alone decides the verdict: the tool is told to fail when
// it finds updates, so a clean exit means up to date. The report is read
// and decoded regardless of the verdict, and any failure to produce, read,
// or decode it fails the whole call. The two are never cross-checked
// against each other.
func (c *DotnetCheckerRepository) Outdated(
	ctx context.Context,
	options entities.OutdatedOptions,
) (entities.IndicatedUpdateRequirement, *entities.DotnetOutdatedData, error) {
	tmpDir, err := os.MkdirTemp("", "outdated-dotnet-*")
	if err != nil {
		return entities.UpToDate, nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	reportPath := filepath.Join(tmpDir, reportFileName)
	if !utf8.ValidString(reportPath) {
		return entities.UpToDate, nil, fmt.Errorf("%w: %q", ErrPathConversion, reportPath)
	}

	result, err := c.runner.Run(ctx, "", dotnetBinary, buildArgs(options, reportPath)...)
	if err != nil {
		return entities.UpToDate, nil, fmt.Errorf("failed to run dotnet outdated: %w", err)
	}

	requirement := entities.UpToDate
	if !result.Success() {
		requirement = entities.UpdateRequired
		if logErr := logFailedRun(result); logErr != nil {
			return entities.UpToDate, nil, logErr
		}
	}

	content, err := os.ReadFile(reportPath)
	if err != nil {
		return entities.UpToDate, nil, fmt.Errorf("failed to read report file: %w", err)
	}

	data, err := decodeReport(content)
	if err != nil {
		return entities.UpToDate, nil, err
	}

	return requirement, data, nil
}

// logFailedRun emits the diagnostic lines for a non-success exit. Logging
// itself never fails the call, but captured output that cannot be decoded
// as text does.
func logFailedRun(result entities.ProcessResult) error {
	logger.Warnf("[%s] dotnet outdated exited with status %d", checkerName, result.ExitCode)

	if !utf8.Valid(result.Stdout) {
		return fmt.Errorf("%w: stdout", ErrOutputNotText)
	}
	if !utf8.Valid(result.Stderr) {
		return fmt.Errorf("%w: stderr", ErrOutputNotText)
	}

	logger.Debugf("[%s] stdout: %s", checkerName, result.Stdout)
	if len(result.Stderr) > 0 {
		logger.Warnf("[%s] stderr: %s", checkerName, result.Stderr)
	}

	return nil
}

// buildArgs maps the policy onto dotnet-outdated's argument grammar. The
// order is fixed and the enum renderings are wire contracts, so any change
// here changes what the tool receives.
func buildArgs(options entities.OutdatedOptions, reportPath string) []string {
	args := []string{
		"outdated",
		"--fail-on-updates",
		"--output", reportPath,
		"--output-format", "json",
	}

	if options.IncludeAutoReferences {
		args = append(args, "--include-auto-references")
	}

	args = append(args, "--pre-release", options.PreRelease.String())

	for _, name := range options.Include {
		args = append(args, "--include", name)
	}
	for _, name := range options.Exclude {
		args = append(args, "--exclude", name)
	}

	if options.Transitive {
		args = append(args,
			"--transitive",
			"--transitive-depth", strconv.FormatUint(uint64(options.TransitiveDepth), 10),
		)
	}

	args = append(args, "--version-lock", options.VersionLock.String())

	if options.InputDir != "" {
		args = append(args, options.InputDir)
	}

	return args
}

// flattenReport turns the nested report into one row per outdated package.
func flattenReport(data *entities.DotnetOutdatedData) []entities.OutdatedDependency {
	var rows []entities.OutdatedDependency
	for _, project := range data.Projects {
		for _, framework := range project.TargetFrameworks {
			for _, dependency := range framework.Dependencies {
				rows = append(rows, entities.OutdatedDependency{
					Project:         project.Name,
					Framework:       framework.Name,
					Name:            dependency.Name,
					ResolvedVersion: dependency.ResolvedVersion,
					LatestVersion:   dependency.LatestVersion,
					Severity:        dependency.UpgradeSeverity,
				})
			}
		}
	}
	return rows
}
