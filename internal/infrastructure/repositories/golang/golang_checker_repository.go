package golang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/domain/repositories"
)

const (
	checkerName = "golang"
	goBinary    = "go"
)

// goModule mirrors the fields of `go list -u -m -json` output used here.
type goModule struct {
	Path     string          `json:"Path"`
	Version  string          `json:"Version"`
	Main     bool            `json:"Main"`
	Indirect bool            `json:"Indirect"`
	Update   *goModuleUpdate `json:"Update"`
}

type goModuleUpdate struct {
	Path    string `json:"Path"`
	Version string `json:"Version"`
}

// GolangCheckerRepository checks Go modules using the go tool's own update
// discovery. The tool already applies "auto" pre-release semantics when
// proposing updates, so only the stricter policies are enforced here.
type GolangCheckerRepository struct {
	runner repositories.RunnerRepository
}

// NewGolangCheckerRepository creates a new golang checker.
func NewGolangCheckerRepository(runner repositories.RunnerRepository) *GolangCheckerRepository {
	return &GolangCheckerRepository{runner: runner}
}

// Name returns the checker identifier.
func (c *GolangCheckerRepository) Name() string {
	return checkerName
}

// Detect returns true if the directory has a go.mod file.
func (c *GolangCheckerRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "go.mod"))
	return err == nil
}

// Check lists available module updates and filters them by the active
// policy. TransitiveDepth and IncludeAutoReferences have no Go module
// equivalent and are ignored; Transitive=false drops indirect modules.
func (c *GolangCheckerRepository) Check(
	ctx context.Context,
	options entities.OutdatedOptions,
) (*entities.CheckResult, error) {
	dir := options.InputDir
	if dir == "" {
		dir = "."
	}

	result, err := c.runner.Run(ctx, dir, goBinary, "list", "-u", "-m", "-json", "all")
	if err != nil {
		return nil, fmt.Errorf("failed to run go list: %w", err)
	}
	if !result.Success() {
		return nil, fmt.Errorf("go list exited with status %d: %s",
			result.ExitCode, bytes.TrimSpace(result.Stderr))
	}

	modules, err := decodeModuleStream(result.Stdout)
	if err != nil {
		return nil, err
	}

	rows := collectRows(modules, options)

	requirement := entities.UpToDate
	if len(rows) > 0 {
		requirement = entities.UpdateRequired
	}

	return &entities.CheckResult{
		Checker:     checkerName,
		Requirement: requirement,
		Outdated:    rows,
	}, nil
}

// decodeModuleStream parses the concatenated JSON objects go list emits.
func decodeModuleStream(stream []byte) ([]goModule, error) {
	var modules []goModule

	decoder := json.NewDecoder(bytes.NewReader(stream))
	for decoder.More() {
		var module goModule
		if err := decoder.Decode(&module); err != nil {
			return nil, fmt.Errorf("failed to parse go list output: %w", err)
		}
		modules = append(modules, module)
	}

	return modules, nil
}

// collectRows keeps the modules with a policy-eligible update and
// normalizes them into result rows.
func collectRows(modules []goModule, options entities.OutdatedOptions) []entities.OutdatedDependency {
	project := mainModulePath(modules)

	var rows []entities.OutdatedDependency
	for _, module := range modules {
		if module.Main || module.Update == nil {
			continue
		}
		if module.Indirect && !options.Transitive {
			continue
		}
		if len(options.Include) > 0 && !slices.Contains(options.Include, module.Path) {
			continue
		}
		if slices.Contains(options.Exclude, module.Path) {
			continue
		}
		if options.PreRelease == entities.PreReleaseNever && entities.IsPrerelease(module.Update.Version) {
			continue
		}

		severity, ok := entities.SeverityBetween(module.Version, module.Update.Version)
		if !ok {
			logger.Debugf("[%s] skipping %s: cannot classify %s -> %s",
				checkerName, module.Path, module.Version, module.Update.Version)
			continue
		}
		if !options.VersionLock.Allows(severity) {
			continue
		}

		rows = append(rows, entities.OutdatedDependency{
			Project:         project,
			Name:            module.Path,
			ResolvedVersion: module.Version,
			LatestVersion:   module.Update.Version,
			Severity:        severity,
		})
	}

	return rows
}

func mainModulePath(modules []goModule) string {
	for _, module := range modules {
		if module.Main {
			return module.Path
		}
	}
	return ""
}
