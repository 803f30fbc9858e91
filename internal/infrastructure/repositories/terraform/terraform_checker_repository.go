package terraform

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/outdated/internal/domain/entities"
	"github.com/rios0rios0/outdated/internal/domain/repositories"
)

const checkerName = "terraform"

// TerraformCheckerRepository checks git-pinned Terraform modules by
// comparing each ?ref= pin against the tags the remote advertises.
type TerraformCheckerRepository struct {
	tags repositories.RemoteTagsRepository
}

// NewTerraformCheckerRepository creates a new terraform checker.
func NewTerraformCheckerRepository(tags repositories.RemoteTagsRepository) *TerraformCheckerRepository {
	return &TerraformCheckerRepository{tags: tags}
}

// Name returns the checker identifier.
func (c *TerraformCheckerRepository) Name() string {
	return checkerName
}

// Detect returns true if the directory contains any .tf file.
func (c *TerraformCheckerRepository) Detect(dir string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, "*.tf"))
	return err == nil && len(matches) > 0
}

// Check scans the tree for pinned modules and compares every pin against
// the remote's tags under the active policy. Each remote is listed once
// per run, however many modules point at it.
func (c *TerraformCheckerRepository) Check(
	ctx context.Context,
	options entities.OutdatedOptions,
) (*entities.CheckResult, error) {
	dir := options.InputDir
	if dir == "" {
		dir = "."
	}

	deps, err := collectModules(dir)
	if err != nil {
		return nil, err
	}

	tagCache := make(map[string][]string)

	var rows []entities.OutdatedDependency
	for _, dep := range deps {
		if len(options.Include) > 0 && !slices.Contains(options.Include, dep.Name) {
			continue
		}
		if slices.Contains(options.Exclude, dep.Name) {
			continue
		}

		url := remoteURL(dep.Source)
		tags, cached := tagCache[url]
		if !cached {
			tags, err = c.tags.ListTags(ctx, url)
			if err != nil {
				return nil, fmt.Errorf("failed to list tags for %s: %w", url, err)
			}
			tagCache[url] = tags
		}

		latest, severity, found := bestUpgrade(dep.Ref, tags, options)
		if !found {
			logger.Debugf("[%s] %s is up to date at %s", checkerName, dep.Name, dep.Ref)
			continue
		}

		rows = append(rows, entities.OutdatedDependency{
			Project:         dep.FilePath,
			Name:            dep.Name,
			ResolvedVersion: dep.Ref,
			LatestVersion:   latest,
			Severity:        severity,
		})
	}

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

// collectModules walks the tree for .tf files and scans each one.
func collectModules(dir string) ([]moduleDependency, error) {
	var deps []moduleDependency

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if entry.Name() == ".git" || entry.Name() == ".terraform" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(entry.Name(), ".tf") {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", path, readErr)
		}

		relPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			relPath = path
		}

		deps = append(deps, scanFile(string(content), relPath)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return deps, nil
}

// bestUpgrade picks the highest tag that is newer than current and allowed
// by the lock and pre-release policy.
func bestUpgrade(
	current string,
	tags []string,
	options entities.OutdatedOptions,
) (string, entities.Severity, bool) {
	bestTag := ""
	var bestSeverity entities.Severity

	for _, tag := range tags {
		if !prereleaseAllowed(options.PreRelease, current, tag) {
			continue
		}

		severity, ok := entities.SeverityBetween(current, tag)
		if !ok {
			continue
		}
		if !options.VersionLock.Allows(severity) {
			continue
		}

		if bestTag == "" || entities.IsNewerVersion(bestTag, tag) {
			bestTag = tag
			bestSeverity = severity
		}
	}

	return bestTag, bestSeverity, bestTag != ""
}

// prereleaseAllowed applies the pre-release policy to one candidate tag.
func prereleaseAllowed(policy entities.PreRelease, current, candidate string) bool {
	if !entities.IsPrerelease(candidate) {
		return true
	}

	switch policy {
	case entities.PreReleaseAlways:
		return true
	case entities.PreReleaseNever:
		return false
	default:
		// Auto: pre-releases are eligible only when already on one.
		return entities.IsPrerelease(current)
	}
}
