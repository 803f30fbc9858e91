//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/outdated/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// OutdatedDependencyBuilder helps create test result rows with a fluent interface.
type OutdatedDependencyBuilder struct {
	*testkit.BaseBuilder
	project         string
	framework       string
	name            string
	resolvedVersion string
	latestVersion   string
	severity        entities.Severity
}

// NewOutdatedDependencyBuilder creates a new row builder with sensible defaults.
func NewOutdatedDependencyBuilder() *OutdatedDependencyBuilder {
	return &OutdatedDependencyBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		project:         "test-project",
		framework:       "",
		name:            "test-package",
		resolvedVersion: "1.0.0",
		latestVersion:   "2.0.0",
		severity:        entities.SeverityMajor,
	}
}

// WithProject sets the owning project.
func (b *OutdatedDependencyBuilder) WithProject(project string) *OutdatedDependencyBuilder {
	b.project = project
	return b
}

// WithFramework sets the target framework.
func (b *OutdatedDependencyBuilder) WithFramework(framework string) *OutdatedDependencyBuilder {
	b.framework = framework
	return b
}

// WithName sets the dependency name.
func (b *OutdatedDependencyBuilder) WithName(name string) *OutdatedDependencyBuilder {
	b.name = name
	return b
}

// WithVersions sets the resolved and latest versions together.
func (b *OutdatedDependencyBuilder) WithVersions(resolved, latest string) *OutdatedDependencyBuilder {
	b.resolvedVersion = resolved
	b.latestVersion = latest
	return b
}

// WithSeverity sets the upgrade severity.
func (b *OutdatedDependencyBuilder) WithSeverity(severity entities.Severity) *OutdatedDependencyBuilder {
	b.severity = severity
	return b
}

// Build creates the row (satisfies testkit.Builder interface).
func (b *OutdatedDependencyBuilder) Build() interface{} {
	return b.BuildOutdatedDependency()
}

// BuildOutdatedDependency creates the row with a concrete return type.
func (b *OutdatedDependencyBuilder) BuildOutdatedDependency() entities.OutdatedDependency {
	return entities.OutdatedDependency{
		Project:         b.project,
		Framework:       b.framework,
		Name:            b.name,
		ResolvedVersion: b.resolvedVersion,
		LatestVersion:   b.latestVersion,
		Severity:        b.severity,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.project = "test-project"
	b.framework = ""
	b.name = "test-package"
	b.resolvedVersion = "1.0.0"
	b.latestVersion = "2.0.0"
	b.severity = entities.SeverityMajor
	return b
}

// Clone creates a deep copy of the OutdatedDependencyBuilder.
func (b *OutdatedDependencyBuilder) Clone() testkit.Builder {
	return &OutdatedDependencyBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		project:         b.project,
		framework:       b.framework,
		name:            b.name,
		resolvedVersion: b.resolvedVersion,
		latestVersion:   b.latestVersion,
		severity:        b.severity,
	}
}
