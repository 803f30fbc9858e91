//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/outdated/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// OutdatedOptionsBuilder helps create test policies with a fluent interface.
type OutdatedOptionsBuilder struct {
	*testkit.BaseBuilder
	options entities.OutdatedOptions
}

// NewOutdatedOptionsBuilder creates a new options builder seeded with the
// production defaults.
func NewOutdatedOptionsBuilder() *OutdatedOptionsBuilder {
	return &OutdatedOptionsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		options:     entities.NewOutdatedOptions(),
	}
}

// WithIncludeAutoReferences sets the auto-references flag.
func (b *OutdatedOptionsBuilder) WithIncludeAutoReferences(include bool) *OutdatedOptionsBuilder {
	b.options.IncludeAutoReferences = include
	return b
}

// WithPreRelease sets the pre-release policy.
func (b *OutdatedOptionsBuilder) WithPreRelease(preRelease entities.PreRelease) *OutdatedOptionsBuilder {
	b.options.PreRelease = preRelease
	return b
}

// WithInclude sets the include filter list.
func (b *OutdatedOptionsBuilder) WithInclude(names ...string) *OutdatedOptionsBuilder {
	b.options.Include = names
	return b
}

// WithExclude sets the exclude filter list.
func (b *OutdatedOptionsBuilder) WithExclude(names ...string) *OutdatedOptionsBuilder {
	b.options.Exclude = names
	return b
}

// WithTransitive sets the transitive flag and depth together.
func (b *OutdatedOptionsBuilder) WithTransitive(depth uint) *OutdatedOptionsBuilder {
	b.options.Transitive = true
	b.options.TransitiveDepth = depth
	return b
}

// WithVersionLock sets the version lock policy.
func (b *OutdatedOptionsBuilder) WithVersionLock(lock entities.VersionLock) *OutdatedOptionsBuilder {
	b.options.VersionLock = lock
	return b
}

// WithInputDir sets the target directory.
func (b *OutdatedOptionsBuilder) WithInputDir(dir string) *OutdatedOptionsBuilder {
	b.options.InputDir = dir
	return b
}

// Build creates the options (satisfies testkit.Builder interface).
func (b *OutdatedOptionsBuilder) Build() interface{} {
	return b.BuildOutdatedOptions()
}

// BuildOutdatedOptions creates the options with a concrete return type.
func (b *OutdatedOptionsBuilder) BuildOutdatedOptions() entities.OutdatedOptions {
	return b.options
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedOptionsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.options = entities.NewOutdatedOptions()
	return b
}

// Clone creates a deep copy of the OutdatedOptionsBuilder.
func (b *OutdatedOptionsBuilder) Clone() testkit.Builder {
	clone := &OutdatedOptionsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		options:     b.options,
	}
	clone.options.Include = append([]string(nil), b.options.Include...)
	clone.options.Exclude = append([]string(nil), b.options.Exclude...)
	return clone
}
