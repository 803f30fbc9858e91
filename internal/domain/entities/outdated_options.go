package entities

import (
	"fmt"
	"strings"
)

// VersionLock constrains which upgrade magnitudes a check may consider.
type VersionLock int

const (
	// VersionLockNone places no constraint on upgrade magnitude.
	VersionLockNone VersionLock = iota
	// VersionLockMajor locks the major version, allowing minor and patch upgrades.
	VersionLockMajor
	// VersionLockMinor locks major and minor, allowing only patch upgrades.
	VersionLockMinor
)

// String renders the exact value expected by dotnet-outdated.
// The casing is a wire contract, not a display preference.
func (l VersionLock) String() string {
	switch l {
	case VersionLockMajor:
		return "Major"
	case VersionLockMinor:
		return "Minor"
	default:
		return "None"
	}
}

// Allows reports whether an upgrade of the given severity is eligible under
// this lock level.
func (l VersionLock) Allows(severity Severity) bool {
	switch l {
	case VersionLockMajor:
		return severity != SeverityMajor
	case VersionLockMinor:
		return severity == SeverityPatch
	default:
		return true
	}
}

// ParseVersionLock converts a user-supplied value into a VersionLock.
func ParseVersionLock(raw string) (VersionLock, error) {
	switch strings.ToLower(raw) {
	case "none":
		return VersionLockNone, nil
	case "major":
		return VersionLockMajor, nil
	case "minor":
		return VersionLockMinor, nil
	default:
		return VersionLockNone, fmt.Errorf("invalid version lock %q (expected none, major, or minor)", raw)
	}
}

// PreRelease controls whether pre-release versions are eligible upgrades.
type PreRelease int

const (
	// PreReleaseNever excludes pre-release versions entirely.
	PreReleaseNever PreRelease = iota
	// PreReleaseAuto allows pre-releases only for dependencies already on one.
	PreReleaseAuto
	// PreReleaseAlways considers pre-release versions for every dependency.
	PreReleaseAlways
)

// String renders the exact value expected by dotnet-outdated.
func (p PreRelease) String() string {
	switch p {
	case PreReleaseNever:
		return "Never"
	case PreReleaseAlways:
		return "Always"
	default:
		return "Auto"
	}
}

// ParsePreRelease converts a user-supplied value into a PreRelease.
func ParsePreRelease(raw string) (PreRelease, error) {
	switch strings.ToLower(raw) {
	case "never":
		return PreReleaseNever, nil
	case "auto":
		return PreReleaseAuto, nil
	case "always":
		return PreReleaseAlways, nil
	default:
		return PreReleaseAuto, fmt.Errorf("invalid pre-release mode %q (expected never, auto, or always)", raw)
	}
}

// OutdatedOptions is the update policy for a single check run. It is built
// once from flags and defaults, then read by every checker; each checker
// honors the subset that applies to its ecosystem.
type OutdatedOptions struct {
	// IncludeAutoReferences includes auto-referenced packages in the analysis.
	IncludeAutoReferences bool
	// PreRelease controls pre-release eligibility.
	PreRelease PreRelease
	// Include restricts the analysis to the named dependencies. Order is
	// preserved and duplicates are passed through untouched.
	Include []string
	// Exclude removes the named dependencies from the analysis.
	Exclude []string
	// Transitive extends the analysis to transitive dependencies.
	Transitive bool
	// TransitiveDepth is how many levels of transitive dependencies to
	// analyze. Only meaningful when Transitive is set; the flag layer
	// enforces that pairing, checkers do not re-validate it.
	TransitiveDepth uint
	// VersionLock constrains upgrade magnitude.
	VersionLock VersionLock
	// InputDir is the tree to analyze. Empty means the current directory.
	InputDir string
}

// NewOutdatedOptions returns the default policy: no version lock, automatic
// pre-release handling, direct dependencies only.
func NewOutdatedOptions() OutdatedOptions {
	return OutdatedOptions{
		PreRelease:      PreReleaseAuto,
		TransitiveDepth: 1,
	}
}
