package entities

// CheckResult is the normalized outcome of one checker run.
type CheckResult struct {
	// Checker is the name of the checker that produced this result.
	Checker string
	// Requirement is the overall verdict for the checked tree.
	Requirement IndicatedUpdateRequirement
	// Outdated holds one row per dependency with an eligible upgrade.
	Outdated []OutdatedDependency
}

// OutdatedDependency is one outdated dependency, flattened for rendering.
type OutdatedDependency struct {
	// Project is the project, module, or file the dependency belongs to.
	Project string
	// Framework is the target framework, for ecosystems that have the
	// notion. Empty otherwise.
	Framework string
	// Name is the dependency name.
	Name string
	// ResolvedVersion is the version currently in use.
	ResolvedVersion string
	// LatestVersion is the newest eligible version.
	LatestVersion string
	// Severity classifies the jump from resolved to latest.
	Severity Severity
}

// CheckerStatus reports whether a single checker applies to a directory.
type CheckerStatus struct {
	Name     string
	Detected bool
}
