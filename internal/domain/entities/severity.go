package entities

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Severity classifies how large a version jump an available upgrade is.
type Severity int

const (
	SeverityMajor Severity = iota
	SeverityMinor
	SeverityPatch
)

// severityNames maps each severity to the exact string used in reports.
//
//nolint:gochecknoglobals // lookup table, never mutated
var severityNames = map[Severity]string{
	SeverityMajor: "Major",
	SeverityMinor: "Minor",
	SeverityPatch: "Patch",
}

// String renders the severity as it appears in dotnet-outdated reports.
func (s Severity) String() string {
	return severityNames[s]
}

// MarshalJSON renders the severity as its report string.
func (s Severity) MarshalJSON() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid upgrade severity %d", int(s))
	}
	return json.Marshal(name)
}

// UnmarshalJSON parses a report severity. Anything outside the three known
// values is rejected instead of silently defaulting.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid upgrade severity: %w", err)
	}

	for severity, name := range severityNames {
		if name == raw {
			*s = severity
			return nil
		}
	}

	return fmt.Errorf("invalid upgrade severity %q (expected Major, Minor, or Patch)", raw)
}

// SeverityBetween classifies the jump from current to latest. The second
// return value is false when either version is not semver or when latest
// is not strictly newer than current.
func SeverityBetween(current, latest string) (Severity, bool) {
	currentNorm := normalizeVersion(current)
	latestNorm := normalizeVersion(latest)

	if !semver.IsValid(currentNorm) || !semver.IsValid(latestNorm) {
		return 0, false
	}
	if semver.Compare(latestNorm, currentNorm) <= 0 {
		return 0, false
	}

	if semver.Major(currentNorm) != semver.Major(latestNorm) {
		return SeverityMajor, true
	}
	if semver.MajorMinor(currentNorm) != semver.MajorMinor(latestNorm) {
		return SeverityMinor, true
	}
	return SeverityPatch, true
}

// IsNewerVersion reports whether candidate is strictly newer than current.
// Versions that are not valid semver fall back to a lexical comparison.
func IsNewerVersion(current, candidate string) bool {
	currentNorm := normalizeVersion(current)
	candidateNorm := normalizeVersion(candidate)

	if semver.IsValid(currentNorm) && semver.IsValid(candidateNorm) {
		return semver.Compare(candidateNorm, currentNorm) > 0
	}

	return candidate > current
}

// IsPrerelease reports whether the version carries a pre-release suffix.
func IsPrerelease(version string) bool {
	return semver.Prerelease(normalizeVersion(version)) != ""
}

// normalizeVersion ensures the version has a "v" prefix for the semver package.
func normalizeVersion(version string) string {
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}
