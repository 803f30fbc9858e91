package entities

// DotnetOutdatedData is the root of a dotnet-outdated JSON report. The field
// names mirror the tool's PascalCase output exactly.
//
// The tool only emits a dependency when it found an eligible upgrade under
// the requested policy, so presence in the report already means outdated.
// Nothing on this side re-filters the rows.
type DotnetOutdatedData struct {
	Projects []DotnetProject `json:"Projects"`
}

// DotnetProject is one project file in the report.
type DotnetProject struct {
	Name             string                  `json:"Name"`
	FilePath         string                  `json:"FilePath"`
	TargetFrameworks []DotnetTargetFramework `json:"TargetFrameworks"`
}

// DotnetTargetFramework is one target framework of a project, carrying its
// own resolved dependency set.
type DotnetTargetFramework struct {
	Name         string             `json:"Name"`
	Dependencies []DotnetDependency `json:"Dependencies"`
}

// DotnetDependency is one package with an eligible upgrade.
type DotnetDependency struct {
	Name            string   `json:"Name"`
	ResolvedVersion string   `json:"ResolvedVersion"`
	LatestVersion   string   `json:"LatestVersion"`
	UpgradeSeverity Severity `json:"UpgradeSeverity"`
}
