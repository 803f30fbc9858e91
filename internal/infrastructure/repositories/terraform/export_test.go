package terraform

// Exports for testing.
var (
	ScanFile    = scanFile    //nolint:gochecknoglobals // test export
	RemoteURL   = remoteURL   //nolint:gochecknoglobals // test export
	ExtractRef  = extractRef  //nolint:gochecknoglobals // test export
	BestUpgrade = bestUpgrade //nolint:gochecknoglobals // test export
)

// ModuleDependency aliases the internal scanner result for assertions.
type ModuleDependency = moduleDependency
