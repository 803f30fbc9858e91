package dotnet

// Exports for testing.
var (
	BuildArgs    = buildArgs    //nolint:gochecknoglobals // test export
	DecodeReport = decodeReport //nolint:gochecknoglobals // test export
)
