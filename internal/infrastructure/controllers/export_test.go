package controllers

// OsExitHook replaces the process-exit hook and returns a restore func.
func OsExitHook(hook func(int)) func() {
	previous := osExit
	osExit = hook
	return func() { osExit = previous }
}

// Exports for testing.
var (
	ExitCodeFor   = exitCodeFor   //nolint:gochecknoglobals // test export
	RenderResults = renderResults //nolint:gochecknoglobals // test export
	Truncate      = truncate      //nolint:gochecknoglobals // test export
)
