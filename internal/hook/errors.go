package hook

import "fmt"

// NotInstalledError reports a tool that could not be resolved on PATH.
// No further work is possible without the tool, so callers treat it as
// fatal to the invocation.
type NotInstalledError struct {
	Tool string
}

func (e NotInstalledError) Error() string {
	return fmt.Sprintf("%s not found. Is it installed?", e.Tool)
}

// VersionMismatchError reports that the tool's own version does not
// exactly match the version the hook requested.
type VersionMismatchError struct {
	Tool string
	Want string
	Got  string
}

func (e VersionMismatchError) Error() string {
	return fmt.Sprintf("%s version mismatch: expected %s but found %s", e.Tool, e.Want, e.Got)
}

// SpawnError wraps a failure to start or query a resolved executable.
type SpawnError struct {
	Tool string
	Err  error
}

func (e SpawnError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Tool, e.Err)
}

func (e SpawnError) Unwrap() error {
	return e.Err
}
