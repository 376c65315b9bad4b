package hook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hooklint/hooklint/internal/tool"
)

// Options carries repo-level defaults and the diagnostic reporter into a
// hook run. CLI arguments always win over these.
type Options struct {
	// ExtraArgs are fixed flags from configuration, inserted before the
	// caller's own flags.
	ExtraArgs []string
	// Version pins the tool version when the caller passed no --version.
	Version string
	// FileGlobs overrides the tool's default file globs.
	FileGlobs []string
	Reporter  Reporter
}

// Command identifies one external tool invocation: the raw arguments
// partitioned into forwarded flags and target paths, plus the resolved
// install location once verified.
type Command struct {
	Name        string
	Spec        tool.Spec
	Args        []string
	Paths       []string
	InstallPath string
	WantVersion string

	globs    []string
	reporter Reporter
}

// NewCommand partitions args into tool flags and target paths. A token is
// a path iff it names an existing regular file and is not the value of a
// flag in the tool's exemption table. Paths outside the tool's file globs
// are skipped.
func NewCommand(spec tool.Spec, args []string, opts Options) *Command {
	cmd := &Command{
		Name:     spec.ID,
		Spec:     spec,
		reporter: ensureReporter(opts.Reporter),
		globs:    opts.FileGlobs,
	}
	cmd.Args = append(cmd.Args, opts.ExtraArgs...)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--version" && i+1 < len(args):
			cmd.WantVersion = args[i+1]
			i++
		case strings.HasPrefix(arg, "--version="):
			cmd.WantVersion = strings.TrimPrefix(arg, "--version=")
		case spec.TakesValue(arg) && i+1 < len(args):
			cmd.Args = append(cmd.Args, arg, args[i+1])
			i++
		case isRegularFile(arg):
			if spec.MatchesFile(arg, cmd.globs) {
				cmd.Paths = append(cmd.Paths, arg)
			} else {
				cmd.reporter.Skip(arg)
			}
		default:
			cmd.Args = append(cmd.Args, arg)
		}
	}

	if cmd.WantVersion == "" {
		cmd.WantVersion = opts.Version
	}
	return cmd
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CheckInstalled resolves the tool on PATH and records where it lives.
func (c *Command) CheckInstalled() error {
	resolved, err := exec.LookPath(c.Spec.Command)
	if err != nil {
		return NotInstalledError{Tool: c.Spec.Command}
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", resolved, err)
	}
	c.InstallPath = filepath.Dir(abs)
	return nil
}

// CheckVersion queries the tool for its version and requires an exact
// match against the requested one. A command with no version constraint
// passes trivially.
func (c *Command) CheckVersion(ctx context.Context) error {
	if c.WantVersion == "" {
		return nil
	}
	run := exec.CommandContext(ctx, c.Spec.Command, c.Spec.VersionArgs...)
	output, err := run.CombinedOutput()
	if err != nil {
		return SpawnError{Tool: c.Spec.Command, Err: err}
	}
	got, ok := c.Spec.ExtractVersion(string(output))
	if !ok {
		return fmt.Errorf("could not parse %s version from %q", c.Spec.Command, strings.TrimSpace(string(output)))
	}
	if got != c.WantVersion {
		return VersionMismatchError{Tool: c.Spec.Command, Want: c.WantVersion, Got: got}
	}
	return nil
}
