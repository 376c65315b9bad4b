package hook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hooklint/hooklint/internal/tool"
)

// Result is the uniform outcome of a hook run. The core never terminates
// the process; only the CLI boundary turns a Result into an exit code.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// Analyzer runs one static-analysis tool over the partitioned paths,
// once per path, capturing output and exit codes.
type Analyzer struct {
	Command
}

func New(spec tool.Spec, args []string, opts Options) *Analyzer {
	return &Analyzer{Command: *NewCommand(spec, args, opts)}
}

// Run verifies installation and version, then invokes the tool. Fatal
// preconditions (tool missing, version mismatch, spawn failure) come back
// as errors; analysis findings come back in the Result.
func (a *Analyzer) Run(ctx context.Context) (Result, error) {
	if err := a.CheckInstalled(); err != nil {
		return Result{}, err
	}
	if err := a.CheckVersion(ctx); err != nil {
		return Result{}, err
	}
	return a.RunCommand(ctx)
}

// RunCommand invokes the tool once per target path, sequentially, and
// aggregates outputs in invocation order. The aggregate exit code is the
// worst child exit code observed.
func (a *Analyzer) RunCommand(ctx context.Context) (Result, error) {
	agg := Result{}
	progress := a.reporter.Progress("Running "+a.Spec.Command, len(a.Paths))
	defer progress.Done()

	for _, path := range a.Paths {
		progress.Increment(path)
		res, err := a.runOne(ctx, path)
		if err != nil {
			return Result{}, err
		}
		agg.Stdout += res.Stdout
		agg.Stderr += res.Stderr
		if res.ExitCode > agg.ExitCode {
			agg.ExitCode = res.ExitCode
		}
	}
	return agg, nil
}

func (a *Analyzer) runOne(ctx context.Context, path string) (Result, error) {
	if a.Spec.Mode == tool.ModeFormatter && !a.Spec.HasFix(a.Args) {
		return a.runFormatCheck(ctx, path)
	}

	res, err := a.spawn(ctx, a.argv(nil, path))
	if err != nil {
		return Result{}, err
	}
	if a.Spec.Sentinel != nil && res.ExitCode == 0 && a.Spec.Sentinel.MatchString(res.Stdout+res.Stderr) {
		res.ExitCode = 1
	}
	return res, nil
}

// runFormatCheck runs a formatter in print mode and diffs the file's
// current contents against what the tool would produce. A difference is a
// finding owned by the hook, not the tool.
func (a *Analyzer) runFormatCheck(ctx context.Context, path string) (Result, error) {
	res, err := a.spawn(ctx, a.argv(a.Spec.StdoutArgs, path))
	if err != nil {
		return Result{}, err
	}
	if res.ExitCode != 0 {
		return res, nil
	}
	actual, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	if string(actual) == res.Stdout {
		return Result{}, nil
	}
	return Result{ExitCode: 1, Stdout: formatDiff(string(actual), res.Stdout)}, nil
}

func (a *Analyzer) argv(extra []string, path string) []string {
	args := make([]string, 0, len(a.Spec.BaseArgs)+len(a.Args)+len(extra)+1)
	args = append(args, a.Spec.BaseArgs...)
	args = append(args, a.Args...)
	args = append(args, extra...)
	args = append(args, path)
	return args
}

func (a *Analyzer) spawn(ctx context.Context, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, a.Spec.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, SpawnError{Tool: a.Spec.Command, Err: err}
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}

// formatDiff renders the ed-style diff formatters report: the file's
// lines prefixed "<  ", a separator, then the reformatted lines prefixed
// ">  ".
func formatDiff(actual, expected string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range splitLines(actual) {
		b.WriteString("<  " + line + "\n")
	}
	b.WriteString("---\n")
	for _, line := range splitLines(expected) {
		b.WriteString(">  " + line + "\n")
	}
	return b.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
