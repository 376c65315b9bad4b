package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hooklint/hooklint/internal/config"
	"github.com/hooklint/hooklint/internal/hook"
	"github.com/hooklint/hooklint/internal/manifest"
	"github.com/hooklint/hooklint/internal/tool"
	"github.com/hooklint/hooklint/internal/ui"
)

type CLI struct {
	NoColor bool `help:"Disable color output."`

	ClangFormat ClangFormatCmd `cmd:"" name:"clang-format" help:"Format C/C++ code with clang-format."`
	ClangTidy   ClangTidyCmd   `cmd:"" name:"clang-tidy" help:"Lint C/C++ code with clang-tidy."`
	Oclint      OclintCmd      `cmd:"" name:"oclint" help:"Lint C/C++ code with OCLint."`
	Uncrustify  UncrustifyCmd  `cmd:"" name:"uncrustify" help:"Format C/C++ code with Uncrustify."`
	Cppcheck    CppcheckCmd    `cmd:"" name:"cppcheck" help:"Check C/C++ code with cppcheck."`
	List        ListCmd        `cmd:"" help:"List supported hooks."`
	Manifest    ManifestCmd    `cmd:"" help:"Print the pre-commit manifest entries."`
}

type ClangFormatCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Files and tool flags."`
}

type ClangTidyCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Files and tool flags."`
}

type OclintCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Files and tool flags."`
}

type UncrustifyCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Files and tool flags."`
}

type CppcheckCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Files and tool flags."`
}

type ListCmd struct{}

type ManifestCmd struct{}

type Context struct {
	Reporter hook.Reporter
	Config   config.Config
	ExitCode int
}

// errFindings signals that the wrapped tool reported findings and its
// output was already echoed; main exits with the recorded code without
// printing anything more.
var errFindings = errors.New("analysis reported findings")

func (c *ClangFormatCmd) Run(ctx *Context) error { return runTool(ctx, "clang-format", c.Args) }
func (c *ClangTidyCmd) Run(ctx *Context) error   { return runTool(ctx, "clang-tidy", c.Args) }
func (c *OclintCmd) Run(ctx *Context) error      { return runTool(ctx, "oclint", c.Args) }
func (c *UncrustifyCmd) Run(ctx *Context) error  { return runTool(ctx, "uncrustify", c.Args) }
func (c *CppcheckCmd) Run(ctx *Context) error    { return runTool(ctx, "cppcheck", c.Args) }

func (c *ListCmd) Run(ctx *Context) error {
	for _, spec := range tool.All() {
		fmt.Fprintf(os.Stdout, "%-14s %s\n", spec.ID, spec.Description)
	}
	return nil
}

func (c *ManifestCmd) Run(ctx *Context) error {
	data, err := manifest.Render()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runTool(ctx *Context, id string, args []string) error {
	spec, ok := tool.Lookup(id)
	if !ok {
		return fmt.Errorf("unsupported tool %q", id)
	}
	toolCfg := ctx.Config.Tool(id)
	analyzer := hook.New(spec, args, hook.Options{
		ExtraArgs: toolCfg.Args,
		Version:   toolCfg.Version,
		FileGlobs: toolCfg.Files,
		Reporter:  ctx.Reporter,
	})

	result, err := analyzer.Run(context.Background())
	if err != nil {
		ctx.ExitCode = 1
		return err
	}
	if !result.Ok() {
		fmt.Fprint(os.Stdout, result.Stdout)
		fmt.Fprint(os.Stderr, result.Stderr)
		ctx.ExitCode = result.ExitCode
		return errFindings
	}
	return nil
}

func main() {
	args := os.Args[1:]
	// A binary installed as <tool>-hook behaves as that tool's subcommand.
	if spec, ok := tool.Detect(os.Args[0]); ok {
		args = append([]string{spec.ID}, args...)
	}

	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("hooklint"),
		kong.Description("Pre-commit hooks for C/C++ static analyzers."),
		kong.UsageOnError(),
	)
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	noColor := cli.NoColor || os.Getenv("NO_COLOR") != ""
	reporter := ui.NewRenderer(ui.Options{NoColor: noColor, Out: os.Stdout})

	runCtx := &Context{Reporter: reporter, Config: cfg}
	if err := kctx.Run(runCtx); err != nil {
		if runCtx.ExitCode == 0 {
			runCtx.ExitCode = 1
		}
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(runCtx.ExitCode)
	}
}
