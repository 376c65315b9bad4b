package tool

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type Mode string

const (
	// ModeFormatter tools print the reformatted source to stdout; the hook
	// diffs that against the file and owns the exit code.
	ModeFormatter Mode = "formatter"
	// ModeLinter tools report findings through their own exit code.
	ModeLinter Mode = "linter"
	// ModeSentinel tools can exit zero while reporting findings, so a
	// sentinel pattern on output also forces failure.
	ModeSentinel Mode = "sentinel"
)

// Spec is the fixed configuration record for one supported tool. Hooks are
// a closed set: adding a tool means adding a row to the table below.
type Spec struct {
	ID          string
	Command     string
	Description string
	BaseArgs    []string
	Mode        Mode

	// FixFlags are caller flags that make the tool rewrite files in place.
	FixFlags []string
	// ValueFlags consume the following token, exempting it from path
	// classification even when it names an existing file.
	ValueFlags []string
	// StdoutArgs are inserted before the path when running a formatter in
	// check mode so it prints the result instead of editing the file.
	StdoutArgs []string

	VersionArgs    []string
	VersionPattern *regexp.Regexp
	Sentinel       *regexp.Regexp

	FileGlobs []string
}

var defaultGlobs = []string{
	"**/*.c", "**/*.cc", "**/*.cpp", "**/*.cxx",
	"**/*.h", "**/*.hpp", "**/*.hxx",
}

var (
	clangVersionRe      = regexp.MustCompile(`version ([0-9][0-9.]*)`)
	oclintVersionRe     = regexp.MustCompile(`OCLint version ([0-9][0-9.]*)\.`)
	uncrustifyVersionRe = regexp.MustCompile(`(?i)uncrustify[-_ ]([0-9][0-9.]*)`)
	cppcheckVersionRe   = regexp.MustCompile(`(?i)cppcheck ([0-9][0-9.]*)`)

	oclintSentinelRe = regexp.MustCompile(`Compiler Errors:|P1=[1-9]|P2=[1-9]|P3=[1-9]`)
)

var specs = []Spec{
	{
		ID:             "clang-format",
		Command:        "clang-format",
		Description:    "Format C/C++ code with clang-format.",
		Mode:           ModeFormatter,
		FixFlags:       []string{"-i"},
		ValueFlags:     []string{"--style", "-style", "--assume-filename"},
		VersionArgs:    []string{"--version"},
		VersionPattern: clangVersionRe,
		FileGlobs:      defaultGlobs,
	},
	{
		ID:             "clang-tidy",
		Command:        "clang-tidy",
		Description:    "Lint C/C++ code with clang-tidy.",
		BaseArgs:       []string{"-quiet", "-checks=*", "-warnings-as-errors=*"},
		Mode:           ModeLinter,
		FixFlags:       []string{"-fix", "--fix-errors"},
		ValueFlags:     []string{"-p", "--config-file"},
		VersionArgs:    []string{"--version"},
		VersionPattern: clangVersionRe,
		FileGlobs:      defaultGlobs,
	},
	{
		ID:             "oclint",
		Command:        "oclint",
		Description:    "Lint C/C++ code with OCLint.",
		BaseArgs:       []string{"-enable-global-analysis", "-enable-clang-static-analyzer"},
		Mode:           ModeSentinel,
		ValueFlags:     []string{"-o", "-rc", "-report-type"},
		VersionArgs:    []string{"--version"},
		VersionPattern: oclintVersionRe,
		Sentinel:       oclintSentinelRe,
		FileGlobs:      defaultGlobs,
	},
	{
		ID:             "uncrustify",
		Command:        "uncrustify",
		Description:    "Format C/C++ code with Uncrustify.",
		Mode:           ModeFormatter,
		FixFlags:       []string{"--replace"},
		ValueFlags:     []string{"-c", "-l"},
		StdoutArgs:     []string{"-f"},
		VersionArgs:    []string{"--version"},
		VersionPattern: uncrustifyVersionRe,
		FileGlobs:      defaultGlobs,
	},
	{
		ID:             "cppcheck",
		Command:        "cppcheck",
		Description:    "Check C/C++ code with cppcheck.",
		BaseArgs:       []string{"-q", "--error-exitcode=1"},
		Mode:           ModeLinter,
		ValueFlags:     []string{"--template", "-l", "-j"},
		VersionArgs:    []string{"--version"},
		VersionPattern: cppcheckVersionRe,
		FileGlobs:      defaultGlobs,
	},
}

func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

func Lookup(id string) (Spec, bool) {
	for _, spec := range specs {
		if spec.ID == id {
			return spec, true
		}
	}
	return Spec{}, false
}

// Detect maps an argv[0] of the form "<tool>-hook" to its spec so the
// binary can be symlinked once per hook entry point.
func Detect(argv0 string) (Spec, bool) {
	base := filepath.Base(argv0)
	base = strings.TrimSuffix(base, ".exe")
	id, ok := strings.CutSuffix(base, "-hook")
	if !ok {
		return Spec{}, false
	}
	return Lookup(id)
}

// HasFix reports whether any caller flag turns this run into an in-place
// edit of the target files.
func (s Spec) HasFix(args []string) bool {
	for _, arg := range args {
		for _, fix := range s.FixFlags {
			if arg == fix {
				return true
			}
		}
	}
	return false
}

func (s Spec) TakesValue(flag string) bool {
	for _, value := range s.ValueFlags {
		if flag == value {
			return true
		}
	}
	return false
}

// MatchesFile reports whether path falls under the tool's file globs.
// An empty glob set matches everything.
func (s Spec) MatchesFile(path string, globs []string) bool {
	if len(globs) == 0 {
		globs = s.FileGlobs
	}
	if len(globs) == 0 {
		return true
	}
	slashed := filepath.ToSlash(path)
	for _, glob := range globs {
		if ok, err := doublestar.Match(glob, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

// ExtractVersion pulls the tool's version out of its version-query output.
func (s Spec) ExtractVersion(output string) (string, bool) {
	if s.VersionPattern == nil {
		return "", false
	}
	match := s.VersionPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}
