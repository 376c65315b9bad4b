package tool

import "testing"

func TestLookup(t *testing.T) {
	spec, ok := Lookup("clang-format")
	if !ok {
		t.Fatalf("expected clang-format to be registered")
	}
	if spec.Command != "clang-format" {
		t.Fatalf("expected command clang-format, got %q", spec.Command)
	}
	if spec.Mode != ModeFormatter {
		t.Fatalf("expected formatter mode, got %q", spec.Mode)
	}

	if _, ok := Lookup("rustfmt"); ok {
		t.Fatalf("expected rustfmt to be unknown")
	}
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 tools, got %d", len(all))
	}
	all[0].ID = "mutated"
	if specs[0].ID == "mutated" {
		t.Fatalf("All must not expose the registry for mutation")
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		argv0 string
		id    string
		ok    bool
	}{
		{"clang-format-hook", "clang-format", true},
		{"/usr/local/bin/oclint-hook", "oclint", true},
		{"uncrustify-hook.exe", "uncrustify", true},
		{"hooklint", "", false},
		{"notatool-hook", "", false},
	}
	for _, tc := range cases {
		spec, ok := Detect(tc.argv0)
		if ok != tc.ok {
			t.Fatalf("Detect(%q): expected ok=%v, got %v", tc.argv0, tc.ok, ok)
		}
		if ok && spec.ID != tc.id {
			t.Fatalf("Detect(%q): expected %q, got %q", tc.argv0, tc.id, spec.ID)
		}
	}
}

func TestExtractVersion(t *testing.T) {
	cases := []struct {
		id     string
		output string
		want   string
	}{
		{"clang-format", "Ubuntu clang-format version 14.0.0-1ubuntu1", "14.0.0"},
		{"clang-tidy", "LLVM (http://llvm.org/):\n  LLVM version 14.0.0\n", "14.0.0"},
		{"oclint", "OCLint (http://oclint.org/):\n  OCLint version 0.15.\n  Built May 17 2020", "0.15"},
		{"uncrustify", "Uncrustify-0.72.0_f", "0.72.0"},
		{"uncrustify", "uncrustify 0.68.1", "0.68.1"},
		{"cppcheck", "Cppcheck 2.7", "2.7"},
	}
	for _, tc := range cases {
		spec, ok := Lookup(tc.id)
		if !ok {
			t.Fatalf("unknown tool %q", tc.id)
		}
		got, ok := spec.ExtractVersion(tc.output)
		if !ok {
			t.Fatalf("%s: expected version in %q", tc.id, tc.output)
		}
		if got != tc.want {
			t.Fatalf("%s: expected version %q, got %q", tc.id, tc.want, got)
		}
	}

	spec, _ := Lookup("cppcheck")
	if _, ok := spec.ExtractVersion("no digits here"); ok {
		t.Fatalf("expected extraction to fail on unversioned output")
	}
}

func TestMatchesFile(t *testing.T) {
	spec, _ := Lookup("clang-tidy")

	for _, path := range []string{"main.c", "src/main.cpp", "include/deep/nested/api.hpp"} {
		if !spec.MatchesFile(path, nil) {
			t.Fatalf("expected %q to match default globs", path)
		}
	}
	for _, path := range []string{"README.md", "src/build.py", "Makefile"} {
		if spec.MatchesFile(path, nil) {
			t.Fatalf("expected %q not to match default globs", path)
		}
	}

	override := []string{"src/**/*.c"}
	if !spec.MatchesFile("src/a/b.c", override) {
		t.Fatalf("expected override glob to match src/a/b.c")
	}
	if spec.MatchesFile("lib/b.c", override) {
		t.Fatalf("expected override glob to exclude lib/b.c")
	}
}

func TestHasFix(t *testing.T) {
	tidy, _ := Lookup("clang-tidy")
	if !tidy.HasFix([]string{"-quiet", "-fix"}) {
		t.Fatalf("expected -fix to be recognized")
	}
	if !tidy.HasFix([]string{"--fix-errors"}) {
		t.Fatalf("expected --fix-errors to be recognized")
	}
	if tidy.HasFix([]string{"-checks=*"}) {
		t.Fatalf("expected no fix flag")
	}

	format, _ := Lookup("clang-format")
	if format.HasFix(nil) {
		t.Fatalf("expected empty args to carry no fix flag")
	}
	if !format.HasFix([]string{"-i"}) {
		t.Fatalf("expected -i to be recognized")
	}
}

func TestTakesValue(t *testing.T) {
	unc, _ := Lookup("uncrustify")
	if !unc.TakesValue("-c") {
		t.Fatalf("expected -c to take a value")
	}
	if unc.TakesValue("--replace") {
		t.Fatalf("expected --replace to take no value")
	}
}
