package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := `[tools.clang-format]
args = ["-style=file"]
version = "14.0.0"

[tools.cppcheck]
files = ["src/**/*.c"]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	format := cfg.Tool("clang-format")
	if len(format.Args) != 1 || format.Args[0] != "-style=file" {
		t.Fatalf("expected clang-format args, got %v", format.Args)
	}
	if format.Version != "14.0.0" {
		t.Fatalf("expected version pin 14.0.0, got %q", format.Version)
	}

	cppcheck := cfg.Tool("cppcheck")
	if len(cppcheck.Files) != 1 || cppcheck.Files[0] != "src/**/*.c" {
		t.Fatalf("expected cppcheck files override, got %v", cppcheck.Files)
	}

	if unknown := cfg.Tool("oclint"); len(unknown.Args) != 0 || unknown.Version != "" {
		t.Fatalf("expected zero config for unconfigured tool, got %+v", unknown)
	}
}

func TestParseFileRejectsUnknownTool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := `[tools.rustfmt]
args = ["--check"]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := ParseFile(path); err == nil {
		t.Fatalf("expected unknown tool to be rejected")
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	contents := `[tools.oclint]
version = "0.15"
`
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Tool("oclint").Version != "0.15" {
		t.Fatalf("expected config found from nested dir, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing config to default, got %v", err)
	}
	if len(cfg.Tools) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}
