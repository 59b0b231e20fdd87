// Package main runs the commentlint CLI.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
)

// main is the entrypoint for the comment linter CLI.
func main() {
	configPath := flag.String("config", ".golangci.yml", "golangci-lint config holding the issue excludes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [packages]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Ensures every function has a doc comment. Defaults to ./...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	os.Exit(run(*configPath, patterns))
}

// run lints the packages matched by patterns and returns the process exit code.
func run(configPath string, patterns []string) int {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "commentlint: %v\n", err)
		return 1
	}
	excludes, err := newFilter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "commentlint: %v\n", err)
		return 1
	}
	pkgs, err := listPackages(patterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "commentlint: %v\n", err)
		return 1
	}

	limit := cfg.Issues.MaxIssuesPerLinter
	fset := token.NewFileSet()
	var findings []finding
	for _, pkg := range pkgs {
		for _, file := range pkg.files() {
			filename := filepath.Join(pkg.Dir, file)
			if excludes.skip(filepath.ToSlash(relativePath(filename))) || isGeneratedFile(filename) {
				continue
			}
			found, err := lintFile(fset, filename)
			if err != nil {
				fmt.Fprintf(os.Stderr, "commentlint: %v\n", err)
				return 1
			}
			findings = append(findings, found...)
		}
	}
	if len(findings) == 0 {
		return 0
	}

	truncated := limit > 0 && len(findings) > limit
	if truncated {
		findings = findings[:limit]
	}
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", relativePath(f.pos.Filename), f.pos.Line, f.pos.Column, f.msg)
	}
	if truncated {
		fmt.Fprintf(os.Stderr, "commentlint: output truncated after %d issues (see %s)\n", limit, configPath)
	}
	return 1
}
