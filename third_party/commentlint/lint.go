package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type pkgInfo struct {
	Dir         string   `json:"Dir"`
	GoFiles     []string `json:"GoFiles"`
	TestGoFiles []string `json:"TestGoFiles"`
}

// files returns the package sources followed by its in-package tests.
func (p pkgInfo) files() []string {
	out := make([]string, 0, len(p.GoFiles)+len(p.TestGoFiles))
	out = append(out, p.GoFiles...)
	return append(out, p.TestGoFiles...)
}

type finding struct {
	pos token.Position
	msg string
}

type golangciConfig struct {
	Issues struct {
		MaxIssuesPerLinter int      `yaml:"max-issues-per-linter"`
		ExcludeDirs        []string `yaml:"exclude-dirs"`
		ExcludeFiles       []string `yaml:"exclude-files"`
	} `yaml:"issues"`
}

// loadConfig reads the issue settings from a golangci-lint YAML file. A
// missing file yields the zero config.
func loadConfig(path string) (golangciConfig, error) {
	var cfg golangciConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// filter decides which repo-relative files are skipped.
type filter struct {
	dirs  []string
	files []*regexp.Regexp
}

// newFilter builds a filter from the excludes in cfg.
func newFilter(cfg golangciConfig) (filter, error) {
	var f filter
	for _, d := range cfg.Issues.ExcludeDirs {
		d = strings.TrimSpace(strings.TrimPrefix(d, "./"))
		if d != "" {
			f.dirs = append(f.dirs, strings.TrimSuffix(filepath.ToSlash(d), "/"))
		}
	}
	for _, p := range cfg.Issues.ExcludeFiles {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		rx, err := regexp.Compile(p)
		if err != nil {
			return filter{}, fmt.Errorf("invalid exclude regex %q: %w", p, err)
		}
		f.files = append(f.files, rx)
	}
	return f, nil
}

// skip reports whether rel sits under an excluded dir or matches an excluded file pattern.
func (f filter) skip(rel string) bool {
	for _, d := range f.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	for _, rx := range f.files {
		if rx.MatchString(rel) {
			return true
		}
	}
	return false
}

// lintFile reports every function with a body but no doc comment.
func lintFile(fset *token.FileSet, filename string) ([]finding, error) {
	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	var out []finding
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		if fn.Doc == nil || strings.TrimSpace(fn.Doc.Text()) == "" {
			out = append(out, finding{
				pos: fset.Position(fn.Pos()),
				msg: fmt.Sprintf("missing doc comment for function %q", fn.Name.Name),
			})
		}
	}
	return out, nil
}

// listPackages invokes `go list -json` for the provided patterns and returns the package metadata.
func listPackages(patterns []string) ([]pkgInfo, error) {
	args := append([]string{"list", "-json"}, patterns...)
	cmd := exec.Command("go", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(stdout))
	var pkgs []pkgInfo
	for dec.More() {
		var info pkgInfo
		if err := dec.Decode(&info); err != nil {
			_ = cmd.Wait()
			return nil, err
		}
		pkgs = append(pkgs, info)
	}
	if err := cmd.Wait(); err != nil {
		return nil, err
	}
	return pkgs, nil
}

// isGeneratedFile checks the first lines for the standard "Code generated" header.
func isGeneratedFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for i := 0; i < 10 && scanner.Scan(); i++ {
		line := scanner.Text()
		if strings.Contains(line, "Code generated") || strings.Contains(line, "DO NOT EDIT") {
			return true
		}
	}
	return false
}

// relativePath converts a path to one relative to the working directory when possible.
func relativePath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}
