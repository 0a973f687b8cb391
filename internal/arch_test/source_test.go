// Package arch_test checks structural rules across the internal packages:
// the layer order, the purity of the chart engine, package-level state and
// documentation.
package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"testing"
)

const (
	modulePath     = "github.com/papapumpkin/meishiki"
	internalPrefix = modulePath + "/internal/"
)

// pkgSource is the parsed non-test source of one internal package.
type pkgSource struct {
	name  string
	fset  *token.FileSet
	files map[string]*ast.File // keyed by base file name
}

// internalDir returns internal/, the parent of this test's directory.
func internalDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Dir(filepath.Dir(file))
}

// loadPackages parses every internal package except arch_test itself.
func loadPackages(t *testing.T) []*pkgSource {
	t.Helper()
	dir := internalDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}

	var pkgs []*pkgSource
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "arch_test" {
			continue
		}
		p := &pkgSource{name: e.Name(), fset: token.NewFileSet(), files: map[string]*ast.File{}}
		matches, err := filepath.Glob(filepath.Join(dir, e.Name(), "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range matches {
			if strings.HasSuffix(m, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(p.fset, m, nil, parser.ParseComments)
			if err != nil {
				t.Fatalf("parsing %s: %v", m, err)
			}
			p.files[filepath.Base(m)] = f
		}
		if len(p.files) > 0 {
			pkgs = append(pkgs, p)
		}
	}
	if len(pkgs) == 0 {
		t.Fatal("no internal packages found")
	}
	return pkgs
}

// imports returns the sorted, deduplicated import paths of the package.
func (p *pkgSource) imports() []string {
	seen := map[string]bool{}
	for _, f := range p.files {
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err == nil {
				seen[path] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for path := range seen {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// internalName maps an import path to its internal package name, or "".
func internalName(path string) string {
	rel, ok := strings.CutPrefix(path, internalPrefix)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(rel, "/")
	return name
}

// position formats a node's location as file:line.
func (p *pkgSource) position(n ast.Node) string {
	pos := p.fset.Position(n.Pos())
	return filepath.Join(p.name, filepath.Base(pos.Filename)) + ":" + strconv.Itoa(pos.Line)
}
