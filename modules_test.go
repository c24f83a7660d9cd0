package axo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeModule(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write module: %v", err)
	}
	return path
}

// Scenario F — module exports, only executed once across two imports.
func TestScenarioModuleExportsLoadedOnce(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "m.axo", `
		print("loading m");
		export func add(a:int,b:int)->int { return a+b; }
	`)

	ip := NewInterpreter()
	var buf strings.Builder
	ip.Stdout = &buf
	ip.baseDir = dir

	_, err := ip.Run(`
		import {add} from "m";
		import {add} from "m";
		print(add(2,3));
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "loading m") != 1 {
		t.Fatalf("module body ran %d times, want exactly once:\n%s", strings.Count(out, "loading m"), out)
	}
	if !strings.HasSuffix(out, "5\n") {
		t.Fatalf("got %q, want suffix %q", out, "5\n")
	}
}

func TestImportDefaultExport(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "cfg.axo", `export default 42;`)

	ip := NewInterpreter()
	var buf strings.Builder
	ip.Stdout = &buf
	ip.baseDir = dir

	_, err := ip.Run(`import cfg from "cfg"; print(cfg);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "42\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestImportMissingNamedExportIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "m.axo", `export func add(a:int,b:int)->int { return a+b; }`)

	ip := NewInterpreter()
	ip.Stdout = &strings.Builder{}
	ip.baseDir = dir

	_, err := ip.Run(`import {subtract} from "m";`)
	if err == nil {
		t.Fatal("expected a fatal error for a missing named export")
	}
}

func TestImportMissingModuleIsFatal(t *testing.T) {
	ip := NewInterpreter()
	ip.Stdout = &strings.Builder{}
	ip.baseDir = t.TempDir()

	_, err := ip.Run(`import {x} from "does_not_exist";`)
	if err == nil {
		t.Fatal("expected a fatal error resolving a missing module")
	}
}

func TestUseRunsModuleWithoutBindingAnything(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "sideeffect.axo", `print("ran");`)

	ip := NewInterpreter()
	var buf strings.Builder
	ip.Stdout = &buf
	ip.baseDir = dir

	_, err := ip.Run(`use "sideeffect";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "ran\n" {
		t.Fatalf("got %q", buf.String())
	}
	if _, ok := ip.Global.GetVar("sideeffect"); ok {
		t.Fatal("use must not bind any name into the importer's scope")
	}
}

func TestJSONModuleIsItsOwnDefaultExport(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "data.json", `{"name": "axo", "count": 3, "tags": ["a", "b"]}`)

	ip := NewInterpreter()
	var buf strings.Builder
	ip.Stdout = &buf
	ip.baseDir = dir

	_, err := ip.Run(`import data from "data.json"; print(data.name); print(data.count);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "axo\n3\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestResolveModulePathPrefersExplicitExtension(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "m.axo", `export default 1;`)
	writeModule(t, dir, "m.json", `2`)

	ip := NewInterpreter()
	ip.baseDir = dir

	p, err := ip.resolveModulePath("m.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(p) != "m.json" {
		t.Fatalf("got %q", p)
	}
}

func TestResolveModulePathFallsBackToIndexAxo(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeModule(t, sub, "index.axo", `export default 7;`)

	ip := NewInterpreter()
	ip.baseDir = dir

	p, err := ip.resolveModulePath("pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(p) != "index.axo" {
		t.Fatalf("got %q", p)
	}
}
