// modules.go implements C7: the module system of spec.md §4.7. A module is
// identified by its resolved filesystem path; the first import/use to
// reach a given path runs it (in its own Interpreter, sharing only the
// importer's output writer, so nothing but its declared exports and its
// printed output is observable), and every subsequent
// reference to the same path reuses the already-produced record — which
// doubles as the cycle breaker (spec.md §4.7: "a module that is still
// loading when re-imported resolves to its exports so far rather than
// looping"). Grounded on the teacher's modules.go (Module/moduleRec,
// resolveFS, buildModuleFromAST), trimmed to the filesystem-only resolution
// Axo's spec calls for (no module.example network fetch).
package axo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// moduleRecord is the result of loading one module: its default export (if
// any) and a name-indexed map of its named exports.
type moduleRecord struct {
	defaultExport Value
	named         map[string]Value
	loaded        bool
}

// moduleTable is shared across every Interpreter involved in a single run
// (the top-level one plus a fresh child per module it loads), so cycle
// detection and cache reuse work across the whole import graph rather than
// per-importer.
type moduleTable struct {
	mu      sync.Mutex
	records map[string]*moduleRecord
}

func newModuleTable() *moduleTable {
	return &moduleTable{records: make(map[string]*moduleRecord)}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// resolveModulePath implements spec.md §4.7's resolution order: a spec that
// already names a ".axo" or ".json" file is used as-is; otherwise
// "<path>.axo" is tried, then "<path>/index.axo", then "<path>.json".
func (ip *Interpreter) resolveModulePath(spec string) (string, error) {
	base := ip.baseDir
	if base == "" {
		base = "."
	}
	p := spec
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	switch filepath.Ext(p) {
	case ".axo", ".json":
		if fileExists(p) {
			return p, nil
		}
		return "", fmt.Errorf("module not found: %s", spec)
	}
	if fileExists(p + ".axo") {
		return p + ".axo", nil
	}
	if idx := filepath.Join(p, "index.axo"); fileExists(idx) {
		return idx, nil
	}
	if fileExists(p + ".json") {
		return p + ".json", nil
	}
	return "", fmt.Errorf("module not found: %s", spec)
}

// loadModule returns the cached record for path if one exists (whether
// fully loaded or still in progress — the cycle-breaking case), or loads it
// fresh otherwise.
func (ip *Interpreter) loadModule(path string) (*moduleRecord, error) {
	ip.modules.mu.Lock()
	if rec, ok := ip.modules.records[path]; ok {
		ip.modules.mu.Unlock()
		return rec, nil
	}
	rec := &moduleRecord{named: make(map[string]Value)}
	ip.modules.records[path] = rec
	ip.modules.mu.Unlock()

	if filepath.Ext(path) == ".json" {
		if err := loadJSONModule(path, rec); err != nil {
			return nil, err
		}
		rec.loaded = true
		return rec, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog, err := Parse(string(data))
	if err != nil {
		return nil, WrapErrorWithSource(err, string(data))
	}

	child := NewInterpreter()
	child.modules = ip.modules
	child.baseDir = filepath.Dir(path)
	child.loadingModule = rec
	child.Stdout = ip.Stdout

	if _, err := child.RunProgram(prog); err != nil {
		return nil, WrapErrorWithSource(err, string(data))
	}
	rec.loaded = true
	return rec, nil
}

// loadJSONModule parses a ".json" module's contents into an Axo Value and
// installs it as the module's default export (spec.md §4.7: a JSON module
// has no named exports, only a default value).
func loadJSONModule(path string, rec *moduleRecord) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("invalid JSON module %s: %w", path, err)
	}
	rec.defaultExport = jsonToValue(decoded)
	return nil
}

func jsonToValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return EmptyString
	case bool:
		return BoolVal(x)
	case float64:
		if x == float64(int64(x)) {
			return IntVal(int64(x))
		}
		return FloatVal(float32(x))
	case string:
		return StrVal(x)
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			elems[i] = jsonToValue(e)
		}
		return ArrayVal(elems)
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, e := range x {
			fields[k] = jsonToValue(e)
		}
		return ObjectVal(fields)
	}
	return EmptyString
}

// execImport binds the requested names from the resolved module into the
// importer's global scope: `import X from "p"` binds the default export as
// X, `import {a,b} from "p"` binds each named export, and `import "p"`
// (side-effect only) binds nothing.
func (ip *Interpreter) execImport(s *Import) error {
	path, err := ip.resolveModulePath(s.Path)
	if err != nil {
		return ip.fatalf(s.Pos, "%s", err.Error())
	}
	rec, err := ip.loadModule(path)
	if err != nil {
		return err
	}
	if s.Default != "" {
		ip.Global.Define(s.Default, Variable{Value: rec.defaultExport, TypeSpec: "any"})
	}
	for _, name := range s.Named {
		v, ok := rec.named[name]
		if !ok {
			return ip.fatalf(s.Pos, "module %q has no export named %q", s.Path, name)
		}
		ip.Global.Define(name, Variable{Value: v, TypeSpec: "any"})
	}
	return nil
}

// execUse loads the module for its side effects only; nothing it exports
// is bound into the importer (spec.md §4.7: "`use` runs a module in an
// isolated, throwaway environment").
func (ip *Interpreter) execUse(s *Use) error {
	path, err := ip.resolveModulePath(s.Path)
	if err != nil {
		return ip.fatalf(s.Pos, "%s", err.Error())
	}
	_, err = ip.loadModule(path)
	return err
}

// execExport declares Inner (if present) exactly as an ordinary top-level
// statement would, then additionally records its value into the
// in-progress module record, if this interpreter is currently loading one.
// `export {a, b}` instead copies bindings already present in scope.
func (ip *Interpreter) execExport(s *Export) error {
	if s.Inner != nil {
		// `export default <expr>;` has no declared name to look back up in
		// scope afterward, so its value is captured directly off the
		// expression rather than through declNameOf.
		if exprStmt, ok := s.Inner.(*ExprStmt); ok {
			v, err := ip.evalExpr(exprStmt.Expr, ip.Global)
			if err != nil {
				return err
			}
			if ip.loadingModule != nil && s.Default {
				ip.loadingModule.defaultExport = v
			}
			return nil
		}
		if _, err := ip.execStmt(s.Inner, ip.Global); err != nil {
			return err
		}
		name := declNameOf(s.Inner)
		if ip.loadingModule == nil || name == "" {
			return nil
		}
		v, err := ip.Global.Get(name)
		if err != nil {
			return nil
		}
		if s.Default {
			ip.loadingModule.defaultExport = v
		} else {
			ip.loadingModule.named[name] = v
		}
		return nil
	}
	if ip.loadingModule == nil {
		return nil
	}
	for _, name := range s.Named {
		v, err := ip.Global.Get(name)
		if err != nil {
			return ip.fatalf(s.Pos, "%s", err.Error())
		}
		ip.loadingModule.named[name] = v
	}
	return nil
}

func declNameOf(s Stmt) string {
	switch n := s.(type) {
	case *FunctionDecl:
		return n.Name
	case *ProgramDecl:
		return n.Name
	case *VarDecl:
		return n.Name
	case *TypeDecl:
		return n.Name
	}
	return ""
}
