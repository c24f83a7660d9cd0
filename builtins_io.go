// builtins_io.go implements the time and filesystem slice of spec.md §4.8:
// millis, sleep, read, write, copy, readDir. Grounded on the teacher's
// builtin_time.go (wall-clock helpers) and builtin_file.go (os package
// wrappers with the first argument always a path string).
package axo

import (
	"io"
	"os"
	"time"
)

func init() {
	registerBuiltin("millis", builtinMillis)
	registerBuiltin("sleep", builtinSleep)
	registerBuiltin("read", builtinRead)
	registerBuiltin("write", builtinWrite)
	registerBuiltin("copy", builtinCopyFile)
	registerBuiltin("readDir", builtinReadDir)
}

func builtinMillis(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 0 {
		return Value{}, argErr(pos, "millis", 0, len(args))
	}
	return IntVal(time.Now().UnixMilli()), nil
}

func builtinSleep(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "sleep", 1, len(args))
	}
	n, ok := wantInt(args[0])
	if !ok {
		return Value{}, typeErr(pos, "sleep", 0, "int", args[0])
	}
	time.Sleep(time.Duration(n) * time.Millisecond)
	return EmptyString, nil
}

func builtinRead(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "read", 1, len(args))
	}
	path, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "read", 0, "string", args[0])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, newRuntimeError(pos, "read %q: %s", path, err.Error())
	}
	return StrVal(string(data)), nil
}

func builtinWrite(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "write", 2, len(args))
	}
	path, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "write", 0, "string", args[0])
	}
	content, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "write", 1, "string", args[1])
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Value{}, newRuntimeError(pos, "write %q: %s", path, err.Error())
	}
	return EmptyString, nil
}

func builtinCopyFile(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 2 {
		return Value{}, argErr(pos, "copy", 2, len(args))
	}
	src, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "copy", 0, "string", args[0])
	}
	dst, ok := wantStr(args[1])
	if !ok {
		return Value{}, typeErr(pos, "copy", 1, "string", args[1])
	}
	in, err := os.Open(src)
	if err != nil {
		return Value{}, newRuntimeError(pos, "copy %q: %s", src, err.Error())
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return Value{}, newRuntimeError(pos, "copy %q: %s", dst, err.Error())
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return Value{}, newRuntimeError(pos, "copy %q to %q: %s", src, dst, err.Error())
	}
	return EmptyString, nil
}

func builtinReadDir(ip *Interpreter, args []Value, pos Pos) (Value, error) {
	if len(args) != 1 {
		return Value{}, argErr(pos, "readDir", 1, len(args))
	}
	path, ok := wantStr(args[0])
	if !ok {
		return Value{}, typeErr(pos, "readDir", 0, "string", args[0])
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return Value{}, newRuntimeError(pos, "readDir %q: %s", path, err.Error())
	}
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = StrVal(e.Name())
	}
	return ArrayVal(out), nil
}
