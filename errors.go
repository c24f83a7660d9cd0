// errors.go implements A1: the structured error taxonomy of spec.md §7 and
// the caret-snippet rendering used by the REPL/file runner in cmd/axo and by
// tests that lock error messages. Grounded on the teacher's errors.go
// (`WrapErrorWithSource` / `prettyErrorStringLabeled`): same header +
// one-line-of-context + caret shape, ported to Axo's three error kinds.
package axo

import (
	"fmt"
	"strings"
)

// ParseError carries (message, line, column, offending lexeme) per
// spec.md §4.2. It is fatal and non-recoverable: the parser does not
// attempt error recovery.
type ParseError struct {
	Line   int
	Col    int
	Lexeme string
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s (near %q)", e.Line, e.Col, e.Msg, e.Lexeme)
}

// RuntimeError is raised for reference/arity/bounds/type/I-O errors
// (spec.md §7). Thrown carries the user value for a ThrowSignal that
// escaped uncaught, or the message of the error() built-in, so a catch
// block or top-level handler can use it; it is nil for every other runtime
// error kind.
type RuntimeError struct {
	Line   int
	Col    int
	Msg    string
	Thrown *Value
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func newRuntimeError(pos Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: pos.Line, Col: pos.Col, Msg: fmt.Sprintf(format, args...)}
}

// WrapErrorWithSource renders a *LexError, *ParseError, or *RuntimeError as a
// multi-line, caret-annotated snippet of src. Any other error is returned
// unchanged, mirroring the teacher's behavior of only touching diagnostics
// it recognizes.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", e.Line, e.Col, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, "RUNTIME ERROR", e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

func snippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
