// Command axo is the reference CLI for the Axo scripting language: a file
// runner and a line-editing REPL built on the engine in the root package.
// Grounded on the teacher's cmd/msg/main.go (same run/repl split, same
// liner-backed history file and Ctrl+C handling), trimmed to the two
// subcommands SPEC_FULL.md's CLI section actually calls for — Axo has no
// formatter or third-party package manager to give "fmt"/"get" a reason to
// exist here.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	axo "github.com/axo-lang/axo"
)

const (
	appName     = "axo"
	historyFile = ".axo_history"
	promptMain  = "axo> "
	promptCont  = " ... "
)

var banner = "Axo REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Axo

Usage:
  %s run <file.axo>    Run a script.
  %s repl              Start the REPL.

`, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.axo>\n", appName)
		return 2
	}

	ip := axo.NewRuntime()
	_, err := ip.RunFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := axo.NewRuntime()

	for {
		code, ok := readUntilComplete(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			break
		}

		v, err := ip.Run(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(v.StringForm()))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readUntilComplete accumulates lines from ln until axo.Parse accepts the
// buffer as a complete program or reports an error whose offending token is
// not EOF (a genuine syntax error, not a statement the user hasn't finished
// typing yet). Returns ok=false on EOF with no pending input.
func readUntilComplete(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			if b.Len() == 0 {
				return "", false
			}
			return b.String(), true
		}
		if err != nil {
			return b.String(), true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}

		_, perr := axo.Parse(src)
		if perr == nil {
			return src, true
		}
		var pe *axo.ParseError
		if ok := errors.As(perr, &pe); ok && pe.Lexeme == "" {
			continue
		}
		return src, true
	}
}
