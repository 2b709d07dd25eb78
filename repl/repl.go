// Package repl drives an interactive punky session: it reads a line,
// reports parser diagnostics or evaluates it, and prints the result.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ajkachnic/punky/config"
	"github.com/ajkachnic/punky/core"
)

var (
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgHiBlack)
)

type REPL struct {
	reader  LineReader
	out     io.Writer
	session *core.Session

	debugAST    bool
	debugTokens bool
}

func New(reader LineReader, out io.Writer, session *core.Session, cfg config.Config) *REPL {
	return &REPL{
		reader:      reader,
		out:         out,
		session:     session,
		debugAST:    cfg.DebugAST,
		debugTokens: cfg.DebugTokens,
	}
}

// Run reads and evaluates lines until the input ends or :quit is entered.
func (r *REPL) Run() error {
	for {
		line, err := r.reader.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if !r.Eval(line) {
			return nil
		}
	}
}

// Eval handles a single input line. It returns false when the session
// should end.
func (r *REPL) Eval(line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return false
	case ":env":
		r.printEnv()
		return true
	}

	if r.debugTokens {
		tokens := core.NewLexer(line).Tokenize()
		strs := make([]string, len(tokens))
		for i, tok := range tokens {
			strs[i] = tok.String()
		}
		debugColor.Fprintf(r.out, "tokens: %s\n", strings.Join(strs, " "))
	}

	program, diagnostics := core.Parse(line)
	if len(diagnostics) > 0 {
		errorColor.Fprintln(r.out, "parser errors:")
		for _, msg := range diagnostics {
			errorColor.Fprintf(r.out, "\t%s\n", msg)
		}
		return true
	}

	if r.debugAST {
		debugColor.Fprintf(r.out, "ast: %s\n", program)
	}

	r.print(core.Eval(program, r.session.Env()))
	return true
}

func (r *REPL) print(v core.Value) {
	switch v.Type() {
	case core.EmptyType:
	case core.ErrorType:
		errorColor.Fprintln(r.out, v.String())
	default:
		fmt.Fprintln(r.out, v.String())
	}
}

func (r *REPL) printEnv() {
	env := r.session.Env()
	for _, name := range env.Names() {
		v, _ := env.Get(name)
		fmt.Fprintf(r.out, "%s = %s\n", name, v)
	}
}
