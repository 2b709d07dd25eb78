package repl

import (
	"errors"
	"io"
	"os"

	chzyer "github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/reeflective/readline"

	"github.com/ajkachnic/punky/config"
)

// LineReader supplies one line of input at a time and returns io.EOF once
// the input is exhausted.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewReader picks the interactive shell for terminals and the plain reader
// otherwise, or when plain is set.
func NewReader(cfg config.Config, plain bool) (LineReader, error) {
	if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		return newBasicReader(cfg, os.Stdin, os.Stdout)
	}
	return newShellReader(cfg), nil
}

// shellReader is the full line editor with syntax highlighting.
type shellReader struct {
	shell *readline.Shell
}

func newShellReader(cfg config.Config) *shellReader {
	shell := readline.NewShell()

	prompt := cfg.Prompt
	shell.Prompt.Primary(func() string { return prompt })

	if cfg.Highlight {
		shell.SyntaxHighlighter = Highlight
	}
	if cfg.HistoryFile != "" {
		shell.History.AddFromFile("punky", cfg.HistoryFile)
	}

	return &shellReader{shell: shell}
}

func (r *shellReader) Readline() (string, error) {
	return r.shell.Readline()
}

func (r *shellReader) Close() error {
	return nil
}

// basicReader handles piped input and dumb terminals.
type basicReader struct {
	rl *chzyer.Instance
}

func newBasicReader(cfg config.Config, in io.ReadCloser, out io.Writer) (*basicReader, error) {
	rl, err := chzyer.NewEx(&chzyer.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, err
	}

	return &basicReader{rl: rl}, nil
}

func (r *basicReader) Readline() (string, error) {
	for {
		line, err := r.rl.Readline()

		// ^C drops the current line
		if errors.Is(err, chzyer.ErrInterrupt) {
			continue
		}
		return line, err
	}
}

func (r *basicReader) Close() error {
	return r.rl.Close()
}
