package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/ajkachnic/punky/config"
	"github.com/ajkachnic/punky/core"
	"github.com/ajkachnic/punky/repl"
	"github.com/ajkachnic/punky/server"
)

const version = "0.1.0"

const helpMessage = `punky is a tiny interpreted language.

Usage:
  punky [flags]

Type :env to list bindings and :quit to leave.
`

var configPath = flag.String("config", "", "config file (default ~/"+config.DefaultFileName+")")
var debugAst = flag.Bool("debug-ast", false, "print AST")
var debugTokens = flag.Bool("debug-tokens", false, "print tokens")
var plain = flag.Bool("plain", false, "use the basic line reader")
var serve = flag.Bool("serve", false, "serve sessions over websockets (clients run code inside this process; recursion is capped per session)")
var noColor = flag.Bool("no-color", false, "disable colored output")
var showVersion = flag.Bool("version", false, "print version")

func main() {
	flag.Usage = func() {
		fmt.Print(helpMessage)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Println("punky", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	cfg.DebugAST = cfg.DebugAST || *debugAst
	cfg.DebugTokens = cfg.DebugTokens || *debugTokens
	if *noColor {
		cfg.Color = false
	}
	if !cfg.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if *serve {
		if err := server.ListenAndServe(cfg.Listen); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		return
	}

	reader, err := repl.NewReader(cfg, *plain)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	defer reader.Close()

	if err := repl.New(reader, os.Stdout, core.NewSession(), cfg).Run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
