package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/huaga/internal/app"
	"github.com/kk-code-lab/huaga/internal/logging"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("huaga needs an interactive terminal")

func main() {
	// Set UTF-8 as fallback encoding so file names display correctly.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "huaga: %v\n", err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	if !isTerminal(stdout) {
		fmt.Fprintf(stderr, "huaga: %v\n", errNoTerminal)
		return 1
	}

	logger, err := logging.Open(cli.LogFile, cli.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "huaga: %v\n", err)
		return 1
	}
	defer logger.Close()
	logger.Info("starting", "version", version, "image", cli.Path)

	app, err := apppkg.NewApplication(cli.options(logger.Logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing application: %v\n", err)
		return 1
	}
	app.Run()
	if err := app.Close(); err != nil {
		logger.Warn("close", "err", err)
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
