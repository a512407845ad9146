package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mgomes/mython/mython"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return runREPL()
		}
		return runScript(os.Stdin)
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("mython run: script path required")
	}

	scriptPath := remaining[0]
	absScriptPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(absScriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	source := string(input)
	if _, err := mython.Run(source, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, mython.FormatError(err, source))
		os.Exit(1)
	}
	return nil
}

func runScript(stdin *os.File) error {
	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	source := string(input)
	if _, err := mython.Run(source, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, mython.FormatError(err, source))
		os.Exit(1)
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s run <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
	fmt.Fprintln(os.Stderr, "With no arguments, starts a REPL on a terminal or reads a script from stdin otherwise.")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
