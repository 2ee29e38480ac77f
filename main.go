package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/thiremani/numel/interpreter"
	"github.com/thiremani/numel/parser"
)

var NM_SUFFIX = ".nm"

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  numel            start the interactive prompt\n")
		fmt.Fprintf(w, "  numel <file%s>  run a script\n", NM_SUFFIX)
		fmt.Fprintf(w, "\nFlags:\n")
		fs.PrintDefaults()
	}
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	version := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		printVersion(stdout)
		return 0
	}

	switch fs.NArg() {
	case 0:
		return repl(stdout, stderr)
	case 1:
		return runFile(fs.Arg(0), stdout, stderr)
	}
	fs.Usage()
	return 2
}

func runFile(path string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %s: %v\n", path, err)
		return 1
	}
	return runSource(path, string(source), stdout, stderr)
}

// runSource parses and runs a whole program. The first error is printed
// to stderr as file:line:col: message.
func runSource(name, source string, stdout, stderr io.Writer) int {
	program, err := parser.ParseSource(name, source)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := interpreter.New(stdout).Interpret(program); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
