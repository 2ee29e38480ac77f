package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/thiremani/numel/interpreter"
	"github.com/thiremani/numel/lexer"
	"github.com/thiremani/numel/parser"
	"github.com/thiremani/numel/token"
	"github.com/thiremani/numel/types"
)

// REPL_FILE labels locations of interactively entered code.
const REPL_FILE = "<repl>"

type prompter interface {
	Prompt(prompt string) (string, error)
}

func repl(stdout, stderr io.Writer) int {
	cacheDir := defaultNumelCache()
	cfg, err := loadConfig(cacheDir)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v; using defaults\n", err)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	in := interpreter.New(stdout)
	defer in.Close()
	ln.SetCompleter(func(line string) []string {
		return complete(line, completions(in))
	})

	histPath := cfg.historyPath(cacheDir)
	if cfg.History > 0 && histPath != "" {
		if err := loadHistory(ln, histPath); err != nil {
			fmt.Fprintf(stderr, "warning: %v\n", err)
		}
		defer func() {
			if err := saveHistory(ln, histPath, cfg.History); err != nil {
				fmt.Fprintf(stderr, "warning: %v\n", err)
			}
		}()
	}

	fmt.Fprintf(stdout, "numel %s. Press Ctrl+D to exit.\n", Version)
	for {
		src, ok := readByParseProbe(ln, cfg.Prompt, cfg.ContinuePrompt)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		for _, line := range strings.Split(src, "\n") {
			if strings.TrimSpace(line) != "" {
				ln.AppendHistory(line)
			}
		}
		evalEntry(in, src, stderr)
	}
}

// readByParseProbe reads lines until they parse, or fail to parse for a
// reason other than running out of input. Ctrl+C drops the pending entry.
// It reports false once input is exhausted.
func readByParseProbe(p prompter, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = p.Prompt(prompt)
		} else {
			line, err = p.Prompt(cont)
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := parser.ParseSource(REPL_FILE, src)
		if parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// evalEntry runs one REPL entry against the session's namespace.
func evalEntry(in *interpreter.Interpreter, src string, stderr io.Writer) bool {
	program, err := parser.ParseSource(REPL_FILE, src)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}
	if err := in.Eval(program); err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}
	return true
}

func completions(in *interpreter.Interpreter) []string {
	words := token.Keywords()
	words = append(words, types.ReservedNames()...)
	return append(words, in.Names()...)
}

// complete expands the identifier under the cursor at the end of line.
func complete(line string, words []string) []string {
	runes := []rune(line)
	start := len(runes)
	for start > 0 && lexer.IsLetterOrDigit(runes[start-1]) {
		start--
	}
	prefix := string(runes[start:])
	if prefix == "" {
		return nil
	}

	head := string(runes[:start])
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, head+w)
		}
	}
	return out
}
