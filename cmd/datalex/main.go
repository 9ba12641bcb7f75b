package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/agenthands/datalex/pkg/compiler/lexer"
	"github.com/agenthands/datalex/pkg/report"
)

const usage = "usage: datalex <input file>"

func main() {
	cfg := loadConfig()

	fs := flag.NewFlagSet("datalex", flag.ExitOnError)
	debug := fs.Bool("debug", cfg.Debug, "trace every longest-match decision to stderr")
	interactive := fs.Bool("i", false, "tokenize lines read from a prompt")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	args := parseArgs(fs, os.Args[1:])

	var opts []lexer.Option
	if *debug {
		opts = append(opts, traceTo(log.New(os.Stderr, "datalex: ", 0)))
	}

	if *interactive {
		os.Exit(runInteractive(cfg, opts))
	}

	if len(args) != 1 {
		fmt.Println(usage)
		os.Exit(1)
	}

	out, err := tokenizeFile(args[0], opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// parseArgs parses flags placed before or after positional arguments and
// returns the positionals in order.
func parseArgs(fs *flag.FlagSet, args []string) []string {
	var positional []string
	fs.Parse(args)
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		fs.Parse(fs.Args()[1:])
	}
	return positional
}

func tokenizeFile(path string, opts ...lexer.Option) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return report.Render(string(src), opts...), nil
}

func traceTo(l *log.Logger) lexer.Option {
	return lexer.WithTrace(func(m lexer.Match) {
		if m.Index < 0 {
			l.Printf("line %d: no recognizer matched %q", m.Token.Line, m.Token.Text)
			return
		}
		verb := "emit"
		if m.Hidden {
			verb = "skip"
		}
		l.Printf("line %d: %s %s (%d chars, recognizer %d)", m.Token.Line, verb, m.Token.Kind, m.Length, m.Index)
	})
}
