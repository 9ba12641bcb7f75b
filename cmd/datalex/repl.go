package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/agenthands/datalex/pkg/compiler/lexer"
	"github.com/agenthands/datalex/pkg/report"
)

const quitCommand = ":quit"

func runInteractive(cfg config, opts []lexer.Option) int {
	if !isTerminal(os.Stdin.Fd()) {
		if err := runLines(os.Stdin, os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("Type a line of Datalog to tokenize it. Type :quit or Ctrl+D to exit.")
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if strings.TrimSpace(line) == quitCommand {
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		fmt.Println(report.Render(line, opts...))
	}
}

// runLines tokenizes each line of r independently.
func runLines(r io.Reader, w io.Writer, opts []lexer.Option) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == quitCommand {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, report.Render(line, opts...)); err != nil {
			return err
		}
	}
	return sc.Err()
}
