package main

import (
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
)

const historyFile = ".datalex_history"

type config struct {
	Debug   bool
	History string
	Prompt  string
}

func loadConfig() config {
	history := historyFile
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFile)
	}
	return config{
		Debug:   env.Bool("DATALEX_DEBUG"),
		History: env.Str("DATALEX_HISTORY", history),
		Prompt:  env.Str("DATALEX_PROMPT", "datalex> "),
	}
}
