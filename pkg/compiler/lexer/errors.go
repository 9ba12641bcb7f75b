package lexer

import (
	"errors"
	"fmt"
)

// ErrUnrecognized is matched by every *UnrecognizedError.
var ErrUnrecognized = errors.New("lexer: unrecognized character")

// UnrecognizedError reports where a scan stopped.
type UnrecognizedError struct {
	Char string
	Line int
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("lexer: unrecognized character %q on line %d", e.Char, e.Line)
}

func (e *UnrecognizedError) Unwrap() error { return ErrUnrecognized }
