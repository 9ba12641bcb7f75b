package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

type whitespace struct{}

// Whitespace greedily consumes a run of blanks.
func Whitespace() Automaton { return whitespace{} }

func (whitespace) Step(s State, consumed int, c rune) (State, int) {
	switch {
	case isBlank(c):
		return Start, consumed + 1
	case consumed > 0:
		return Accept, consumed
	}
	return Reject, 0
}

func (whitespace) Token(text string) token.Token { return token.Blank(text) }

func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
