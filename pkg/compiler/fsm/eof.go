package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

type eof struct{}

// EOF accepts only an empty input. It reports one consumed unit for the
// end-of-input probe so the scanner can tell it from a rejection.
func EOF() Automaton { return eof{} }

func (eof) Step(s State, consumed int, c rune) (State, int) {
	if c == EndOfInput {
		return Accept, consumed + 1
	}
	return Reject, 0
}

func (eof) Token(text string) token.Token { return token.End(text) }
