package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

// literal matches one fixed spelling. State i means the first i bytes of
// text have been matched; the chain has no branches and no early accept.
type literal struct {
	text string
	kind token.Kind
}

// Literal returns a recognizer for the exact text of a fixed-spelling kind.
func Literal(kind token.Kind) Automaton {
	return literal{text: kind.Literal(), kind: kind}
}

func (l literal) Step(s State, consumed int, c rune) (State, int) {
	i := int(s)
	if i >= len(l.text) || c != rune(l.text[i]) {
		return Reject, 0
	}
	if i+1 == len(l.text) {
		return Accept, consumed + 1
	}
	return s + 1, consumed + 1
}

func (l literal) Token(text string) token.Token {
	return token.Fixed(l.kind, text)
}
