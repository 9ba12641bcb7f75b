package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

const commentMarker = '#'

const inComment State = 1

type comment struct{}

// Comment matches a '#' and the rest of its line, excluding the newline.
func Comment() Automaton { return comment{} }

func (comment) Step(s State, consumed int, c rune) (State, int) {
	if s == Start {
		if c != commentMarker {
			return Reject, 0
		}
		return inComment, consumed + 1
	}
	if c == '\n' || c == EndOfInput {
		return Accept, consumed
	}
	return inComment, consumed + 1
}

func (comment) Token(text string) token.Token { return token.Remark(text) }
