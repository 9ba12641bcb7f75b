package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

const inIdent State = 1

type identifier struct {
	reserved map[string]struct{}
}

// Identifier matches a letter followed by letters and digits, stopping before
// the first other byte. A match spelling one of the reserved words yields an
// Undefined token, leaving the keyword recognizers to claim it.
func Identifier(reserved ...string) Automaton {
	id := identifier{reserved: make(map[string]struct{}, len(reserved))}
	for _, w := range reserved {
		id.reserved[w] = struct{}{}
	}
	return id
}

func (identifier) Step(s State, consumed int, c rune) (State, int) {
	if s == Start {
		if !isLetter(c) {
			return Reject, 0
		}
		return inIdent, consumed + 1
	}
	if isLetter(c) || isDigit(c) {
		return inIdent, consumed + 1
	}
	return Accept, consumed
}

func (id identifier) Token(text string) token.Token {
	if _, ok := id.reserved[text]; ok {
		return token.Unknown(text)
	}
	return token.Identifier(text)
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
