package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

const quote = '\''

const (
	inString State = iota + 1
	sawQuote       // a closing quote, unless the next byte is another quote
)

type quoted struct{}

// QuotedString matches a single-quoted string. A doubled quote inside the
// string stands for one literal quote. Reaching end of input inside the
// string rejects.
func QuotedString() Automaton { return quoted{} }

func (quoted) Step(s State, consumed int, c rune) (State, int) {
	switch s {
	case Start:
		if c != quote {
			return Reject, 0
		}
		return inString, consumed + 1
	case inString:
		switch c {
		case quote:
			return sawQuote, consumed + 1
		case EndOfInput:
			return Reject, 0
		}
		return inString, consumed + 1
	case sawQuote:
		if c == quote {
			return inString, consumed + 1
		}
		return Accept, consumed
	}
	return Reject, 0
}

func (quoted) Token(text string) token.Token { return token.Str(text) }
