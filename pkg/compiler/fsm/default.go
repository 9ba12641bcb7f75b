package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

// Default returns the Datalog recognizers in tie-break order. Keywords come
// before the identifier recognizer.
func Default() []Automaton {
	return []Automaton{
		Literal(token.Colon),
		Literal(token.ColonDash),
		Literal(token.Comma),
		Literal(token.Period),
		Literal(token.QMark),
		Literal(token.LeftParen),
		Literal(token.RightParen),
		Literal(token.Schemes),
		Literal(token.Facts),
		Literal(token.Rules),
		Literal(token.Queries),
		Identifier(token.Keywords()...),
		QuotedString(),
		Comment(),
		Whitespace(),
		EOF(),
	}
}
