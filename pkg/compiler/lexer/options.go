package lexer

import (
	"github.com/agenthands/datalex/pkg/compiler/fsm"
	"github.com/agenthands/datalex/pkg/compiler/token"
)

// Option configures a Scanner.
type Option func(*Scanner)

// WithRecognizers replaces the default recognizers. Order is the tie-break
// order.
func WithRecognizers(recognizers ...fsm.Automaton) Option {
	return func(s *Scanner) {
		s.recognizers = recognizers
	}
}

// WithHidden sets the kinds that are consumed but not yielded. Passing no
// kinds makes every token visible.
func WithHidden(kinds ...token.Kind) Option {
	return func(s *Scanner) {
		s.hidden = make(map[token.Kind]bool, len(kinds))
		for _, k := range kinds {
			s.hidden[k] = true
		}
	}
}

// WithTrace registers fn to observe every arbitration, hidden ones included.
func WithTrace(fn func(Match)) Option {
	return func(s *Scanner) {
		s.trace = fn
	}
}
