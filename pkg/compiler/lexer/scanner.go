package lexer

import (
	"iter"
	"strings"

	"github.com/agenthands/datalex/pkg/compiler/fsm"
	"github.com/agenthands/datalex/pkg/compiler/token"
)

// State is the state of a scan over a whole input.
type State uint8

const (
	Scanning State = iota
	Done           // an EOF token was produced
	Failed         // an Undefined token was produced
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Match describes the outcome of one longest-match arbitration.
type Match struct {
	Token  token.Token
	Length int // characters reported by the winning recognizer, 0 for the fallback
	Index  int // position of the winner in the recognizer list, -1 for the fallback
	Hidden bool
}

// Scanner performs longest-match lexical analysis of Datalog source.
type Scanner struct {
	recognizers []fsm.Automaton
	hidden      map[token.Kind]bool
	trace       func(Match)

	rest  string
	line  int
	state State
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string, opts ...Option) *Scanner {
	s := &Scanner{
		recognizers: fsm.Default(),
		hidden:      map[token.Kind]bool{token.Whitespace: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(source)
	return s
}

// Reset restarts the scanner over new source, keeping its configuration.
func (s *Scanner) Reset(source string) {
	s.rest = source
	s.line = 1
	s.state = Scanning
}

// State reports whether the scan is still running, finished cleanly or failed.
func (s *Scanner) State() State { return s.state }

// Line returns the line the next token will start on.
func (s *Scanner) Line() int { return s.line }

// Next returns the next visible token. It reports false once the scan has
// produced its EOF or Undefined token.
func (s *Scanner) Next() (token.Token, bool) {
	for s.state == Scanning {
		m := s.longest()
		tok := m.Token.At(s.line)
		m.Token = tok

		s.line += strings.Count(tok.Text, "\n")
		s.rest = s.rest[len(tok.Text):]

		switch tok.Kind {
		case token.EOF:
			s.state = Done
		case token.Undefined:
			s.state = Failed
		}

		if s.trace != nil {
			s.trace(m)
		}
		if m.Hidden {
			continue
		}
		return tok, true
	}
	return token.Token{}, false
}

// All returns the remaining tokens as a lazy sequence.
func (s *Scanner) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// longest runs every recognizer on the remaining input and keeps the one
// that consumed the most. Ties go to the earlier recognizer. Runs ending in
// an Undefined token are not matches, and neither are tokens whose text is
// not the consumed prefix or that would not move the cursor.
func (s *Scanner) longest() Match {
	best := Match{Index: -1}
	for i, a := range s.recognizers {
		n, tok := fsm.Run(a, s.rest)
		if n == 0 || tok.Kind == token.Undefined || !s.advances(n, tok) {
			continue
		}
		if n > best.Length {
			best = Match{Token: tok, Length: n, Index: i}
		}
	}
	if best.Index < 0 {
		best.Token = token.Unknown(s.rest[:min(1, len(s.rest))])
		return best
	}
	best.Hidden = s.hidden[best.Token.Kind]
	return best
}

// advances reports whether tok is exactly the first n characters of the
// remaining input and either consumes at least one of them or ends the scan.
func (s *Scanner) advances(n int, tok token.Token) bool {
	if tok.Text != s.rest[:min(n, len(s.rest))] {
		return false
	}
	return tok.Text != "" || tok.Kind == token.EOF
}

// Tokens returns the visible tokens of source as a lazy sequence. Breaking
// out of the range stops the scan.
func Tokens(source string, opts ...Option) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		s := NewScanner(source, opts...)
		for tok := range s.All() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Lex scans all of source. If the scan fails the returned slice ends with the
// Undefined token and the error is an *UnrecognizedError.
func Lex(source string, opts ...Option) ([]token.Token, error) {
	var toks []token.Token
	for tok := range Tokens(source, opts...) {
		toks = append(toks, tok)
		if tok.Kind == token.Undefined {
			return toks, &UnrecognizedError{Char: tok.Text, Line: tok.Line}
		}
	}
	return toks, nil
}
