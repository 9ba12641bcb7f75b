// Package fsm implements the finite state recognizers used by the Datalog
// lexer. Each recognizer is a deterministic automaton accepting exactly one
// lexical category; Run drives one automaton over an input until it accepts
// or rejects.
package fsm

import (
	"strconv"

	"github.com/agenthands/datalex/pkg/compiler/token"
)

// State identifies a state of an automaton. Values >= 0 are private to each
// recognizer; Accept and Reject are the terminal states shared by all of them.
type State int

const (
	Reject State = -2
	Accept State = -1
	Start  State = 0
)

// EndOfInput is fed to an automaton once the input is exhausted.
const EndOfInput rune = -1

// Terminal reports whether s is Accept or Reject.
func (s State) Terminal() bool {
	return s == Accept || s == Reject
}

func (s State) String() string {
	switch s {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	}
	return "s" + strconv.Itoa(int(s))
}

// Automaton is a recognizer for one token category.
//
// Step maps the current state, the number of characters consumed so far and
// the next input character to the next state and the new consumed count. It
// must be total: characters with no transition go to Reject. Step is never
// called with a terminal state; Advance handles those.
//
// Token turns an accepted prefix of the input into a token.
type Automaton interface {
	Step(s State, consumed int, c rune) (State, int)
	Token(text string) token.Token
}

// Advance performs one transition of a. Accept and Reject are absorbing:
// Accept keeps its count and Reject always reports zero.
func Advance(a Automaton, s State, consumed int, c rune) (State, int) {
	switch s {
	case Accept:
		return Accept, consumed
	case Reject:
		return Reject, 0
	}
	next, n := a.Step(s, consumed, c)
	if next == Reject {
		return Reject, 0
	}
	return next, n
}
