package fsm

import "github.com/agenthands/datalex/pkg/compiler/token"

// Run drives a from Start over input until it reaches Accept or Reject and
// returns the number of characters consumed along with the token built from
// that prefix. A rejected run reports 0 and an empty Undefined token.
//
// The loop takes at most len(input)+1 steps: one per character plus the
// end-of-input probe.
func Run(a Automaton, input string) (int, token.Token) {
	state, n := Start, 0
	for step := 0; step <= len(input); step++ {
		state, n = Advance(a, state, n, charAt(input, n))
		if state.Terminal() {
			break
		}
	}
	if state != Accept {
		return 0, token.Unknown("")
	}
	// The end-of-input probe counts as consumed but has no text.
	return n, a.Token(input[:min(n, len(input))])
}

func charAt(input string, i int) rune {
	if i < len(input) {
		return rune(input[i])
	}
	return EndOfInput
}
