// Package report renders a token stream the way the datalex command prints it.
package report

import (
	"iter"
	"strconv"
	"strings"

	"github.com/agenthands/datalex/pkg/compiler/lexer"
	"github.com/agenthands/datalex/pkg/compiler/token"
)

// Summary is the result of draining a token sequence.
type Summary struct {
	Tokens    []token.Token
	Failed    bool
	ErrorLine int
}

// Summarize consumes seq, stopping after the first Undefined token.
func Summarize(seq iter.Seq[token.Token]) Summary {
	var sum Summary
	for tok := range seq {
		sum.Tokens = append(sum.Tokens, tok)
		if tok.Kind == token.Undefined {
			sum.Failed = true
			sum.ErrorLine = tok.Line
			break
		}
	}
	return sum
}

// String renders one token per line followed by the token total, or by an
// error marker naming the line the scan stopped on.
func (s Summary) String() string {
	var b strings.Builder
	for _, tok := range s.Tokens {
		b.WriteString(tok.String())
		b.WriteByte('\n')
	}
	if s.Failed {
		b.WriteString("\nTotal Tokens = Error on line ")
		b.WriteString(strconv.Itoa(s.ErrorLine))
		return b.String()
	}
	b.WriteString("Total Tokens = ")
	b.WriteString(strconv.Itoa(len(s.Tokens)))
	return b.String()
}

// Render tokenizes source and renders the result.
func Render(source string, opts ...lexer.Option) string {
	return Summarize(lexer.Tokens(source, opts...)).String()
}
