package token

import (
	"strconv"
	"strings"
)

// Kind represents the syntactic category of a token.
type Kind uint8

const (
	Undefined Kind = iota
	EOF
	Colon      // :
	ColonDash  // :-
	Comma      // ,
	Period     // .
	QMark      // ?
	LeftParen  // (
	RightParen // )
	Schemes
	Facts
	Rules
	Queries
	ID
	String
	Comment
	Whitespace

	numKinds
)

var kindNames = [numKinds]string{
	Undefined:  "UNDEFINED",
	EOF:        "EOF",
	Colon:      "COLON",
	ColonDash:  "COLON_DASH",
	Comma:      "COMMA",
	Period:     "PERIOD",
	QMark:      "Q_MARK",
	LeftParen:  "LEFT_PAREN",
	RightParen: "RIGHT_PAREN",
	Schemes:    "SCHEMES",
	Facts:      "FACTS",
	Rules:      "RULES",
	Queries:    "QUERIES",
	ID:         "ID",
	String:     "STRING",
	Comment:    "COMMENT",
	Whitespace: "WHITESPACE",
}

// literals holds the fixed spelling of every punctuation, operator and keyword kind.
var literals = [numKinds]string{
	Colon:      ":",
	ColonDash:  ":-",
	Comma:      ",",
	Period:     ".",
	QMark:      "?",
	LeftParen:  "(",
	RightParen: ")",
	Schemes:    "Schemes",
	Facts:      "Facts",
	Rules:      "Rules",
	Queries:    "Queries",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Literal returns the fixed spelling of k, or "" when k has a variable spelling.
func (k Kind) Literal() string {
	if k < numKinds {
		return literals[k]
	}
	return ""
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= Schemes && k <= Queries
}

// Keywords returns the reserved words in declaration order.
func Keywords() []string {
	words := make([]string, 0, Queries-Schemes+1)
	for k := Schemes; k.IsKeyword(); k++ {
		words = append(words, k.Literal())
	}
	return words
}

// Token is a lexical unit: its category, the exact text consumed and the
// 1-based line of its first character. Tokens are compared with ==.
type Token struct {
	Kind Kind
	Text string
	Line int
}

// At returns a copy of t positioned on line.
func (t Token) At(line int) Token {
	t.Line = line
	return t
}

// String renders t as (KIND,"text",line).
func (t Token) String() string {
	var b strings.Builder
	b.Grow(len(t.Text) + 24)
	b.WriteByte('(')
	b.WriteString(t.Kind.String())
	b.WriteString(`,"`)
	b.WriteString(t.Text)
	b.WriteString(`",`)
	b.WriteString(strconv.Itoa(t.Line))
	b.WriteByte(')')
	return b.String()
}

// Fixed creates a token of a fixed-spelling kind. Any text other than the
// kind's literal spelling yields an Undefined token carrying that text.
func Fixed(kind Kind, text string) Token {
	if lit := kind.Literal(); lit == "" || lit != text {
		return Token{Kind: Undefined, Text: text}
	}
	return Token{Kind: kind, Text: text}
}

// End creates the zero-width end-of-input token.
func End(text string) Token {
	if text != "" {
		return Token{Kind: Undefined, Text: text}
	}
	return Token{Kind: EOF}
}

// Identifier creates an ID token.
func Identifier(text string) Token { return Token{Kind: ID, Text: text} }

// Str creates a quoted STRING token; text includes the quotes.
func Str(text string) Token { return Token{Kind: String, Text: text} }

// Remark creates a COMMENT token.
func Remark(text string) Token { return Token{Kind: Comment, Text: text} }

// Blank creates a WHITESPACE token.
func Blank(text string) Token { return Token{Kind: Whitespace, Text: text} }

// Unknown creates an UNDEFINED token, used for rejected runs and for the
// character a scan stops on.
func Unknown(text string) Token { return Token{Kind: Undefined, Text: text} }
