package token

import "fmt"

// Token is a single lexical element of lisp source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used by the lexer and parser.
const (
	INVALID Type = iota
	EOF

	// Atomic expressions & literals
	SYMBOL
	INT
	STRING
	STRING_UNTERM // a string literal missing its closing quote
	KEYWORD

	COMMENT

	// Quote-family sigils
	QUOTE
	QUASIQUOTE
	UNQUOTE
	SPLICE_UNQUOTE
	DEREF
	META
	AMPERSAND

	// Delimiters
	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:        "invalid",
		EOF:            "EOF",
		SYMBOL:         "symbol",
		INT:            "int",
		STRING:         "string",
		STRING_UNTERM:  "unterminated-string",
		KEYWORD:        "keyword",
		COMMENT:        ";",
		QUOTE:          "'",
		QUASIQUOTE:     "`",
		UNQUOTE:        "~",
		SPLICE_UNQUOTE: "~@",
		DEREF:          "@",
		META:           "^",
		AMPERSAND:      "&",
		PAREN_L:        "(",
		PAREN_R:        ")",
		BRACKET_L:      "[",
		BRACKET_R:      "]",
		BRACE_L:        "{",
		BRACE_R:        "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location identifies a position within a source text.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	if loc.Line == 0 {
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	}
	return fmt.Sprintf("%s:%d", loc.File, loc.Line)
}
