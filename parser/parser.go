/*
Package parser provides the lisp reader: source text in, expression trees
out.

	form    := atom | '(' <form>* ')' | '[' <form>* ']' | '{' (<form> <form>)* '}'
	         | sigil <form>
	atom    := number | string | keyword | symbol | 'nil' | 'true' | 'false'
	sigil   := ' | ` | ~ | ~@ | @ | ^<form>
	number  := /-?[0-9]+/
	string  := '"' (char | escape)* '"'
	keyword := ':' [0-9A-Za-z_-]*
*/
package parser

import (
	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser/rdparser"
	"github.com/minlisp/minlisp/parser/token"
)

// Conditions tagged on errors returned by Parse and ParseProgram.
const (
	CondEmptyInput         = rdparser.CondEmptyInput
	CondUnterminatedString = rdparser.CondUnterminatedString
	CondUnexpectedEOF      = rdparser.CondUnexpectedEOF
	CondUnmatchedDelimiter = rdparser.CondUnmatchedDelimiter
	CondInvalidToken       = rdparser.CondInvalidToken
)

// Parse parses the first form in text and returns it.  Source text beyond
// the first form is ignored.  Empty input (including input consisting of
// only whitespace and comments) fails with the empty-input condition.
func Parse(name string, text []byte) (*lisp.LVal, error) {
	p := rdparser.New(token.NewScanner(name, text))
	return p.ParseForm()
}

// ParseProgram parses every top-level form in text.
func ParseProgram(name string, text []byte) ([]*lisp.LVal, error) {
	p := rdparser.New(token.NewScanner(name, text))
	return p.ParseProgram()
}

// IsIncomplete returns true when err indicates source text that is valid so
// far but ends mid-form.  Interactive front ends use it to keep reading
// lines instead of reporting an error.
func IsIncomplete(err error) bool {
	switch lisp.ErrorCondition(err) {
	case CondUnexpectedEOF, CondUnterminatedString:
		return true
	}
	return false
}
