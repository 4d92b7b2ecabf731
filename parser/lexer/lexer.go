package lexer

import (
	"strings"
	"unicode"

	"github.com/minlisp/minlisp/parser/token"
)

// Runes that terminate a symbol.  Whitespace and commas separate tokens and
// every delimiter or sigil is a token of its own.
const delimiterRunes = "()[]{}'\"`~@^&;,"

// Runes permitted in the name of a keyword after the leading colon.
const keywordTailRunes = "_-"

// Lexer splits source text into a stream of tokens.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
}

// New initializes and returns a new Lexer that reads runes from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// NextToken scans and returns the next token in the source text.  Once the
// source is exhausted all subsequent calls return EOF tokens.
func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	if !lex.readChar() {
		return lex.scanner.EmitToken(token.EOF)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '[':
		return lex.scanner.EmitToken(token.BRACKET_L)
	case ']':
		return lex.scanner.EmitToken(token.BRACKET_R)
	case '{':
		return lex.scanner.EmitToken(token.BRACE_L)
	case '}':
		return lex.scanner.EmitToken(token.BRACE_R)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case '`':
		return lex.scanner.EmitToken(token.QUASIQUOTE)
	case '~':
		// ~@ is matched greedily ahead of the bare unquote sigil.
		if lex.peekRune() == '@' {
			lex.readChar()
			return lex.scanner.EmitToken(token.SPLICE_UNQUOTE)
		}
		return lex.scanner.EmitToken(token.UNQUOTE)
	case '@':
		return lex.scanner.EmitToken(token.DEREF)
	case '^':
		return lex.scanner.EmitToken(token.META)
	case '&':
		return lex.scanner.EmitToken(token.AMPERSAND)
	case ';':
		return lex.readComment()
	case '"':
		return lex.readString()
	case ':':
		return lex.readKeyword()
	case '-':
		// A minus sign followed by a digit begins a number; a bare minus is
		// an ordinary symbol.
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		return lex.readSymbol()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		return lex.readSymbol()
	}
}

func (lex *Lexer) readComment() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || c == '\n' {
			return lex.scanner.EmitToken(token.COMMENT)
		}
		lex.readChar()
	}
}

func (lex *Lexer) readString() *token.Token {
	for {
		if !lex.readChar() {
			return lex.scanner.EmitToken(token.STRING_UNTERM)
		}
		switch lex.ch {
		case '"':
			return lex.scanner.EmitToken(token.STRING)
		case '\\':
			// The escaped rune is validated at parse time; the lexer only
			// needs to avoid treating an escaped quote as the terminator.
			if !lex.readChar() {
				return lex.scanner.EmitToken(token.STRING_UNTERM)
			}
		}
	}
}

func (lex *Lexer) readKeyword() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !isKeywordRune(c) {
			return lex.scanner.EmitToken(token.KEYWORD)
		}
		lex.readChar()
	}
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		lex.readChar()
	}
	// A token like 12ab is a symbol, not a number followed by a symbol.
	if isSymbolRune(lex.peekRune()) {
		return lex.readSymbol()
	}
	return lex.scanner.EmitToken(token.INT)
}

func (lex *Lexer) readSymbol() *token.Token {
	for isSymbolRune(lex.peekRune()) {
		lex.readChar()
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) skipWhitespace() {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !isSeparator(c) {
			break
		}
		lex.readChar()
	}
	lex.scanner.Ignore()
}

func (lex *Lexer) peekRune() rune {
	c, _ := lex.scanner.Peek()
	return c
}

func (lex *Lexer) readChar() bool {
	c, ok := lex.scanner.ScanRune()
	if !ok {
		return false
	}
	lex.ch = c
	return true
}

func isSeparator(c rune) bool {
	return unicode.IsSpace(c) || c == ','
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isSymbolRune(c rune) bool {
	if c == 0 || isSeparator(c) {
		return false
	}
	return !strings.ContainsRune(delimiterRunes, c)
}

func isKeywordRune(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c) || strings.ContainsRune(keywordTailRunes, c)
}
