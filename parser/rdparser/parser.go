package rdparser

import (
	"strconv"
	"strings"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser/lexer"
	"github.com/minlisp/minlisp/parser/token"
)

// Conditions tagged on parse errors.  They distinguish malformed input from
// input that is merely incomplete, which an interactive front end may want
// to keep reading.
const (
	CondEmptyInput         = "empty-input"
	CondUnterminatedString = "unterminated-string"
	CondUnexpectedEOF      = "unexpected-eof"
	CondUnmatchedDelimiter = "unmatched-delimiter"
	CondInvalidToken       = "invalid-token"
)

// Parser is a recursive descent lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens scanned from
// scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Prime the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses every top-level form in the source.  A source with no
// forms (possibly containing whitespace and comments) fails with the
// empty-input condition.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			break
		}
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 0 {
		return nil, lisp.GoError(p.errorf(CondEmptyInput, "empty input"))
	}
	return exprs, nil
}

// ParseForm parses a single form and returns it.  Source text following the
// form is not consumed.
func (p *Parser) ParseForm() (*lisp.LVal, error) {
	for p.expect(token.COMMENT) {
	}
	if p.expect(token.EOF) {
		return nil, lisp.GoError(p.errorf(CondEmptyInput, "empty input"))
	}
	expr := p.ParseExpression()
	if expr.Type == lisp.LError {
		return nil, lisp.GoError(expr)
	}
	return expr, nil
}

// ParseExpression parses a single form, which may recursively contain other
// forms.
func (p *Parser) ParseExpression() *lisp.LVal {
	for p.expect(token.COMMENT) {
	}
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.STRING:
		return p.ParseLiteralString()
	case token.STRING_UNTERM:
		p.ReadToken()
		return p.errorf(CondUnterminatedString, "unterminated string literal")
	case token.KEYWORD:
		return p.ParseKeyword()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.AMPERSAND:
		p.ReadToken()
		return p.tokenLVal(lisp.Symbol(lisp.VarArgSymbol))
	case token.QUOTE:
		return p.parseSigil(token.QUOTE, "quote")
	case token.QUASIQUOTE:
		return p.parseSigil(token.QUASIQUOTE, "quasiquote")
	case token.UNQUOTE:
		return p.parseSigil(token.UNQUOTE, "unquote")
	case token.SPLICE_UNQUOTE:
		return p.parseSigil(token.SPLICE_UNQUOTE, "splice-unquote")
	case token.DEREF:
		return p.parseSigil(token.DEREF, "deref")
	case token.META:
		return p.ParseMeta()
	case token.PAREN_L:
		return p.ParseList()
	case token.BRACKET_L:
		return p.ParseVector()
	case token.BRACE_L:
		return p.ParseMap()
	case token.PAREN_R, token.BRACKET_R, token.BRACE_R:
		p.ReadToken()
		return p.errorf(CondUnmatchedDelimiter, "unexpected closing delimiter %s", p.Token().Type)
	case token.EOF:
		return p.errorf(CondUnexpectedEOF, "unexpected end of input")
	default:
		p.ReadToken()
		return p.errorf(CondInvalidToken, "invalid token: %s", p.Token().Text)
	}
}

func (p *Parser) ParseLiteralInt() *lisp.LVal {
	p.expect(token.INT)
	text := p.Token().Text
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return p.errorf(CondInvalidToken, "integer literal overflows int64: %v", text)
	}
	return p.tokenLVal(lisp.Number(x))
}

func (p *Parser) ParseLiteralString() *lisp.LVal {
	p.expect(token.STRING)
	text := p.Token().Text
	return p.tokenLVal(lisp.String(unescapeString(text[1 : len(text)-1])))
}

func (p *Parser) ParseKeyword() *lisp.LVal {
	p.expect(token.KEYWORD)
	return p.tokenLVal(lisp.Keyword(p.Token().Text[1:]))
}

func (p *Parser) ParseSymbol() *lisp.LVal {
	p.expect(token.SYMBOL)
	switch text := p.Token().Text; text {
	case "nil":
		return p.tokenLVal(lisp.Nil())
	case "true":
		return p.tokenLVal(lisp.Bool(true))
	case "false":
		return p.tokenLVal(lisp.Bool(false))
	default:
		return p.tokenLVal(lisp.Symbol(text))
	}
}

func (p *Parser) parseSigil(typ token.Type, name string) *lisp.LVal {
	p.expect(typ)
	sym := p.tokenLVal(lisp.Symbol(name))
	form := p.ParseExpression()
	if form.Type == lisp.LError {
		return form
	}
	return lisp.List([]*lisp.LVal{sym, form})
}

// ParseMeta reads the meta form first and the target form second, but emits
// the target before the meta in the resulting list.
func (p *Parser) ParseMeta() *lisp.LVal {
	p.expect(token.META)
	sym := p.tokenLVal(lisp.Symbol("with-meta"))
	meta := p.ParseExpression()
	if meta.Type == lisp.LError {
		return meta
	}
	form := p.ParseExpression()
	if form.Type == lisp.LError {
		return form
	}
	return lisp.List([]*lisp.LVal{sym, form, meta})
}

func (p *Parser) ParseList() *lisp.LVal {
	cells, lerr := p.parseSeq(token.PAREN_L, token.PAREN_R)
	if lerr != nil {
		return lerr
	}
	return lisp.List(cells)
}

func (p *Parser) ParseVector() *lisp.LVal {
	cells, lerr := p.parseSeq(token.BRACKET_L, token.BRACKET_R)
	if lerr != nil {
		return lerr
	}
	return lisp.Vector(cells)
}

func (p *Parser) ParseMap() *lisp.LVal {
	open := p.Peek()
	cells, lerr := p.parseSeq(token.BRACE_L, token.BRACE_R)
	if lerr != nil {
		return lerr
	}
	if len(cells)%2 != 0 {
		lerr := p.errorf(CondInvalidToken, "map literal requires an even number of forms")
		lerr.Source = open.Source
		return lerr
	}
	return lisp.Map(cells)
}

func (p *Parser) parseSeq(left, right token.Type) ([]*lisp.LVal, *lisp.LVal) {
	p.expect(left)
	open := p.Token()
	var cells []*lisp.LVal
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(right) {
			return cells, nil
		}
		if p.PeekType() == token.EOF {
			lerr := p.errorf(CondUnexpectedEOF, "unexpected end of input: unmatched %s", open.Type)
			lerr.Source = open.Source
			return nil, lerr
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return nil, x
		}
		cells = append(cells, x)
	}
}

// ReadToken advances the parser by a single token.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the most recently consumed token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next unconsumed token.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next unconsumed token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	lerr := lisp.ErrorConditionf(condition, format, v...)
	if p.curr != nil {
		lerr.Source = p.curr.Source
	}
	return lerr
}

// unescapeString resolves the recognized escape sequences within the body
// of a string literal.  The lexer guarantees that a backslash is always
// followed by another byte within a terminated literal.
func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			buf.WriteByte('\n')
		case '\\':
			buf.WriteByte('\\')
		case '"':
			buf.WriteByte('"')
		default:
			// Unrecognized escapes pass the escaped rune through.
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}
