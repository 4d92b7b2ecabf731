package token

import "unicode/utf8"

// Scanner facilitates construction of tokens from an in-memory source text.
// The lexer scans runes into a pending token and either emits or discards
// the accumulated text.
type Scanner struct {
	file string
	src  []byte

	start     int // start of the pending token
	pos       int // position of the next unscanned rune
	line      int // line number at pos
	startLine int // line number at start
}

// NewScanner initializes and returns a new Scanner reading from src.
func NewScanner(file string, src []byte) *Scanner {
	return &Scanner{
		file:      file,
		src:       src,
		line:      1,
		startLine: 1,
	}
}

// EmitToken returns a token of the given type containing the text scanned
// since the last call to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore discards all text scanned since the last call to either EmitToken
// or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.src[s.start:s.pos])
}

// Peek returns the next rune to be scanned.  The second value is false when
// the scanner has reached the end of the source.
func (s *Scanner) Peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c, _ := utf8.DecodeRune(s.src[s.pos:])
	return c, true
}

// ScanRune consumes the next rune into the pending token and returns it.
// The second value is false when the scanner has reached the end of the
// source.
func (s *Scanner) ScanRune() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c, n := utf8.DecodeRune(s.src[s.pos:])
	s.pos += n
	if c == '\n' {
		s.line++
	}
	return c, true
}

// EOF returns true once every rune of the source has been scanned.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.src)
}

// LocStart returns a Location referencing the beginning of the pending
// token, just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
	}
}
