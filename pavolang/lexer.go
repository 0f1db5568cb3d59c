package pavolang

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

type Lexer struct {
	src    string
	offset int
	line   int
	column int
}

func NewLexer(src string) *Lexer {
	return &Lexer{
		src:    src,
		line:   1,
		column: 1,
	}
}

var singleCharTokens = map[byte]TokenKind{
	';': TokenSemicolon,
	'+': TokenPlus,
	'-': TokenMinus,
	'<': TokenLess,
	'>': TokenGreater,
	'&': TokenAnd,
	'|': TokenOr,
	'{': TokenLBrace,
	'}': TokenRBrace,
}

func (l *Lexer) pos() Pos {
	return Pos{
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.src)
}

func (l *Lexer) advance() {
	if l.src[l.offset] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.offset++
}

// match consumes c if it is the next byte.
func (l *Lexer) match(c byte) bool {
	if l.atEnd() || l.src[l.offset] != c {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		c := l.src[l.offset]
		switch {
		case isSpace(c):
			l.advance()
		case c == '#':
			for !l.atEnd() && l.src[l.offset] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// Next scans one token. Once the input is exhausted it keeps returning EOF.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	start := l.pos()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: start}, nil
	}

	c := l.src[l.offset]
	switch {
	case isDigit(c):
		return l.scanWord(start, isDigit, TokenInteger)
	case isLetter(c):
		return l.scanWord(start, isIdentRest, TokenIdentifier)
	}

	switch c {
	case ':':
		l.advance()
		if l.match('=') {
			return Token{Kind: TokenColonEquals, Text: ":=", Pos: start}, nil
		}
		return Token{}, &LexicalError{
			Pos: l.pos(),
			Msg: "expected '=' after ':'",
		}

	case '=':
		l.advance()
		if l.match('=') {
			return Token{Kind: TokenEqEq, Text: "==", Pos: start}, nil
		}
		return Token{Kind: TokenEquals, Text: "=", Pos: start}, nil

	case '!':
		l.advance()
		if l.match('=') {
			return Token{Kind: TokenNotEq, Text: "!=", Pos: start}, nil
		}
		return Token{Kind: TokenNot, Text: "!", Pos: start}, nil
	}

	if kind, ok := singleCharTokens[c]; ok {
		l.advance()
		return Token{Kind: kind, Text: string(c), Pos: start}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.offset:])
	return Token{}, &LexicalError{
		Pos: start,
		Msg: fmt.Sprintf("unexpected character %q", r),
	}
}

func (l *Lexer) scanWord(start Pos, accept func(byte) bool, kind TokenKind) (Token, error) {
	begin := l.offset
	for !l.atEnd() && accept(l.src[l.offset]) {
		l.advance()
	}
	text := l.src[begin:l.offset]
	if len(text) >= MaxTokenLen {
		return Token{}, &LexicalError{
			Pos: start,
			Msg: fmt.Sprintf("token too long (%d bytes, limit %d)", len(text), MaxTokenLen-1),
		}
	}
	if kind == TokenIdentifier {
		if kw, ok := keywords[text]; ok {
			kind = kw
		}
	}
	return Token{Kind: kind, Text: text, Pos: start}, nil
}

// All yields tokens up to and including EOF, or stops at the first error.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
			if tok.Kind == TokenEOF {
				return
			}
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentRest(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
