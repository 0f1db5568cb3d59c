package pavolang

import "fmt"

type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// keywords
	TokenLet
	TokenPrint
	TokenIf
	TokenLoop
	TokenBreak
	TokenReturn

	TokenIdentifier
	TokenInteger

	TokenColonEquals // :=
	TokenEquals      // =
	TokenSemicolon   // ;
	TokenPlus        // +
	TokenMinus       // -
	TokenEqEq        // ==
	TokenLess        // <
	TokenGreater     // >
	TokenNotEq       // !=
	TokenNot         // !
	TokenAnd         // &
	TokenOr          // |
	TokenLBrace      // {
	TokenRBrace      // }
)

var tokenNames = [...]string{
	TokenEOF:         "end of input",
	TokenLet:         "'let'",
	TokenPrint:       "'print'",
	TokenIf:          "'if'",
	TokenLoop:        "'loop'",
	TokenBreak:       "'break'",
	TokenReturn:      "'return'",
	TokenIdentifier:  "identifier",
	TokenInteger:     "integer",
	TokenColonEquals: "':='",
	TokenEquals:      "'='",
	TokenSemicolon:   "';'",
	TokenPlus:        "'+'",
	TokenMinus:       "'-'",
	TokenEqEq:        "'=='",
	TokenLess:        "'<'",
	TokenGreater:     "'>'",
	TokenNotEq:       "'!='",
	TokenNot:         "'!'",
	TokenAnd:         "'&'",
	TokenOr:          "'|'",
	TokenLBrace:      "'{'",
	TokenRBrace:      "'}'",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

var keywords = map[string]TokenKind{
	"return": TokenReturn,
	"loop":   TokenLoop,
	"break":  TokenBreak,
	"let":    TokenLet,
	"print":  TokenPrint,
	"if":     TokenIf,
}

// MaxTokenLen bounds token text, terminator slot included.
const MaxTokenLen = 256

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Text)
}
