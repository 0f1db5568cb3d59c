package pavolang

import "fmt"

// Parser builds nodes from a Lexer with one token of lookahead.
//
//	statement  = "print" expression ";"
//	           | "let" IDENTIFIER ":=" expression ";"
//	           | IDENTIFIER "=" expression ";"
//	           | "if" expression block
//	           | "loop" [expression] block
//	           | "break" ";"
//	block      = "{" statement* ["return" expression ";"] "}"
//	expression = or [("==" | "<" | ">" | "!=") or]
//	or         = and ("|" and)*
//	and        = not ("&" not)*
//	not        = "!" not | arithmetic
//	arithmetic = primary (("+" | "-") primary)*
//	primary    = INTEGER | IDENTIFIER | block
type Parser struct {
	lexer   *Lexer
	current Token
	depth   int
}

// MaxNesting bounds nested blocks and "!" operators.
const MaxNesting = 1000

func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxNesting {
		return p.errorf("nesting too deep (limit %d)", MaxNesting)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func NewParser(lexer *Lexer) (*Parser, error) {
	tok, err := lexer.Next()
	if err != nil {
		return nil, err
	}
	return &Parser{
		lexer:   lexer,
		current: tok,
	}, nil
}

// Parse parses a whole program without executing anything.
func Parse(src string) ([]Node, error) {
	parser, err := NewParser(NewLexer(src))
	if err != nil {
		return nil, err
	}
	var nodes []Node
	for {
		node, err := parser.Next()
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nodes, nil
		}
		nodes = append(nodes, node)
	}
}

// Next parses one top-level statement. It returns nil, nil at end of input.
func (p *Parser) Next() (Node, error) {
	if p.current.Kind == TokenEOF {
		return nil, nil
	}
	return p.parseStatement()
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Pos:   p.current.Pos,
		Msg:   fmt.Sprintf(format, args...),
		AtEOF: p.current.Kind == TokenEOF,
	}
}

func (p *Parser) eat(kind TokenKind) (Token, error) {
	tok := p.current
	if tok.Kind != kind {
		return tok, p.errorf("expected %s, got %s", kind, tok.Kind)
	}
	next, err := p.lexer.Next()
	if err != nil {
		return tok, err
	}
	p.current = next
	return tok, nil
}

func (p *Parser) parseStatement() (Node, error) {
	switch p.current.Kind {

	case TokenPrint:
		tok, err := p.eat(TokenPrint)
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(TokenSemicolon); err != nil {
			return nil, err
		}
		return &Print{At: tok.Pos, Value: value}, nil

	case TokenLet:
		tok, err := p.eat(TokenLet)
		if err != nil {
			return nil, err
		}
		name, err := p.eat(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		if p.current.Kind != TokenColonEquals {
			return nil, p.errorf("must use := when initializing")
		}
		value, err := p.parseInitializer(TokenColonEquals)
		if err != nil {
			return nil, err
		}
		return &Assign{At: tok.Pos, Name: name.Text, Value: value}, nil

	case TokenIdentifier:
		name, err := p.eat(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		if p.current.Kind != TokenEquals {
			return nil, p.errorf("must use = for reassignment")
		}
		value, err := p.parseInitializer(TokenEquals)
		if err != nil {
			return nil, err
		}
		return &Reassign{At: name.Pos, Name: name.Text, Value: value}, nil

	case TokenIf:
		tok, err := p.eat(TokenIf)
		if err != nil {
			return nil, err
		}
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &If{At: tok.Pos, Cond: cond, Body: body.Body}, nil

	case TokenLoop:
		tok, err := p.eat(TokenLoop)
		if err != nil {
			return nil, err
		}
		var cond Node
		if p.current.Kind != TokenLBrace {
			cond, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &Loop{At: tok.Pos, Cond: cond, Body: body.Body}, nil

	case TokenBreak:
		tok, err := p.eat(TokenBreak)
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(TokenSemicolon); err != nil {
			return nil, err
		}
		return &Break{At: tok.Pos}, nil

	}

	return nil, p.errorf("unexpected %s at start of statement", p.current.Kind)
}

// parseInitializer parses `op expression ;` and returns the expression.
func (p *Parser) parseInitializer(op TokenKind) (Node, error) {
	if _, err := p.eat(op); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}
	return value, nil
}

func (p *Parser) parseBlock() (*Block, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	open, err := p.eat(TokenLBrace)
	if err != nil {
		return nil, err
	}
	block := &Block{At: open.Pos}

	for p.current.Kind != TokenRBrace {
		if p.current.Kind == TokenEOF {
			return nil, p.errorf("unterminated block opened at line %d, column %d",
				open.Pos.Line, open.Pos.Column)
		}

		if p.current.Kind == TokenReturn {
			// return ends the block
			ret, err := p.parseReturn()
			if err != nil {
				return nil, err
			}
			block.Body = append(block.Body, ret)
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}

	if _, err := p.eat(TokenRBrace); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseReturn() (Node, error) {
	tok, err := p.eat(TokenReturn)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}
	return &Return{At: tok.Pos, Value: value}, nil
}

var comparisonOps = map[TokenKind]Operator{
	TokenEqEq:    OpEq,
	TokenLess:    OpLess,
	TokenGreater: OpGreater,
	TokenNotEq:   OpNotEq,
}

// parseExpression handles at most one comparison.
func (p *Parser) parseExpression() (Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOps[p.current.Kind]
	if !ok {
		return left, nil
	}
	tok, err := p.eat(p.current.Kind)
	if err != nil {
		return nil, err
	}
	right, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return &Compare{At: tok.Pos, Op: op, Left: left, Right: right}, nil
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenOr {
		tok, err := p.eat(TokenOr)
		if err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Logic{At: tok.Pos, Op: OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenAnd {
		tok, err := p.eat(TokenAnd)
		if err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &Logic{At: tok.Pos, Op: OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.current.Kind != TokenNot {
		return p.parseArithmetic()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	tok, err := p.eat(TokenNot)
	if err != nil {
		return nil, err
	}
	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &Logic{At: tok.Pos, Op: OpNot, Right: operand}, nil
}

func (p *Parser) parseArithmetic() (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenPlus || p.current.Kind == TokenMinus {
		op := OpAdd
		if p.current.Kind == TokenMinus {
			op = OpSub
		}
		tok, err := p.eat(p.current.Kind)
		if err != nil {
			return nil, err
		}
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{At: tok.Pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	switch p.current.Kind {
	case TokenInteger:
		tok, err := p.eat(TokenInteger)
		if err != nil {
			return nil, err
		}
		return &Number{At: tok.Pos, Text: tok.Text}, nil
	case TokenIdentifier:
		tok, err := p.eat(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		return &Variable{At: tok.Pos, Name: tok.Text}, nil
	case TokenLBrace:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return block, nil
	}
	return nil, p.errorf("expected expression, got %s", p.current.Kind)
}
