// Package parser implements a recursive-descent parser over the token
// stream produced by internal/lexer, yielding the AST consumed by the rest
// of the pipeline.
package parser

import (
	"fmt"
	"math/big"

	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/lexer"
	"github.com/computorv2/computorv2/internal/token"
)

// Error is a grammar violation at a given source column.
type Error struct {
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
}

// Parser consumes a fixed token slice for a single input line.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser from a lexed token stream (must be EOF-terminated).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseLine lexes and parses a single input line into a Statement.
func ParseLine(line string) (ast.Statement, error) {
	toks, err := lexer.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return New(toks).parseStatement()
}

func (p *Parser) cur() token.Token  { return p.tokens[p.pos] }
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}
func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errf(format string, a ...interface{}) error {
	return &Error{Column: p.cur().Column, Msg: fmt.Sprintf(format, a...)}
}

func (p *Parser) expect(t token.Type) (token.Token, error) {
	if p.cur().Type != t {
		return token.Token{}, p.errf("expected %s, got %s", t, p.cur())
	}
	return p.advance(), nil
}

// parseStatement implements the grammar of §6: an assignment, a function
// definition, an evaluation query, an equation query, or a bare expression.
func (p *Parser) parseStatement() (ast.Statement, error) {
	startTok := p.cur()

	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	switch p.cur().Type {
	case token.ASSIGN:
		eq := p.advance()
		if p.cur().Type == token.QUESTION {
			p.advance()
			if err := p.expectEOF(); err != nil {
				return nil, err
			}
			return &ast.QueryStatement{Token: eq, Lhs: lhs, Rhs: nil}, nil
		}
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.cur().Type == token.QUESTION {
			p.advance()
			if err := p.expectEOF(); err != nil {
				return nil, err
			}
			return &ast.QueryStatement{Token: eq, Lhs: lhs, Rhs: rhs}, nil
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		target, err := assignTargetOf(lhs)
		if err != nil {
			return nil, err
		}
		return &ast.AssignStatement{Token: eq, Target: target, Value: rhs}, nil

	case token.QUESTION:
		p.advance()
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return &ast.QueryStatement{Token: startTok, Lhs: lhs, Rhs: nil}, nil

	default:
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: startTok, Expression: lhs}, nil
	}
}

func (p *Parser) expectEOF() error {
	if p.cur().Type != token.EOF {
		return p.errf("unexpected %s", p.cur())
	}
	return nil
}

// assignTargetOf classifies the already-parsed LHS expression as a plain
// variable or a function definition per §4.P.
func assignTargetOf(lhs ast.Expression) (ast.AssignTarget, error) {
	switch n := lhs.(type) {
	case *ast.Identifier:
		return ast.AssignTarget{Name: n.Name}, nil
	case *ast.CallExpression:
		params := make([]string, 0, len(n.Args))
		seen := make(map[string]bool, len(n.Args))
		for _, arg := range n.Args {
			ident, ok := arg.(*ast.Identifier)
			if !ok {
				return ast.AssignTarget{}, &Error{Column: n.Token.Column, Msg: "function parameters must be plain identifiers"}
			}
			if seen[ident.Name] {
				return ast.AssignTarget{}, &Error{Column: n.Token.Column, Msg: fmt.Sprintf("duplicate parameter %q", ident.Name)}
			}
			seen[ident.Name] = true
			params = append(params, ident.Name)
		}
		return ast.AssignTarget{Name: n.Name, Params: params}, nil
	default:
		return ast.AssignTarget{}, &Error{Column: lhs.GetToken().Column, Msg: "invalid assignment target"}
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.PLUS || p.cur().Type == token.MINUS {
		opTok := p.advance()
		op := ast.Add
		if opTok.Type == token.MINUS {
			op = ast.Sub
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.ASTERISK || p.cur().Type == token.SLASH || p.cur().Type == token.PERCENT {
		opTok := p.advance()
		var op ast.BinaryOp
		switch opTok.Type {
		case token.ASTERISK:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		case token.PERCENT:
			op = ast.Mod
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary binds weaker than power: "-x^2" parses as "-(x^2)" (§4.P).
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.cur().Type == token.PLUS || p.cur().Type == token.MINUS {
		opTok := p.advance()
		op := ast.UnaryPlus
		if opTok.Type == token.MINUS {
			op = ast.UnaryMinus
		}
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: opTok, Op: op, Child: child}, nil
	}
	return p.parsePower()
}

// parsePower is right-associative: "a^b^c" is "a^(b^c)" (§4.P).
func (p *Parser) parsePower() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == token.POW {
		opTok := p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Token: opTok, Op: ast.Pow, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		val, ok := new(big.Rat).SetString(tok.Lexeme)
		if !ok {
			return nil, &Error{Column: tok.Column, Msg: fmt.Sprintf("invalid numeric literal %q", tok.Lexeme)}
		}
		return &ast.NumberLiteral{Token: tok, Value: val}, nil

	case token.IMAG:
		p.advance()
		return &ast.ImagUnit{Token: tok}, nil

	case token.IDENT:
		p.advance()
		if p.cur().Type == token.LPAREN {
			return p.parseCall(tok)
		}
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}, nil

	case token.LPAREN:
		p.advance()
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LBRACKET:
		return p.parseMatrixLiteral(tok)

	default:
		return nil, p.errf("unexpected %s", tok)
	}
}

func (p *Parser) parseCall(nameTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.cur().Type != token.RPAREN {
		for {
			arg, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpression{Token: nameTok, Name: nameTok.Lexeme, Args: args}, nil
}

// parseMatrixLiteral parses [[a,b];[c,d]] and validates that every row has
// the same length (§4.P).
func (p *Parser) parseMatrixLiteral(startTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var rows [][]ast.Expression
	for {
		if _, err := p.expect(token.LBRACKET); err != nil {
			return nil, err
		}
		var row []ast.Expression
		for {
			elem, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			row = append(row, elem)
			if p.cur().Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		rows = append(rows, row)

		if len(rows) > 1 && len(rows[len(rows)-1]) != len(rows[0]) {
			return nil, &Error{Column: startTok.Column, Msg: "matrix rows must have equal length"}
		}

		if p.cur().Type == token.SEMICOLON {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.MatrixLiteral{Token: startTok, Rows: rows}, nil
}
