package parser

import (
	"fmt"
	"strconv"

	"github.com/tally-lang/tally/pkg/ast"
)

// Error reports a lexing or parsing failure with its 1-based source position.
type Error struct {
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type parser struct {
	tokens []Token
	pos    int
}

// Parse turns source text into a program. On failure nothing evaluates; the
// returned error is a *Error locating the offending input.
func Parse(src string) (*ast.Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

func (p *parser) current() Token { return p.tokens[p.pos] }

func (p *parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	if p.current().Type != tt {
		return Token{}, p.errorAt(p.current(), fmt.Sprintf("expected %s, found %s", what, describeToken(p.current())))
	}
	return p.advance(), nil
}

func (p *parser) errorAt(tok Token, msg string) error {
	return &Error{Line: tok.Line, Col: tok.Col, Msg: msg}
}

func describeToken(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}

func (p *parser) parseProgram() (*ast.Program, error) {
	statements := []ast.Statement{}
	for p.current().Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return ast.NewProgram(statements), nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.current().Type {
	case TokenLet:
		return p.parseLetStatement()
	case TokenPrint:
		return p.parsePrintStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseLetStatement() (ast.Statement, error) {
	p.advance()
	name, err := p.expect(TokenIdent, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon, "':'"); err != nil {
		return nil, err
	}
	kind, err := p.expect(TokenKind, "a kind name (u8 .. f64)")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssign, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewLetStatement(name.Lexeme, kind.Lexeme, value), nil
}

func (p *parser) parsePrintStatement() (ast.Statement, error) {
	p.advance()
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewPrintStatement(value), nil
}

func (p *parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

func (p *parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// Assignment is right-associative and binds loosest; the target must be a
// plain identifier.
func (p *parser) parseAssignment() (ast.Expression, error) {
	if p.current().Type == TokenIdent && p.peek().Type == TokenAssign {
		name := p.advance()
		p.advance()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentExpression(name.Lexeme, value), nil
	}
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOperator
		switch p.current().Type {
		case TokenPlus:
			op = ast.OperatorAdd
		case TokenMinus:
			op = ast.OperatorSubtract
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOperator
		switch p.current().Type {
		case TokenStar:
			op = ast.OperatorMultiply
		case TokenSlash:
			op = ast.OperatorDivide
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

// Exponentiation is right-associative: 2^3^2 parses as 2^(3^2).
func (p *parser) parseExponent() (ast.Expression, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenCaret {
		return base, nil
	}
	p.advance()
	exponent, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpression(ast.OperatorPower, base, exponent), nil
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()
	switch tok.Type {
	case TokenNumber:
		p.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.errorAt(tok, fmt.Sprintf("invalid number literal %q", tok.Lexeme))
		}
		return ast.NewNumberLiteral(value), nil
	case TokenIdent:
		p.advance()
		return ast.NewIdentifier(tok.Lexeme), nil
	case TokenPi:
		p.advance()
		return ast.NewConstantLiteral(ast.ConstantPi), nil
	case TokenE:
		p.advance()
		return ast.NewConstantLiteral(ast.ConstantE), nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return ast.NewParenExpression(inner), nil
	}
	return nil, p.errorAt(tok, fmt.Sprintf("expected an expression, found %s", describeToken(tok)))
}
