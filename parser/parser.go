// Package parser implements the Nightcode recursive-descent parser.
//
// The parser reads a token slice produced by the lexer and builds a single
// [ast.ValueNode]. Two entry points exist:
//
//   - [Parse] scans forward to the first numeric literal and returns it. Any
//     tokens after that literal are ignored.
//   - [ParseExpression] parses a full arithmetic expression with Pratt
//     (top-down operator precedence) parsing over [Precedence].
//
// Usage:
//
//	tokens := lexer.Tokenize(source)
//	node, err := parser.ParseExpression(tokens)
//	var derr *diag.Error
//	if errors.As(err, &derr) { ... }
//
// There is no error recovery: the first error is returned.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/metaphox/nightcode/ast"
	"github.com/metaphox/nightcode/diag"
)

// ── Operator precedence ───────────────────────────────────────────────────────

// Precedence levels, ordered from lowest to highest.
const (
	precLowest  = -1 // starting point, below every operator
	precSum     = 0  // + -
	precProduct = 1  // * /
	precPrefix  = 2  // -x
)

// tokenPrecedence maps an infix operator kind to its precedence level.
var tokenPrecedence = map[ast.TokenKind]int{
	ast.PunOperatorPlus:     precSum,
	ast.PunOperatorMinus:    precSum,
	ast.PunOperatorMultiply: precProduct,
	ast.PunOperatorDivide:   precProduct,
}

// Precedence returns the infix precedence of kind. Higher binds tighter.
// ok is false for kinds that are not infix operators.
func Precedence(kind ast.TokenKind) (prec int, ok bool) {
	prec, ok = tokenPrecedence[kind]
	return prec, ok
}

// Error messages.
const (
	msgUndefinedToken = "found undefined token"
	msgInvalidInteger = "invalid integer literal"
	msgInvalidFloat   = "invalid float literal"
	msgNonLiteral     = "got non literal token while trying to parse literal"
	msgUnclosedParen  = "expected closing parenthesis"
	msgTrailingToken  = "unexpected token after expression"
)

// ── Parser ────────────────────────────────────────────────────────────────────

// prefixParseFn parses an expression that starts with the current token.
type prefixParseFn func() (ast.ValueNode, error)

// infixParseFn parses an infix expression given the already-parsed left side.
type infixParseFn func(left ast.ValueNode) (ast.ValueNode, error)

// Parser holds the state for parsing one token slice.
// Create one with [New].
type Parser struct {
	tokens []ast.Token
	pos    int // index of the current token

	prefixFns map[ast.TokenKind]prefixParseFn
	infixFns  map[ast.TokenKind]infixParseFn
}

// New creates a Parser over tokens and registers all parse functions.
// tokens must end with an EOF token; lexer output always does.
func New(tokens []ast.Token) *Parser {
	p := &Parser{
		tokens:    tokens,
		prefixFns: make(map[ast.TokenKind]prefixParseFn),
		infixFns:  make(map[ast.TokenKind]infixParseFn),
	}

	p.registerPrefix(ast.LiteralInteger, p.parseLiteralExpression)
	p.registerPrefix(ast.LiteralFloat, p.parseLiteralExpression)
	p.registerPrefix(ast.PunOperatorMinus, p.parseNegation)
	p.registerPrefix(ast.PunParenOpen, p.parseGroupedExpression)

	for kind := range tokenPrecedence {
		p.registerInfix(kind, p.parseBinaryExpression)
	}

	return p
}

// Parse returns the first numeric literal in tokens.
func Parse(tokens []ast.Token) (ast.ValueNode, error) {
	return New(tokens).ParseFirstLiteral()
}

// ParseExpression parses tokens as one arithmetic expression terminated by a
// semicolon or the end of input.
func ParseExpression(tokens []ast.Token) (ast.ValueNode, error) {
	return New(tokens).ParseExpression()
}

// ParseFirstLiteral scans forward from the current token to the first numeric
// literal and parses it. Operators, parentheses and semicolons before it are
// skipped. Reaching EOF first is a parser error reported at the EOF token.
func (p *Parser) ParseFirstLiteral() (ast.ValueNode, error) {
	for ; ; p.pos++ {
		tok := p.at(p.pos)
		switch {
		case tok.Kind.IsUndefined():
			return nil, diag.Syntax(msgUndefinedToken, tok.Location)
		case tok.Kind.IsLiteral(), tok.Kind == ast.EOF:
			return parseLiteral(tok)
		}
	}
}

// ParseExpression parses a complete expression starting at the current token.
func (p *Parser) ParseExpression() (ast.ValueNode, error) {
	node, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	p.advance()
	tok := p.cur()
	switch {
	case tok.Kind.IsUndefined():
		return nil, diag.Syntax(msgUndefinedToken, tok.Location)
	case tok.Kind != ast.Semicolon && tok.Kind != ast.EOF:
		return nil, diag.Parser(msgTrailingToken, tok.Location)
	}
	return node, nil
}

// ── Internal token management ─────────────────────────────────────────────────

// at returns the token at index i. Running off the end means the slice had no
// EOF token, which is a bug in whoever built it.
func (p *Parser) at(i int) ast.Token {
	if i >= len(p.tokens) {
		panic(fmt.Sprintf("idx %d is out of passed tokens range (%d)", i, len(p.tokens)))
	}
	return p.tokens[i]
}

func (p *Parser) cur() ast.Token  { return p.at(p.pos) }
func (p *Parser) peek() ast.Token { return p.at(p.pos + 1) }

// advance moves to the next token. It never moves past EOF.
func (p *Parser) advance() {
	if p.cur().Kind != ast.EOF {
		p.pos++
	}
}

// peekPrec returns the infix precedence of the peek token.
func (p *Parser) peekPrec() int {
	if p.cur().Kind == ast.EOF {
		return precLowest
	}
	if prec, ok := tokenPrecedence[p.peek().Kind]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) registerPrefix(kind ast.TokenKind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind ast.TokenKind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// ── Expression parsing (Pratt) ────────────────────────────────────────────────

// parseExpression is the Pratt parser entry point. prec is the minimum binding
// power of operators the caller will accept; operators of equal precedence are
// left to the caller, which makes them left-associative.
//
// On entry cur is the first token of the expression; on return cur is its last.
func (p *Parser) parseExpression(prec int) (ast.ValueNode, error) {
	tok := p.cur()
	if tok.Kind.IsUndefined() {
		return nil, diag.Syntax(msgUndefinedToken, tok.Location)
	}

	prefix, ok := p.prefixFns[tok.Kind]
	if !ok {
		return parseLiteral(tok)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for prec < p.peekPrec() {
		infix := p.infixFns[p.peek().Kind]
		p.advance()
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// ── Prefix parse functions ────────────────────────────────────────────────────

func (p *Parser) parseLiteralExpression() (ast.ValueNode, error) {
	return parseLiteral(p.cur())
}

// parseNegation handles `-expr`.
func (p *Parser) parseNegation() (ast.ValueNode, error) {
	p.advance()
	operand, err := p.parseExpression(precPrefix)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Op: ast.ArithmeticNegation, Value: operand}, nil
}

// parseGroupedExpression handles `(expr)`.
func (p *Parser) parseGroupedExpression() (ast.ValueNode, error) {
	p.advance()
	inner, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	p.advance()
	tok := p.cur()
	switch {
	case tok.Kind.IsUndefined():
		return nil, diag.Syntax(msgUndefinedToken, tok.Location)
	case tok.Kind != ast.PunParenClose:
		return nil, diag.Parser(msgUnclosedParen, tok.Location)
	}
	return inner, nil
}

// ── Infix parse functions ─────────────────────────────────────────────────────

// parseBinaryExpression handles `left op right`. cur is the operator token.
func (p *Parser) parseBinaryExpression(left ast.ValueNode) (ast.ValueNode, error) {
	opTok := p.cur()
	op, _ := ast.BinaryOperationFor(opTok.Kind)
	prec := tokenPrecedence[opTok.Kind]

	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Left: left, Op: op, Right: right}, nil
}

// ── Literals ──────────────────────────────────────────────────────────────────

// parseLiteral converts a literal token into a node. Integers must fit in 32
// signed bits; floats are parsed as 32-bit binary floats and must be finite.
func parseLiteral(tok ast.Token) (ast.ValueNode, error) {
	switch tok.Kind {
	case ast.LiteralInteger:
		n, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, diag.Parser(msgInvalidInteger, tok.Location)
		}
		return &ast.Literal{Value: ast.Integer(n)}, nil
	case ast.LiteralFloat:
		if strings.Trim(tok.Value, "0123456789.eE") != "" {
			// strconv also accepts hex mantissas and underscores.
			return nil, diag.Parser(msgInvalidFloat, tok.Location)
		}
		// Out-of-range values saturate to ±Inf like an IEEE conversion.
		f, err := strconv.ParseFloat(tok.Value, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, diag.Parser(msgInvalidFloat, tok.Location)
		}
		return &ast.Literal{Value: ast.SingleFloat(f)}, nil
	default:
		return nil, diag.Parser(msgNonLiteral, tok.Location)
	}
}
