package core

import (
	"fmt"
	"strconv"
)

const (
	LOWEST int = iota
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

var precedences = map[tokenKind]int{
	EQUAL:         EQUALS,
	NOT_EQUAL:     EQUALS,
	LESS:          LESSGREATER,
	GREATER:       LESSGREATER,
	LESS_EQUAL:    LESSGREATER,
	GREATER_EQUAL: LESSGREATER,
	PLUS:          SUM,
	MINUS:         SUM,
	ASTERISK:      PRODUCT,
	SLASH:         PRODUCT,
	LEFT_PAREN:    CALL,
}

type (
	prefixParseFn func(p *Parser) Expression
	infixParseFn  func(p *Parser, left Expression) Expression
)

var (
	prefixParseFns map[tokenKind]prefixParseFn
	infixParseFns  map[tokenKind]infixParseFn
)

func init() {
	prefixParseFns = map[tokenKind]prefixParseFn{
		IDENTIFIER: (*Parser).parseIdentifier,
		INT:        (*Parser).parseIntegerLiteral,
		TRUE:       (*Parser).parseBoolean,
		FALSE:      (*Parser).parseBoolean,
		BANG:       (*Parser).parsePrefixExpression,
		MINUS:      (*Parser).parsePrefixExpression,
		LEFT_PAREN: (*Parser).parseGroupedExpression,
		IF:         (*Parser).parseIfExpression,
		FUNCTION:   (*Parser).parseFunctionLiteral,
	}

	infixParseFns = map[tokenKind]infixParseFn{
		PLUS:          (*Parser).parseInfixExpression,
		MINUS:         (*Parser).parseInfixExpression,
		ASTERISK:      (*Parser).parseInfixExpression,
		SLASH:         (*Parser).parseInfixExpression,
		EQUAL:         (*Parser).parseInfixExpression,
		NOT_EQUAL:     (*Parser).parseInfixExpression,
		LESS:          (*Parser).parseInfixExpression,
		GREATER:       (*Parser).parseInfixExpression,
		LESS_EQUAL:    (*Parser).parseInfixExpression,
		GREATER_EQUAL: (*Parser).parseInfixExpression,
		LEFT_PAREN:    (*Parser).parseCallExpression,
	}
}

type ParseError struct {
	Reason string
	Pos    Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s %s", e.Pos, e.Reason)
}

type Parser struct {
	lexer  *Lexer
	errors []ParseError

	cur  Token
	peek Token
}

func NewParser(l *Lexer) *Parser {
	p := &Parser{lexer: l}

	// fill cur and peek
	p.next()
	p.next()

	return p
}

// Errors returns the diagnostics recorded so far, in order.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.errors))
	for i, err := range p.errors {
		msgs[i] = err.Error()
	}
	return msgs
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) curIs(kind tokenKind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) peekIs(kind tokenKind) bool {
	return p.peek.Kind == kind
}

func (p *Parser) errorf(pos Position, format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{
		Reason: fmt.Sprintf(format, args...),
		Pos:    pos,
	})
}

// expect advances when the next token has the given kind and records a
// diagnostic otherwise.
func (p *Parser) expect(kind tokenKind) bool {
	if p.peekIs(kind) {
		p.next()
		return true
	}
	p.errorf(p.peek.Pos, "expected next token to be %s, got %s instead", kind, p.peek.Kind)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses statements until the end of input. The returned
// program is only meaningful when Errors is empty.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for !p.curIs(EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.next()
	}

	return program
}

// Statement parsers leave cur on the last token of the statement.
func (p *Parser) parseStatement() Statement {
	switch p.cur.Kind {
	case LET:
		return p.parseLetStatement()
	case RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.cur}

	if !p.expect(IDENTIFIER) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expect(ASSIGN) {
		return nil
	}
	p.next()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if p.peekIs(SEMICOLON) {
		p.next()
	}

	return stmt
}

func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.cur}

	switch p.peek.Kind {
	case SEMICOLON:
		p.next()
		return stmt
	case RIGHT_BRACE, EOF:
		return stmt
	}

	p.next()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if p.peekIs(SEMICOLON) {
		p.next()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.cur}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekIs(SEMICOLON) {
		p.next()
	}

	return stmt
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.cur, Statements: []Statement{}}
	p.next()

	for !p.curIs(RIGHT_BRACE) {
		if p.curIs(EOF) {
			p.errorf(p.cur.Pos, "unterminated block: expected %s, got %s", RIGHT_BRACE, EOF)
			return nil
		}
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.next()
	}

	return block
}

func (p *Parser) parseExpression(precedence int) Expression {
	prefix := prefixParseFns[p.cur.Kind]
	if prefix == nil {
		p.errorf(p.cur.Pos, "no prefix parse function for %s found", p.cur.Kind)
		return nil
	}

	left := prefix(p)

	for left != nil && !p.peekIs(SEMICOLON) && precedence < p.peekPrecedence() {
		infix := infixParseFns[p.peek.Kind]
		if infix == nil {
			p.errorf(p.peek.Pos, "no infix parse function for %s found", p.peek.Kind)
			return left
		}

		p.next()
		left = infix(p, left)
	}

	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.errorf(p.cur.Pos, "could not parse %q as integer", p.cur.Literal)
		return nil
	}

	return &IntegerLiteral{Token: p.cur, Value: value}
}

func (p *Parser) parseBoolean() Expression {
	return &Boolean{Token: p.cur, Value: p.curIs(TRUE)}
}

func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.cur, Operator: p.cur.Literal}
	p.next()

	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}

	return expr
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.cur, Operator: p.cur.Literal, Left: left}

	precedence := p.curPrecedence()
	p.next()

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}

func (p *Parser) parseGroupedExpression() Expression {
	p.next()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expect(RIGHT_PAREN) {
		return nil
	}

	return expr
}

// if (<condition>) { <consequence> } else { <alternative> }
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.cur}

	if !p.expect(LEFT_PAREN) {
		return nil
	}
	p.next()

	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		return nil
	}

	if !p.expect(RIGHT_PAREN) || !p.expect(LEFT_BRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekIs(ELSE) {
		p.next()

		if !p.expect(LEFT_BRACE) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

// fn(<parameters>) { <body> }
func (p *Parser) parseFunctionLiteral() Expression {
	fn := &FunctionLiteral{Token: p.cur}

	if !p.expect(LEFT_PAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expect(LEFT_BRACE) {
		return nil
	}

	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}

	return fn
}

func (p *Parser) parseFunctionParameters() ([]*Identifier, bool) {
	params := []*Identifier{}

	if p.peekIs(RIGHT_PAREN) {
		p.next()
		return params, true
	}

	if !p.expect(IDENTIFIER) {
		return nil, false
	}
	params = append(params, &Identifier{Token: p.cur, Value: p.cur.Literal})

	for p.peekIs(COMMA) {
		p.next()
		if !p.expect(IDENTIFIER) {
			return nil, false
		}
		params = append(params, &Identifier{Token: p.cur, Value: p.cur.Literal})
	}

	if !p.expect(RIGHT_PAREN) {
		return nil, false
	}

	return params, true
}

func (p *Parser) parseCallExpression(function Expression) Expression {
	call := &CallExpression{Token: p.cur, Function: function}

	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	call.Arguments = args

	return call
}

func (p *Parser) parseCallArguments() ([]Expression, bool) {
	args := []Expression{}

	if p.peekIs(RIGHT_PAREN) {
		p.next()
		return args, true
	}

	p.next()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekIs(COMMA) {
		p.next()
		p.next()

		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expect(RIGHT_PAREN) {
		return nil, false
	}

	return args, true
}
