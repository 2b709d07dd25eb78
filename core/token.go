package core

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	ILLEGAL tokenKind = iota
	EOF

	// literals
	IDENTIFIER
	INT

	// operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL
	EQUAL
	NOT_EQUAL

	// delimiters
	COMMA
	SEMICOLON
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE

	// keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var kindNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "IDENTIFIER",
	INT:           "INT",
	ASSIGN:        "ASSIGN",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	BANG:          "BANG",
	ASTERISK:      "ASTERISK",
	SLASH:         "SLASH",
	LESS:          "LESS",
	GREATER:       "GREATER",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL",
	EQUAL:         "EQUAL",
	NOT_EQUAL:     "NOT_EQUAL",
	COMMA:         "COMMA",
	SEMICOLON:     "SEMICOLON",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	FUNCTION:      "FUNCTION",
	LET:           "LET",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	IF:            "IF",
	ELSE:          "ELSE",
	RETURN:        "RETURN",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k tokenKind) IsKeyword() bool {
	return k >= FUNCTION && k <= RETURN
}

// IsOperator reports whether the kind is a prefix or infix operator.
func (k tokenKind) IsOperator() bool {
	return k >= ASSIGN && k <= NOT_EQUAL
}

var keywords = map[string]tokenKind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// lookupIdentifier classifies an identifier run against the keyword table.
func lookupIdentifier(ident string) tokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER
}

type Position struct {
	Line   int
	Col    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("[%d:%d]", p.Line, p.Col)
}

type Token struct {
	Kind    tokenKind
	Literal string
	Pos     Position
	Length  int
}

func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER:
		return fmt.Sprintf("var(%s)", t.Literal)
	case INT:
		return fmt.Sprintf("int(%s)", t.Literal)
	case ILLEGAL:
		return fmt.Sprintf("illegal(%s)", t.Literal)
	case EOF:
		return "<eof>"
	default:
		return t.Literal
	}
}

type Lexer struct {
	source []rune
	index  int
	line   int
	col    int
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		index:  0,
		line:   1,
		col:    1,
	}
}

func (l *Lexer) isEOF() bool {
	return l.index >= len(l.source)
}

func (l *Lexer) next() rune {
	ch := l.source[l.index]
	l.index++

	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return ch
}

func (l *Lexer) peek() rune {
	if l.isEOF() {
		return 0
	}
	return l.source[l.index]
}

func (l *Lexer) peekAhead(n int) rune {
	if l.index+n >= len(l.source) {
		return 0
	}
	return l.source[l.index+n]
}

// pos is the position of the next unread rune.
func (l *Lexer) pos() Position {
	return Position{Line: l.line, Col: l.col, Offset: l.index}
}

func (l *Lexer) skipWhitespace() {
	for !l.isEOF() {
		ch := l.peek()
		switch {
		case unicode.IsSpace(ch):
			l.next()
		case ch == '/' && l.peekAhead(1) == '/':
			for !l.isEOF() && l.peek() != '\n' {
				l.next()
			}
		default:
			return
		}
	}
}

func isIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.index
	for !l.isEOF() {
		ch := l.peek()
		if isIdentifierStart(ch) || isDigit(ch) {
			l.next()
		} else {
			break
		}
	}
	return string(l.source[start:l.index])
}

func (l *Lexer) readNumber() string {
	start := l.index
	for !l.isEOF() && isDigit(l.peek()) {
		l.next()
	}
	return string(l.source[start:l.index])
}

// twoChar consumes an operator that may be followed by '=' to form its
// two-character variant.
func (l *Lexer) twoChar(pos Position, single, double tokenKind) Token {
	ch := l.next()
	if l.peek() == '=' {
		l.next()
		return Token{Kind: double, Literal: string(ch) + "=", Pos: pos, Length: 2}
	}
	return Token{Kind: single, Literal: string(ch), Pos: pos, Length: 1}
}

// NextToken scans the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos()
	if l.isEOF() {
		return Token{Kind: EOF, Pos: pos}
	}

	ch := l.peek()
	switch ch {
	case '=':
		return l.twoChar(pos, ASSIGN, EQUAL)
	case '!':
		return l.twoChar(pos, BANG, NOT_EQUAL)
	case '<':
		return l.twoChar(pos, LESS, LESS_EQUAL)
	case '>':
		return l.twoChar(pos, GREATER, GREATER_EQUAL)
	}

	if isIdentifierStart(ch) {
		ident := l.readIdentifier()
		return Token{Kind: lookupIdentifier(ident), Literal: ident, Pos: pos, Length: len([]rune(ident))}
	}
	if isDigit(ch) {
		digits := l.readNumber()
		return Token{Kind: INT, Literal: digits, Pos: pos, Length: len(digits)}
	}

	l.next()

	var kind tokenKind
	switch ch {
	case '+':
		kind = PLUS
	case '-':
		kind = MINUS
	case '*':
		kind = ASTERISK
	case '/':
		kind = SLASH
	case ',':
		kind = COMMA
	case ';':
		kind = SEMICOLON
	case '(':
		kind = LEFT_PAREN
	case ')':
		kind = RIGHT_PAREN
	case '{':
		kind = LEFT_BRACE
	case '}':
		kind = RIGHT_BRACE
	default:
		kind = ILLEGAL
	}

	return Token{Kind: kind, Literal: string(ch), Pos: pos, Length: 1}
}

// Tokenize scans the whole input. The trailing EOF token is not included.
func (l *Lexer) Tokenize() []Token {
	tokens := []Token{}
	for {
		tok := l.NextToken()
		if tok.Kind == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
