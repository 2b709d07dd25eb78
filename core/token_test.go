package core

import (
	"reflect"
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let add = fn(x, y) { x + y; };
!-/*5;
5 < 10 > 5;
if (5 <= 10) { return true; } else { return false; }
10 == 10; 10 != 9; 3 >= 2;
@ _a1 // trailing comment
`

	tests := []struct {
		kind    tokenKind
		literal string
	}{
		{LET, "let"},
		{IDENTIFIER, "five"},
		{ASSIGN, "="},
		{INT, "5"},
		{SEMICOLON, ";"},
		{LET, "let"},
		{IDENTIFIER, "add"},
		{ASSIGN, "="},
		{FUNCTION, "fn"},
		{LEFT_PAREN, "("},
		{IDENTIFIER, "x"},
		{COMMA, ","},
		{IDENTIFIER, "y"},
		{RIGHT_PAREN, ")"},
		{LEFT_BRACE, "{"},
		{IDENTIFIER, "x"},
		{PLUS, "+"},
		{IDENTIFIER, "y"},
		{SEMICOLON, ";"},
		{RIGHT_BRACE, "}"},
		{SEMICOLON, ";"},
		{BANG, "!"},
		{MINUS, "-"},
		{SLASH, "/"},
		{ASTERISK, "*"},
		{INT, "5"},
		{SEMICOLON, ";"},
		{INT, "5"},
		{LESS, "<"},
		{INT, "10"},
		{GREATER, ">"},
		{INT, "5"},
		{SEMICOLON, ";"},
		{IF, "if"},
		{LEFT_PAREN, "("},
		{INT, "5"},
		{LESS_EQUAL, "<="},
		{INT, "10"},
		{RIGHT_PAREN, ")"},
		{LEFT_BRACE, "{"},
		{RETURN, "return"},
		{TRUE, "true"},
		{SEMICOLON, ";"},
		{RIGHT_BRACE, "}"},
		{ELSE, "else"},
		{LEFT_BRACE, "{"},
		{RETURN, "return"},
		{FALSE, "false"},
		{SEMICOLON, ";"},
		{RIGHT_BRACE, "}"},
		{INT, "10"},
		{EQUAL, "=="},
		{INT, "10"},
		{SEMICOLON, ";"},
		{INT, "10"},
		{NOT_EQUAL, "!="},
		{INT, "9"},
		{SEMICOLON, ";"},
		{INT, "3"},
		{GREATER_EQUAL, ">="},
		{INT, "2"},
		{SEMICOLON, ";"},
		{ILLEGAL, "@"},
		{IDENTIFIER, "_a1"},
		{EOF, ""},
	}

	l := NewLexer(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - wrong kind. expected=%s, got=%s", i, tt.kind, tok.Kind)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer("x")

	if tok := l.NextToken(); tok.Kind != IDENTIFIER {
		t.Fatalf("expected IDENTIFIER, got %s", tok.Kind)
	}

	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != EOF {
			t.Fatalf("call %d: expected EOF, got %s", i, tok.Kind)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	l := NewLexer("let x = 10;\n  x >= 2")

	tests := []struct {
		kind   tokenKind
		pos    Position
		length int
	}{
		{LET, Position{Line: 1, Col: 1, Offset: 0}, 3},
		{IDENTIFIER, Position{Line: 1, Col: 5, Offset: 4}, 1},
		{ASSIGN, Position{Line: 1, Col: 7, Offset: 6}, 1},
		{INT, Position{Line: 1, Col: 9, Offset: 8}, 2},
		{SEMICOLON, Position{Line: 1, Col: 11, Offset: 10}, 1},
		{IDENTIFIER, Position{Line: 2, Col: 3, Offset: 14}, 1},
		{GREATER_EQUAL, Position{Line: 2, Col: 5, Offset: 16}, 2},
		{INT, Position{Line: 2, Col: 8, Offset: 19}, 1},
	}

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - wrong kind. expected=%s, got=%s", i, tt.kind, tok.Kind)
		}
		if tok.Pos != tt.pos {
			t.Errorf("tests[%d] - wrong position. expected=%+v, got=%+v", i, tt.pos, tok.Pos)
		}
		if tok.Length != tt.length {
			t.Errorf("tests[%d] - wrong length. expected=%d, got=%d", i, tt.length, tok.Length)
		}
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	inputs := []string{
		"let newAdder = fn(x) { fn(y) { x + y }; };",
		"if (a != b) { return -a * b; } // done",
		"$ 123abc == ==! <=>",
		"",
	}

	for _, input := range inputs {
		first := NewLexer(input).Tokenize()
		second := NewLexer(input).Tokenize()

		if !reflect.DeepEqual(first, second) {
			t.Errorf("tokenizing %q twice gave different results:\n%v\n%v", input, first, second)
		}
	}
}

func TestLongIntegerIsNotValidated(t *testing.T) {
	tok := NewLexer("99999999999999999999999").NextToken()

	if tok.Kind != INT || tok.Literal != "99999999999999999999999" {
		t.Errorf("unexpected token %v", tok)
	}
}

func TestTokenKindString(t *testing.T) {
	if LEFT_PAREN.String() != "LEFT_PAREN" {
		t.Errorf("unexpected name %q", LEFT_PAREN.String())
	}
	if tokenKind(1000).String() != "<unknown>" {
		t.Errorf("unexpected name %q", tokenKind(1000).String())
	}
	if !RETURN.IsKeyword() || IDENTIFIER.IsKeyword() {
		t.Error("keyword classification is wrong")
	}
	if !NOT_EQUAL.IsOperator() || COMMA.IsOperator() {
		t.Error("operator classification is wrong")
	}
}
