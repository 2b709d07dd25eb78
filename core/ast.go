package core

import (
	"strings"
)

// Node is implemented by every syntax tree node. The set of nodes is closed:
// only the types in this file implement it.
type Node interface {
	TokenLiteral() string
	String() string
	astNode()
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) astNode() {}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// statements

type LetStatement struct {
	Token Token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) astNode()             {}
func (s *LetStatement) statementNode()       {}
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }

func (s *LetStatement) String() string {
	return "let " + s.Name.String() + " = " + s.Value.String() + ";"
}

type ReturnStatement struct {
	Token Token
	Value Expression // nil for a bare return
}

func (s *ReturnStatement) astNode()             {}
func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }

func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

type ExpressionStatement struct {
	Token      Token
	Expression Expression
}

func (s *ExpressionStatement) astNode()             {}
func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }

func (s *ExpressionStatement) String() string {
	return s.Expression.String()
}

type BlockStatement struct {
	Token      Token
	Statements []Statement
}

func (s *BlockStatement) astNode()             {}
func (s *BlockStatement) statementNode()       {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }

func (s *BlockStatement) String() string {
	if len(s.Statements) == 0 {
		return "{ }"
	}
	stmts := make([]string, len(s.Statements))
	for i, stmt := range s.Statements {
		stmts[i] = stmt.String()
	}
	return "{ " + strings.Join(stmts, " ") + " }"
}

// expressions

type Identifier struct {
	Token Token
	Value string
}

func (e *Identifier) astNode()             {}
func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Value }

type IntegerLiteral struct {
	Token Token
	Value int64
}

func (e *IntegerLiteral) astNode()             {}
func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) String() string       { return e.Token.Literal }

type Boolean struct {
	Token Token
	Value bool
}

func (e *Boolean) astNode()             {}
func (e *Boolean) expressionNode()      {}
func (e *Boolean) TokenLiteral() string { return e.Token.Literal }
func (e *Boolean) String() string       { return e.Token.Literal }

type PrefixExpression struct {
	Token    Token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) astNode()             {}
func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }

func (e *PrefixExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

type InfixExpression struct {
	Token    Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) astNode()             {}
func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }

func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

type IfExpression struct {
	Token       Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil without an else branch
}

func (e *IfExpression) astNode()             {}
func (e *IfExpression) expressionNode()      {}
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }

func (e *IfExpression) String() string {
	out := "if (" + e.Condition.String() + ") " + e.Consequence.String()
	if e.Alternative != nil {
		out += " else " + e.Alternative.String()
	}
	return out
}

type FunctionLiteral struct {
	Token      Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) astNode()             {}
func (e *FunctionLiteral) expressionNode()      {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }

func (e *FunctionLiteral) String() string {
	return "fn(" + joinNodes(e.Parameters) + ") " + e.Body.String()
}

type CallExpression struct {
	Token     Token
	Function  Expression
	Arguments []Expression
}

func (e *CallExpression) astNode()             {}
func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }

func (e *CallExpression) String() string {
	return e.Function.String() + "(" + joinNodes(e.Arguments) + ")"
}

func joinNodes[T Node](nodes []T) string {
	strs := make([]string, len(nodes))
	for i, n := range nodes {
		strs[i] = n.String()
	}
	return strings.Join(strs, ", ")
}
