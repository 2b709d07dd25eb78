package repl

import (
	"strings"

	"github.com/fatih/color"

	"github.com/ajkachnic/punky/core"
)

var (
	keywordColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	booleanColor  = color.New(color.FgCyan).SprintFunc()
	numberColor   = color.New(color.FgMagenta).SprintFunc()
	operatorColor = color.New(color.FgYellow).SprintFunc()
	illegalColor  = color.New(color.FgRed, color.Underline).SprintFunc()
)

// Highlight colours a line of source for display. Text between tokens
// (whitespace, comments) is copied unchanged.
func Highlight(line []rune) string {
	builder := strings.Builder{}

	i := 0
	for _, tok := range core.NewLexer(string(line)).Tokenize() {
		if tok.Pos.Offset > i {
			builder.WriteString(string(line[i:tok.Pos.Offset]))
		}

		text := string(line[tok.Pos.Offset : tok.Pos.Offset+tok.Length])

		switch {
		case tok.Kind == core.TRUE || tok.Kind == core.FALSE:
			builder.WriteString(booleanColor(text))
		case tok.Kind.IsKeyword():
			builder.WriteString(keywordColor(text))
		case tok.Kind == core.INT:
			builder.WriteString(numberColor(text))
		case tok.Kind.IsOperator():
			builder.WriteString(operatorColor(text))
		case tok.Kind == core.ILLEGAL:
			builder.WriteString(illegalColor(text))
		default:
			builder.WriteString(text)
		}

		i = tok.Pos.Offset + tok.Length
	}

	if i < len(line) {
		builder.WriteString(string(line[i:]))
	}

	return builder.String()
}
