package core

// Parse lexes and parses source. The program must not be evaluated when
// diagnostics are returned.
func Parse(source string) (*Program, []string) {
	parser := NewParser(NewLexer(source))
	program := parser.ParseProgram()

	return program, parser.Errors()
}

// Session evaluates successive inputs against one root environment, so
// bindings from earlier inputs stay visible to later ones.
type Session struct {
	env *Environment
}

func NewSession() *Session {
	return &Session{env: NewEnvironment()}
}

// NewSessionWithEnv continues a session rooted at an existing environment.
func NewSessionWithEnv(env *Environment) *Session {
	return &Session{env: env}
}

func (s *Session) Env() *Environment {
	return s.env
}

// Eval parses and evaluates one input. On parse failure nothing is
// evaluated, the result is nil and the diagnostics are returned.
func (s *Session) Eval(source string) (Value, []string) {
	program, diagnostics := Parse(source)
	if len(diagnostics) > 0 {
		return nil, diagnostics
	}

	return Eval(program, s.env), nil
}

// Interpret evaluates source in a fresh environment.
func Interpret(source string) (Value, []string) {
	return NewSession().Eval(source)
}
