package core

// Eval evaluates a syntax tree node in env. Errors are returned as
// *ErrorValue and end evaluation of the enclosing blocks. A *ReturnValue
// does the same until the enclosing function or program unwraps it.
func Eval(node Node, env *Environment) Value {
	switch node := node.(type) {
	case *Program:
		return evalProgram(node, env)
	case *BlockStatement:
		return evalBlockStatement(node, env)
	case *ExpressionStatement:
		return Eval(node.Expression, env)
	case *LetStatement:
		val := Eval(node.Value, env)
		if isSignal(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return empty
	case *ReturnStatement:
		if node.Value == nil {
			return &ReturnValue{Value: null}
		}
		val := Eval(node.Value, env)
		if isSignal(val) {
			return val
		}
		return &ReturnValue{Value: val}

	case *IntegerLiteral:
		return IntValue(node.Value)
	case *Boolean:
		return BoolValue(node.Value)
	case *Identifier:
		return evalIdentifier(node, env)
	case *PrefixExpression:
		right := Eval(node.Right, env)
		if isSignal(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *InfixExpression:
		left := Eval(node.Left, env)
		if isSignal(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isSignal(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *IfExpression:
		return evalIfExpression(node, env)
	case *FunctionLiteral:
		return &FunctionValue{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *CallExpression:
		function := Eval(node.Function, env)
		if isSignal(function) {
			return function
		}
		args, signal := evalExpressions(node.Arguments, env)
		if signal != nil {
			return signal
		}
		return applyFunction(function, args)
	}

	return newError("cannot evaluate %T", node)
}

func evalProgram(program *Program, env *Environment) Value {
	var result Value = empty

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *ReturnValue:
			return result.Value
		case *ErrorValue:
			return result
		}
	}

	return result
}

func evalBlockStatement(block *BlockStatement, env *Environment) Value {
	var result Value = null

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		switch result.(type) {
		case *ReturnValue, *ErrorValue:
			return result
		}
	}

	return result
}

func evalIdentifier(node *Identifier, env *Environment) Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newError("identifier not found: %s", node.Value)
}

func evalPrefixExpression(op string, right Value) Value {
	switch op {
	case "!":
		return evalBangOperator(right)
	case "-":
		if right, ok := right.(IntValue); ok {
			return -right
		}
		return newError("unknown operator: -%s", right.Type())
	default:
		return newError("unknown operator: %s%s", op, right.Type())
	}
}

// ! is a truthiness test rather than a boolean-only operator.
func evalBangOperator(right Value) Value {
	switch right := right.(type) {
	case BoolValue:
		return !right
	case NullValue:
		return BoolValue(true)
	default:
		return BoolValue(false)
	}
}

func evalInfixExpression(op string, left, right Value) Value {
	switch left := left.(type) {
	case IntValue:
		if right, ok := right.(IntValue); ok {
			return evalIntInfixExpression(op, left, right)
		}
	case BoolValue:
		if right, ok := right.(BoolValue); ok {
			return evalBoolInfixExpression(op, left, right)
		}
	}

	if left.Type() != right.Type() {
		return newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	}
	return newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
}

func evalIntInfixExpression(op string, a, b IntValue) Value {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		if b == 0 {
			return newError("division by zero")
		}
		// truncates toward zero
		return a / b
	case "<":
		return BoolValue(a < b)
	case ">":
		return BoolValue(a > b)
	case "<=":
		return BoolValue(a <= b)
	case ">=":
		return BoolValue(a >= b)
	case "==":
		return BoolValue(a == b)
	case "!=":
		return BoolValue(a != b)
	default:
		return newError("unknown operator: %s %s %s", IntType, op, IntType)
	}
}

func evalBoolInfixExpression(op string, a, b BoolValue) Value {
	switch op {
	case "==":
		return BoolValue(a == b)
	case "!=":
		return BoolValue(a != b)
	default:
		return newError("unknown operator: %s %s %s", BoolType, op, BoolType)
	}
}

func evalIfExpression(expr *IfExpression, env *Environment) Value {
	cond := Eval(expr.Condition, env)
	if isSignal(cond) {
		return cond
	}

	if cond.Truthy() {
		return Eval(expr.Consequence, env)
	} else if expr.Alternative != nil {
		return Eval(expr.Alternative, env)
	}
	return null
}

// evalExpressions evaluates left to right and stops at the first error or
// return, which is handed back in place of the values.
func evalExpressions(exprs []Expression, env *Environment) ([]Value, Value) {
	values := make([]Value, 0, len(exprs))

	for _, expr := range exprs {
		val := Eval(expr, env)
		if isSignal(val) {
			return nil, val
		}
		values = append(values, val)
	}

	return values, nil
}

func applyFunction(callee Value, args []Value) Value {
	fn, ok := callee.(*FunctionValue)
	if !ok {
		return newError("not a function: %s", callee.Type())
	}

	if len(fn.Parameters) != len(args) {
		return newError("wrong number of arguments: want=%d, got=%d", len(fn.Parameters), len(args))
	}

	calls := fn.Env.calls
	if calls.limit > 0 && calls.depth >= calls.limit {
		return newError("maximum call depth %d exceeded", calls.limit)
	}
	calls.depth++
	defer func() { calls.depth-- }()

	// the call scope hangs off the closure's environment, not the caller's
	env := NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		env.Set(param.Value, args[i])
	}

	result := Eval(fn.Body, env)
	if ret, ok := result.(*ReturnValue); ok {
		return ret.Value
	}
	return result
}

// isSignal reports whether v ends evaluation of the enclosing expressions
// and blocks instead of being used as an operand.
func isSignal(v Value) bool {
	switch v.(type) {
	case *ReturnValue, *ErrorValue:
		return true
	}
	return false
}
