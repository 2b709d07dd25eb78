package core

import (
	"fmt"
	"strconv"
)

type ValueType int

const (
	NullType ValueType = iota
	IntType
	BoolType
	ReturnType
	ErrorType
	FunctionType
	EmptyType
)

func (t ValueType) String() string {
	switch t {
	case NullType:
		return "null"
	case IntType:
		return "int"
	case BoolType:
		return "boolean"
	case ReturnType:
		return "return"
	case ErrorType:
		return "error"
	case FunctionType:
		return "function"
	case EmptyType:
		return "empty"
	default:
		return "<unknown>"
	}
}

// Value is a runtime value produced by the evaluator. Like Node, the set of
// implementations is closed.
type Value interface {
	Type() ValueType
	String() string
	Truthy() bool
	value()
}

type NullValue struct{}

func (v NullValue) value()          {}
func (v NullValue) Type() ValueType { return NullType }
func (v NullValue) String() string  { return "null" }
func (v NullValue) Truthy() bool    { return false }

var null = NullValue{}

type IntValue int64

func (v IntValue) value()          {}
func (v IntValue) Type() ValueType { return IntType }
func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }

// Zero is truthy too; only false and null are falsy.
func (v IntValue) Truthy() bool { return true }

type BoolValue bool

func (v BoolValue) value()          {}
func (v BoolValue) Type() ValueType { return BoolType }
func (v BoolValue) Truthy() bool    { return bool(v) }

func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}

// ReturnValue carries a value out of the blocks enclosing a return
// statement. It is unwrapped at the function or program boundary.
type ReturnValue struct {
	Value Value
}

func (v *ReturnValue) value()          {}
func (v *ReturnValue) Type() ValueType { return ReturnType }
func (v *ReturnValue) String() string  { return v.Value.String() }
func (v *ReturnValue) Truthy() bool    { return v.Value.Truthy() }

type ErrorValue struct {
	Reason string
}

func newError(format string, args ...interface{}) *ErrorValue {
	return &ErrorValue{Reason: fmt.Sprintf(format, args...)}
}

func (v *ErrorValue) value()          {}
func (v *ErrorValue) Type() ValueType { return ErrorType }
func (v *ErrorValue) String() string  { return "ERROR: " + v.Reason }
func (v *ErrorValue) Truthy() bool    { return false }

// Error lets an evaluation error travel as a Go error outside the evaluator.
func (v *ErrorValue) Error() string { return v.Reason }

// FunctionValue is a closure: the literal's parameters and body together
// with the environment the literal was evaluated in.
type FunctionValue struct {
	Parameters []*Identifier
	Body       *BlockStatement
	Env        *Environment
}

func (v *FunctionValue) value()          {}
func (v *FunctionValue) Type() ValueType { return FunctionType }
func (v *FunctionValue) Truthy() bool    { return true }

func (v *FunctionValue) String() string {
	return "fn(" + joinNodes(v.Parameters) + ") " + v.Body.String()
}

// EmptyValue is the result of statements that produce nothing worth
// printing, such as let.
type EmptyValue struct{}

func (v EmptyValue) value()          {}
func (v EmptyValue) Type() ValueType { return EmptyType }
func (v EmptyValue) String() string  { return "" }
func (v EmptyValue) Truthy() bool    { return true }

var empty = EmptyValue{}

func IsError(v Value) bool {
	_, ok := v.(*ErrorValue)
	return ok
}
