package interpreter

import (
	"github.com/aledsdavies/glox/pkgs/ast"
	"github.com/aledsdavies/glox/pkgs/loxerr"
	"github.com/aledsdavies/glox/pkgs/token"
)

func (in *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	switch ex := e.(type) {
	case *ast.Literal:
		return ex.Value, nil

	case *ast.Grouping:
		return in.evaluate(ex.Expression)

	case *ast.Unary:
		return in.evalUnary(ex)

	case *ast.Binary:
		return in.evalBinary(ex)

	case *ast.Logical:
		return in.evalLogical(ex)

	case *ast.Variable:
		return in.lookupVariable(ex.Name, ex)

	case *ast.Assign:
		return in.evalAssign(ex)

	case *ast.Call:
		return in.evalCall(ex)

	case *ast.Get:
		return in.evalGet(ex)

	case *ast.Set:
		return in.evalSet(ex)

	case *ast.This:
		return in.lookupVariable(ex.Keyword, ex)

	case *ast.Super:
		return in.evalSuper(ex)

	default:
		panic("interpreter: unhandled expression type")
	}
}

func (in *Interpreter) evalUnary(ex *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}
	panic("interpreter: unhandled unary operator")
}

func (in *Interpreter) evalBinary(ex *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case token.MINUS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l - r, nil
	case token.SLASH:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l / r, nil
	case token.STAR:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l * r, nil
	case token.PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, runtimeErr(ex.Operator, "Operands must be two numbers or two strings.")
	case token.GREATER:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l >= r, nil
	case token.LESS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, runtimeErr(ex.Operator, "Operands must be numbers.")
		}
		return l <= r, nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	panic("interpreter: unhandled binary operator")
}

// evalLogical short-circuits on truthiness and returns the original
// operand value (not a coerced Bool) — spec.md §4.4.
func (in *Interpreter) evalLogical(ex *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	if ex.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(ex.Right)
}

func (in *Interpreter) evalAssign(ex *ast.Assign) (interface{}, error) {
	value, err := in.evaluate(ex.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.locals[ex]; ok {
		in.environment.AssignAt(depth, ex.Name.Lexeme, value)
		return value, nil
	}
	if err := in.globals.Assign(ex.Name.Lexeme, value, ex.Name.Line, ex.Name.Column); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalCall(ex *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(ex.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(ex.Arguments))
	for _, a := range ex.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Paren.Line, ex.Paren.Column,
			"Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(ex.Paren.Line, ex.Paren.Column,
			argCountMismatch(callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(ex *ast.Get) (interface{}, error) {
	obj, err := in.evaluate(ex.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Name.Line, ex.Name.Column,
			"Only instances have properties.")
	}
	v, getErr := instance.Get(ex.Name.Lexeme, ex.Name.Line, ex.Name.Column)
	if getErr != nil {
		return nil, withSuggestion(getErr, instance.FieldNames(), ex.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalSet(ex *ast.Set) (interface{}, error) {
	obj, err := in.evaluate(ex.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Name.Line, ex.Name.Column,
			"Only instances have fields.")
	}
	value, err := in.evaluate(ex.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(ex.Name.Lexeme, value)
	return value, nil
}

// evalSuper reads the superclass `distance` links up and the bound `this`
// at `distance - 1` links up — the two-scope structure spec.md §9 requires
// be preserved verbatim: `super` sits one scope outside `this`.
func (in *Interpreter) evalSuper(ex *ast.Super) (interface{}, error) {
	distance, ok := in.locals[ex]
	if !ok {
		// Unreachable for a resolved program: the resolver always finds
		// `super` in a local scope when it accepts the use at all.
		return nil, loxerr.NewRuntimeError(ex.Keyword.Line, ex.Keyword.Column,
			"Undefined variable 'super'.")
	}
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method, found := superclass.FindMethod(ex.Method.Lexeme)
	if !found {
		return nil, loxerr.NewRuntimeError(ex.Method.Line, ex.Method.Column,
			"Undefined property '"+ex.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}

func (in *Interpreter) lookupVariable(name token.Token, use ast.Expr) (interface{}, error) {
	if depth, ok := in.locals[use]; ok {
		return in.environment.GetAt(depth, name.Lexeme), nil
	}
	v, err := in.globals.Get(name.Lexeme, name.Line, name.Column)
	if err != nil {
		return nil, withSuggestion(err, in.globals.AllNames(), name.Lexeme)
	}
	return v, nil
}

func numberOperands(left, right interface{}) (float64, float64, bool) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	return l, r, ok1 && ok2
}

func runtimeErr(op token.Token, message string) error {
	return loxerr.NewRuntimeError(op.Line, op.Column, message)
}

func argCountMismatch(expected, got int) string {
	return "Expected " + itoa(expected) + " arguments but got " + itoa(got) + "."
}
