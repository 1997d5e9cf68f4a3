package interpreter

import "github.com/aledsdavies/glox/pkgs/ast"

// Callable is anything that can appear as the callee of a Call expression:
// a user-defined Function, a Class (construction), an Instance bound
// method, or a native built-in.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// Function is a user-defined `fun` declaration or class method, paired with
// the Environment active at its definition (spec.md §3's Function object).
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

func NewFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// Bind constructs a fresh bound method: a Function whose closure is a
// one-entry scope {this: instance} enclosing this Function's original
// closure. Repeated binds of the same method need not return the same
// object; bound-method identity is not observable in Lox (spec.md §9).
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	ret, err := in.executeBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		// Initializers always return `this` on successful completion,
		// regardless of whether the body fell through or hit a bare
		// `return;` — but a genuine runtime error above still propagates.
		return f.closure.GetAt(0, "this"), nil
	}
	if ret != nil {
		return ret.value, nil
	}
	return nil, nil
}

// NativeFunction wraps a zero-configuration Go function as a Lox Callable
// (spec.md §6's `clock`/`unixClock` built-ins).
type NativeFunction struct {
	name string
	fn   func() interface{}
}

func (n *NativeFunction) Arity() int { return 0 }
func (n *NativeFunction) String() string {
	return "<native fn " + n.name + ">"
}
func (n *NativeFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(), nil
}
