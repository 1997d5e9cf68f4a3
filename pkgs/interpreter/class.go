package interpreter

import "github.com/aledsdavies/glox/pkgs/loxerr"

// Class is a runtime class object (spec.md §3): a name, its own methods,
// and an optional superclass reference for single inheritance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name in this class's own methods first, then
// recursively up the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) String() string { return c.Name }

// Call constructs a new Instance and, if an `init` method is defined
// anywhere in the chain, binds and calls it with the given arguments
// (spec.md §4.4's Class-call semantics).
func (c *Class) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	instance := &Instance{class: c, fields: make(map[string]interface{})}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: identity-by-address, mutable, shared
// (spec.md §3's Instance object).
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}

// Get implements spec.md §4.4's property-read semantics: fields shadow
// methods; a method hit is returned freshly bound to this instance.
func (i *Instance) Get(name string, line, col int) (interface{}, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if method, ok := i.class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, loxerr.NewRuntimeError(line, col, "Undefined property '"+name+"'.")
}

// Set implements spec.md §4.4's property-write semantics: always a field
// write, creating the field if absent.
func (i *Instance) Set(name string, value interface{}) {
	i.fields[name] = value
}

// FieldNames returns field and inherited-method names combined, for
// "did you mean" suggestions on an undefined-property diagnostic.
func (i *Instance) FieldNames() []string {
	names := make([]string, 0, len(i.fields))
	for n := range i.fields {
		names = append(names, n)
	}
	for c := i.class; c != nil; c = c.Superclass {
		for n := range c.Methods {
			names = append(names, n)
		}
	}
	return names
}
