package mython

// Method is a named, user-defined operation: an ordered list of formal
// parameter names plus a body node executed against a fresh per-call
// Closure (see Instance.Call).
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// Class holds a class's own methods in declaration order, a by-name index
// for O(1) local lookup, and an optional parent for single inheritance.
type Class struct {
	Name    string
	Parent  *Class
	methods []*Method
	byName  map[string]int
}

// NewClass builds a Class from methods in declaration order.
func NewClass(name string, parent *Class, methods []*Method) *Class {
	c := &Class{Name: name, Parent: parent, methods: methods, byName: make(map[string]int, len(methods))}
	for i, m := range methods {
		c.byName[m.Name] = i
	}
	return c
}

// Method resolves name by walking c, then c.Parent, and so on, returning the
// first match or nil. It does not check arity; callers that need an
// arity-sensitive lookup should compare len(Method.Params) themselves (see
// Instance.HasMethod).
func (c *Class) Method(name string) *Method {
	for cur := c; cur != nil; cur = cur.Parent {
		if idx, ok := cur.byName[name]; ok {
			return cur.methods[idx]
		}
	}
	return nil
}
