// Package dynenv holds the dynamic-variable bindings of an interpreter
// thread as an explicit value.
//
// An Env is not safe for concurrent use. Work that runs on another goroutine
// gets its own copy from Clone, carried in a context.Context via NewContext.
package dynenv

import "context"

type binding struct {
	name  string
	value any
}

// Env is a stack of dynamic variable bindings. A later binding of a name
// shadows earlier ones until it is unwound with Restore.
type Env struct {
	bindings []binding
}

func New() *Env {
	return &Env{}
}

// Bind pushes a new binding of name.
func (e *Env) Bind(name string, value any) {
	e.bindings = append(e.bindings, binding{name: name, value: value})
}

// Mark returns the current depth, to be passed to Restore.
func (e *Env) Mark() int {
	return len(e.bindings)
}

// Restore unwinds every binding pushed since mark.
func (e *Env) Restore(mark int) {
	if mark < 0 || mark > len(e.bindings) {
		return
	}
	clear(e.bindings[mark:])
	e.bindings = e.bindings[:mark]
}

// Lookup returns the value of the innermost binding of name.
func (e *Env) Lookup(name string) (any, bool) {
	if e == nil {
		return nil, false
	}
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].name == name {
			return e.bindings[i].value, true
		}
	}
	return nil, false
}

// Set assigns the innermost binding of name and reports whether one existed.
func (e *Env) Set(name string, value any) bool {
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].name == name {
			e.bindings[i].value = value
			return true
		}
	}
	return false
}

func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.bindings)
}

// Clone returns an independent copy of the binding stack. Bound values are
// shared, the stack is not. Cloning a nil Env yields an empty one.
func (e *Env) Clone() *Env {
	if e == nil {
		return New()
	}
	cp := make([]binding, len(e.bindings))
	copy(cp, e.bindings)
	return &Env{bindings: cp}
}

type envKey struct{}

// NewContext returns a copy of ctx carrying env.
func NewContext(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromContext returns the Env carried by ctx, or nil.
func FromContext(ctx context.Context) *Env {
	env, _ := ctx.Value(envKey{}).(*Env)
	return env
}
