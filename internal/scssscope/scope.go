// Package scssscope implements the lexical environment: three namespaces
// (variables, mixins, functions) that compose by copying rather than by a
// parent-pointer chain. This simplifies reasoning about aliasing at the
// cost of copy work; either design is conformant, and we take the
// eager-copy side of that tradeoff.
package scssscope

import (
	"github.com/scssc/scssc/internal/scsslexer"
	"github.com/scssc/scssc/internal/scssvalue"
)

type Token = scsslexer.Token

// MixinDef captures a mixin's formal parameters and body tokens together
// with the scope in effect at the point it was defined.
type MixinDef struct {
	Name    string
	Params  []Param
	Body    []Token
	Closure Scope
}

// FunctionDef is shaped identically to MixinDef; its body is restricted by
// the parser to variable assignments, @return, @if, and @for.
type FunctionDef struct {
	Name    string
	Params  []Param
	Body    []Token
	Closure Scope
}

// Param is one formal parameter: a name, an optional default (left as raw
// tokens and evaluated when a call omits the argument, in a copy of the
// definition's closure scope with the earlier parameters bound, not in
// the call-site scope), and a variadic flag.
// Only the last parameter of a definition may set Variadic.
type Param struct {
	Name      string
	Default   []Token
	Variadic  bool
	HasDefault bool
}

// Scope is a snapshot of bindings. Copying a Scope (via Clone) never
// affects the source, since the three maps are replaced wholesale rather
// than mutated in place from the clone.
type Scope struct {
	vars   map[string]scssvalue.Value
	mixins map[string]MixinDef
	fns    map[string]FunctionDef
}

func New() Scope {
	return Scope{
		vars:   map[string]scssvalue.Value{},
		mixins: map[string]MixinDef{},
		fns:    map[string]FunctionDef{},
	}
}

// Clone snapshots the scope: the returned Scope shares no map with the
// receiver, so later writes to either are isolated from the other.
func (s Scope) Clone() Scope {
	out := New()
	for k, v := range s.vars {
		out.vars[k] = v
	}
	for k, v := range s.mixins {
		out.mixins[k] = v
	}
	for k, v := range s.fns {
		out.fns[k] = v
	}
	return out
}

func (s Scope) GetVar(name string) (scssvalue.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// InsertVar writes to the scope image; last write wins.
func (s Scope) InsertVar(name string, v scssvalue.Value) {
	s.vars[name] = v
}

func (s Scope) GetMixin(name string) (MixinDef, bool) {
	m, ok := s.mixins[name]
	return m, ok
}

func (s Scope) InsertMixin(name string, m MixinDef) {
	s.mixins[name] = m
}

func (s Scope) GetFn(name string) (FunctionDef, bool) {
	f, ok := s.fns[name]
	return f, ok
}

func (s Scope) InsertFn(name string, f FunctionDef) {
	s.fns[name] = f
}

// Extend merges another scope's bindings into this one. Existing bindings
// are overwritten by other's.
func (s Scope) Extend(other Scope) {
	for k, v := range other.vars {
		s.vars[k] = v
	}
	for k, v := range other.mixins {
		s.mixins[k] = v
	}
	for k, v := range other.fns {
		s.fns[k] = v
	}
}

// VarNames returns the variable namespace's keys, in map iteration order.
func (s Scope) VarNames() []string {
	out := make([]string, 0, len(s.vars))
	for k := range s.vars {
		out = append(out, k)
	}
	return out
}
