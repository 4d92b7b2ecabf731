package lisp

import (
	"io"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Runtime holds state shared by every environment in a chain.  The writers
// receive the output of prn/println and the DEBUG-EVAL trace respectively.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// LEnv is a lisp environment: a single lexical scope holding its own
// bindings plus a reference to the enclosing scope.  Scopes are shared, not
// copied -- a closure holding a reference to env observes later rebindings
// made through any other reference to the same scope.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv.  A nil parent produces a root
// (global) scope with a fresh Runtime; otherwise the parent's Runtime is
// shared.
func NewEnv(parent *LEnv) *LEnv {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = newRuntime()
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

// Lookup finds the value bound to name in env or the nearest enclosing scope
// that binds it.  Lookup has no side effects.
func (env *LEnv) Lookup(name string) (*LVal, bool) {
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Get resolves the symbol named k against env's scope chain.  An error value
// with the unbound-symbol condition is returned when the chain is exhausted.
func (env *LEnv) Get(k string) *LVal {
	if v, ok := env.Lookup(k); ok {
		return v
	}
	return ErrorConditionf(CondUnboundSymbol, "symbol not found: %s", k)
}

// Put binds k to v in env's own scope, never in an enclosing scope.  Put
// returns v so definitions can be chained as expressions.
func (env *LEnv) Put(k string, v *LVal) *LVal {
	if v == nil {
		panic("nil value")
	}
	env.Scope[k] = v
	return v
}

// GetGlobal resolves k in the root environment (global scope).
func (env *LEnv) GetGlobal(k string) *LVal {
	return env.root().Get(k)
}

// PutGlobal binds k to v in the root environment (global scope).
func (env *LEnv) PutGlobal(k string, v *LVal) *LVal {
	return env.root().Put(k, v)
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddBuiltins binds the given funs to their names in env.  When called with
// no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, ok := env.Scope[f.Name()]; ok {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(f.Name(), Fun(f.Name(), f.Eval))
	}
}

// InitializeUserEnv populates env with the default builtins and applies any
// Configs given.  The returned LVal is an error value if a Config failed.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}
