package lisp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T, config ...Config) *LEnv {
	t.Helper()
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, config...)
	require.NotEqual(t, LError, lerr.Type)
	return env
}

func sexpr(cells ...*LVal) *LVal {
	return List(cells)
}

func TestEvalSelfEvaluating(t *testing.T) {
	env := testEnv(t)
	for _, v := range []*LVal{Nil(), Bool(true), Number(-17), String("x"), Keyword("k")} {
		r := env.Eval(v)
		assert.True(t, Equal(v, r), "%v evaluated to %v", v, r)
	}
	f := env.Eval(sexpr(Symbol("fn*"), List(nil), Number(1)))
	require.Equal(t, LFun, f.Type)
	assert.Same(t, f, env.Eval(f))
}

func TestEvalSymbolResolution(t *testing.T) {
	env := testEnv(t)
	env.Put("a", Number(3))
	r := env.Eval(Symbol("a"))
	assert.Equal(t, int64(3), r.Int)

	r = env.Eval(Symbol("missing"))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, CondUnboundSymbol, ErrorCondition(GoError(r)))
}

func TestEvalApplication(t *testing.T) {
	env := testEnv(t)
	r := env.Eval(sexpr(Symbol("+"), Number(2), Number(3)))
	require.Equal(t, LNumber, r.Type)
	assert.Equal(t, int64(5), r.Int)

	// The head position is evaluated like any other element.
	env.Put("plus", env.Get("+"))
	r = env.Eval(sexpr(Symbol("plus"), Number(2), Number(3)))
	assert.Equal(t, int64(5), r.Int)

	r = env.Eval(sexpr(Number(1), Number(2)))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, CondNotAFunction, ErrorCondition(GoError(r)))
}

func TestEvalDoesNotMutateInput(t *testing.T) {
	env := testEnv(t)
	form := sexpr(Symbol("+"), Number(1), sexpr(Symbol("+"), Number(2), Number(3)))
	r := env.Eval(form)
	assert.Equal(t, int64(6), r.Int)

	// The input form can be evaluated again because evaluation rebuilds
	// containers instead of editing them.
	r = env.Eval(form)
	assert.Equal(t, int64(6), r.Int)
	assert.Equal(t, LSymbol, form.Cells[0].Type)
}

func TestEvalPermissiveFixedArity(t *testing.T) {
	env := testEnv(t)
	f := env.Eval(sexpr(Symbol("fn*"), List([]*LVal{Symbol("a"), Symbol("b")}), Symbol("b")))
	require.Equal(t, LFun, f.Type)

	r := env.Call(f, List([]*LVal{Number(1)}))
	assert.Equal(t, LNil, r.Type)

	r = env.Call(f, List([]*LVal{Number(1), Number(2), Number(3)}))
	require.Equal(t, LError, r.Type)
}

func TestDebugEvalTrace(t *testing.T) {
	var trace bytes.Buffer
	env := testEnv(t, WithStderr(&trace))
	form := sexpr(Symbol("+"), Number(2), Number(3))

	// Without the sentinel bound nothing is logged.
	r := env.Eval(form)
	assert.Equal(t, int64(5), r.Int)
	assert.Equal(t, "", trace.String())

	env.Put(DebugEvalSymbol, Bool(true))
	r = env.Eval(form)
	assert.Equal(t, int64(5), r.Int)
	assert.Contains(t, trace.String(), "EVAL: (+ 2 3)")
	assert.Contains(t, trace.String(), "5")

	// The sentinel is disabled by rebinding it to a falsy value.
	trace.Reset()
	env.Put(DebugEvalSymbol, Bool(false))
	r = env.Eval(form)
	assert.Equal(t, int64(5), r.Int)
	assert.Equal(t, "", trace.String())
}

func TestDebugEvalDoesNotAlterErrors(t *testing.T) {
	var trace bytes.Buffer
	env := testEnv(t, WithStderr(&trace))
	env.Put(DebugEvalSymbol, Bool(true))

	r := env.Eval(sexpr(Symbol("/"), Number(1), Number(0)))
	require.Equal(t, LError, r.Type)
	assert.Equal(t, CondDivideByZero, ErrorCondition(GoError(r)))
	assert.True(t, strings.Contains(trace.String(), "EVAL: (/ 1 0)"))
}

func TestPrnWritesToRuntimeStdout(t *testing.T) {
	var out bytes.Buffer
	env := testEnv(t, WithStdout(&out))
	r := env.Eval(sexpr(Symbol("prn"), String("a"), Number(1)))
	assert.Equal(t, LNil, r.Type)
	assert.Equal(t, "\"a\" 1\n", out.String())

	out.Reset()
	r = env.Eval(sexpr(Symbol("println"), String("a"), Number(1)))
	assert.Equal(t, LNil, r.Type)
	assert.Equal(t, "a 1\n", out.String())
}
