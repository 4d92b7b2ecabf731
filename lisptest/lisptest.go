// Package lisptest provides a table-driven harness for exercising the
// interpreter end to end: source text is parsed, evaluated, and the printed
// result compared against an expectation.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.LEnv.  Result is the readable printing of the final
// value of Expr, or the error message if evaluation (or parsing) failed.
// Output, when non-empty, is the text prn/println wrote while evaluating
// Expr.
type TestSequence []struct {
	Expr   string
	Result string
	Output string
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			var output bytes.Buffer
			env := lisp.NewEnv(nil)
			lerr := lisp.InitializeUserEnv(env, lisp.WithStdout(&output))
			if lerr.Type == lisp.LError {
				t.Fatalf("failed to initialize environment: %v", lisp.GoError(lerr))
			}
			for j, expr := range test.TestSequence {
				output.Reset()
				result := evalToString(env, expr.Expr)
				if result != expr.Result {
					t.Errorf("expr %d %q: expected result %s (got %s)", j, expr.Expr, expr.Result, result)
				}
				if output.String() != expr.Output {
					t.Errorf("expr %d %q: expected output %q (got %q)", j, expr.Expr, expr.Output, output.String())
				}
			}
		})
	}
}

func evalToString(env *lisp.LEnv, src string) string {
	exprs, err := parser.ParseProgram("test", []byte(src))
	if err != nil {
		return err.Error()
	}
	var v *lisp.LVal
	for _, expr := range exprs {
		v = env.Eval(expr)
		if v.Type == lisp.LError {
			return lisp.GoError(v).Error()
		}
	}
	return lisp.PrintStr(v, true)
}
