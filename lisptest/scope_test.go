package lisptest

import (
	"testing"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"lexical shadowing", TestSequence{
			{`(def! x 1)`, `1`, ""},
			{`(let* (x 10) x)`, `10`, ""},
			{`x`, `1`, ""},
			{`(let* (x 10 y x) y)`, `10`, ""},
		}},
		{"sibling bindings see earlier siblings only", TestSequence{
			{`(let* (x 2 y (+ x 1)) (* x y))`, `6`, ""},
			{`(let* (a 1) a)`, `1`, ""},
			{`a`, `symbol not found: a`, ""},
		}},
		{"closures capture their defining scope", TestSequence{
			{`(def! x 5)`, `5`, ""},
			{`(def! f (fn* () x))`, `#<function>`, ""},
			{`(f)`, `5`, ""},
			// A shadowing child scope created after capture is not on the
			// closure's chain.
			{`(let* (x 100) (f))`, `5`, ""},
			// Rebinding in a scope the closure actually captured is visible.
			{`(def! x 6)`, `6`, ""},
			{`(f)`, `6`, ""},
		}},
		{"closures over let* scopes", TestSequence{
			{`(def! mk (fn* (n) (fn* () n)))`, `#<function>`, ""},
			{`(def! f2 (mk 2))`, `#<function>`, ""},
			{`(def! f3 (mk 3))`, `#<function>`, ""},
			{`(f2)`, `2`, ""},
			{`(f3)`, `3`, ""},
			{`(def! g (let* (hidden 7) (fn* () hidden)))`, `#<function>`, ""},
			{`(g)`, `7`, ""},
			{`hidden`, `symbol not found: hidden`, ""},
		}},
		{"parameters bind in the call scope", TestSequence{
			{`(def! x 1)`, `1`, ""},
			{`((fn* (x) (+ x 1)) 41)`, `42`, ""},
			{`x`, `1`, ""},
		}},
		{"def! inside a function affects the call scope only", TestSequence{
			{`(def! f (fn* () (do (def! local 9) local)))`, `#<function>`, ""},
			{`(f)`, `9`, ""},
			{`local`, `symbol not found: local`, ""},
		}},
	}
	RunTestSuite(t, tests)
}
