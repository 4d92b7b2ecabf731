package lisptest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"self-evaluating atoms", TestSequence{
			{`3`, `3`, ""},
			{`-7`, `-7`, ""},
			{`nil`, `nil`, ""},
			{`true`, `true`, ""},
			{`false`, `false`, ""},
			{`"abc"`, `"abc"`, ""},
			{`:kw`, `:kw`, ""},
			{`()`, `()`, ""},
		}},
		{"arithmetic", TestSequence{
			{`(+ 2 3)`, `5`, ""},
			{`(- 10 4)`, `6`, ""},
			{`(* 3 3)`, `9`, ""},
			{`(/ 7 2)`, `3`, ""},
			{`(/ -7 2)`, `-3`, ""},
			{`(+ 1 (* 2 3))`, `7`, ""},
		}},
		{"comparison", TestSequence{
			{`(< 1 2)`, `true`, ""},
			{`(< 2 1)`, `false`, ""},
			{`(<= 2 2)`, `true`, ""},
			{`(> 1 2)`, `false`, ""},
			{`(>= 3 2)`, `true`, ""},
		}},
		{"equality", TestSequence{
			{`(= 1 1)`, `true`, ""},
			{`(= 1 2)`, `false`, ""},
			{`(= "a" "a")`, `true`, ""},
			{`(= "a" :a)`, `false`, ""},
			{`(= nil nil)`, `true`, ""},
			{`(= (list 1 2) (list 1 2))`, `true`, ""},
			{`(= (list 1 2) [1 2])`, `true`, ""},
			{`(= [1 [2]] (list 1 (list 2)))`, `true`, ""},
			{`(= {:a 1 :b 2} {:b 2 :a 1})`, `true`, ""},
			{`(= {:a 1} {:a 2})`, `false`, ""},
			{`(= (fn* () 1) (fn* () 1))`, `false`, ""},
		}},
		{"sequence builtins", TestSequence{
			{`(list 1 2 3)`, `(1 2 3)`, ""},
			{`(list)`, `()`, ""},
			{`(list? (list 1 2))`, `true`, ""},
			{`(list? [1 2])`, `false`, ""},
			{`(list? 1)`, `false`, ""},
			{`(empty? (list))`, `true`, ""},
			{`(empty? [])`, `true`, ""},
			{`(empty? (list 1))`, `false`, ""},
			{`(count (list 1 2 3))`, `3`, ""},
			{`(count [])`, `0`, ""},
			{`(count nil)`, `0`, ""},
		}},
		{"containers evaluate elements", TestSequence{
			{`[1 (+ 1 2) [3]]`, `[1 3 [3]]`, ""},
			{`{:a (+ 1 2)}`, `{:a 3}`, ""},
			{`{:a 1 :a 2}`, `{:a 1 :a 2}`, ""},
		}},
		{"if", TestSequence{
			{`(if true 1 2)`, `1`, ""},
			{`(if false 1 2)`, `2`, ""},
			{`(if nil 1 2)`, `2`, ""},
			{`(if false 1)`, `nil`, ""},
			{`(if 0 1 2)`, `1`, ""},
			{`(if (list) 1 2)`, `1`, ""},
			{`(if "" 1 2)`, `1`, ""},
			{`(if (> 2 1) "yes" "no")`, `"yes"`, ""},
		}},
		{"not", TestSequence{
			{`(not true)`, `false`, ""},
			{`(not false)`, `true`, ""},
			{`(not nil)`, `true`, ""},
			{`(not 0)`, `false`, ""},
			{`(not (list))`, `false`, ""},
		}},
		{"do", TestSequence{
			{`(do 1 2 3)`, `3`, ""},
			{`(do (def! x 1) (+ x 1))`, `2`, ""},
			{`(do (prn 1) 2)`, `2`, "1\n"},
		}},
		{"def!", TestSequence{
			{`(def! x 5)`, `5`, ""},
			{`x`, `5`, ""},
			{`(def! x (+ x 1))`, `6`, ""},
			{`x`, `6`, ""},
			{`(def! y x)`, `6`, ""},
		}},
		{"let*", TestSequence{
			{`(let* (x 2) x)`, `2`, ""},
			{`(let* (x 2 y (+ x 1)) (* x y))`, `6`, ""},
			{`(let* [x 2 y 3] (+ x y))`, `5`, ""},
			{`(def! x 1) (let* (x 10) x)`, `10`, ""},
			{`x`, `1`, ""},
		}},
		{"fn*", TestSequence{
			{`(fn* (a) a)`, `#<function>`, ""},
			{`((fn* (a) a) 7)`, `7`, ""},
			{`((fn* (a b) (+ a b)) 2 3)`, `5`, ""},
			{`((fn* () 42))`, `42`, ""},
			{`((fn* [a b] (* a b)) 3 4)`, `12`, ""},
			{`(def! inc (fn* (n) (+ n 1)))`, `#<function>`, ""},
			{`(inc 41)`, `42`, ""},
			{`((fn* (f x) (f (f x))) inc 1)`, `3`, ""},
		}},
		{"variadic functions", TestSequence{
			{`((fn* (a & rest) (list a rest)) 1 2 3)`, `(1 (2 3))`, ""},
			{`((fn* (a & rest) rest) 1)`, `()`, ""},
			{`((fn* (& rest) rest) 1 2)`, `(1 2)`, ""},
			{`((fn* (& rest) (count rest)))`, `0`, ""},
		}},
		{"permissive fixed arity", TestSequence{
			{`((fn* (a b) b) 1)`, `nil`, ""},
			{`((fn* (a b) a) 1)`, `1`, ""},
		}},
		{"string builtins", TestSequence{
			{`(str "a" "b" "c")`, `"abc"`, ""},
			{`(str 1 "x" :k)`, `"1x:k"`, ""},
			{`(str)`, `""`, ""},
			{`(pr-str "a" "b")`, `"\"a\" \"b\""`, ""},
			{`(pr-str (list 1 "x"))`, `"(1 \"x\")"`, ""},
			{`(prn "a\nb")`, `nil`, "\"a\\nb\"\n"},
			{`(println "a" "b")`, `nil`, "a b\n"},
			{`(println "a\nb")`, `nil`, "a\nb\n"},
		}},
		{"recursion", TestSequence{
			{`(def! fact (fn* (n) (if (= n 0) 1 (* n (fact (- n 1))))))`, `#<function>`, ""},
			{`(fact 5)`, `120`, ""},
			{`(def! fib (fn* (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))`, `#<function>`, ""},
			{`(fib 10)`, `55`, ""},
		}},
	}
	RunTestSuite(t, tests)
}
