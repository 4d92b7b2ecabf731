package lisp

import (
	"fmt"
	"strings"
)

// LBuiltinDef is a builtin function definition.
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"=", builtinEqual},
	{"<", builtinLT},
	{"<=", builtinLEq},
	{">", builtinGT},
	{">=", builtinGEq},
	{"list", builtinList},
	{"list?", builtinIsList},
	{"empty?", builtinIsEmpty},
	{"count", builtinCount},
	{"pr-str", builtinPrStr},
	{"str", builtinStr},
	{"prn", builtinPrn},
	{"println", builtinPrintln},
	{"not", builtinNot},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins)+len(userBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	offset := len(langBuiltins)
	for i := range userBuiltins {
		funs[offset+i] = userBuiltins[i]
	}
	return funs
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs("+", args)
	if lerr != nil {
		return lerr
	}
	return Number(a + b)
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs("-", args)
	if lerr != nil {
		return lerr
	}
	return Number(a - b)
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs("*", args)
	if lerr != nil {
		return lerr
	}
	return Number(a * b)
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs("/", args)
	if lerr != nil {
		return lerr
	}
	if b == 0 {
		return ErrorConditionf(CondDivideByZero, "division by zero")
	}
	return Number(a / b)
}

func builtinEqual(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("=", "two arguments expected (got %d)", len(args.Cells))
	}
	return Bool(Equal(args.Cells[0], args.Cells[1]))
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs("<", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a < b)
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs("<=", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a <= b)
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs(">", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a > b)
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	a, b, lerr := numberArgs(">=", args)
	if lerr != nil {
		return lerr
	}
	return Bool(a >= b)
}

func builtinList(env *LEnv, args *LVal) *LVal {
	return List(args.Cells)
}

func builtinIsList(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("list?", "one argument expected (got %d)", len(args.Cells))
	}
	return Bool(args.Cells[0].Type == LList)
}

func builtinIsEmpty(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("empty?", "one argument expected (got %d)", len(args.Cells))
	}
	v := args.Cells[0]
	if !isSeq(v) {
		return berrf("empty?", "argument is not a list: %s", v.Type)
	}
	return Bool(len(v.Cells) == 0)
}

func builtinCount(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("count", "one argument expected (got %d)", len(args.Cells))
	}
	v := args.Cells[0]
	switch {
	case isSeq(v):
		return Number(int64(len(v.Cells)))
	case v.IsNil():
		return Number(0)
	default:
		return berrf("count", "argument is not a list: %s", v.Type)
	}
}

func builtinPrStr(env *LEnv, args *LVal) *LVal {
	return String(joinPrinted(args.Cells, " ", true))
}

func builtinStr(env *LEnv, args *LVal) *LVal {
	return String(joinPrinted(args.Cells, "", false))
}

func builtinPrn(env *LEnv, args *LVal) *LVal {
	fmt.Fprintln(env.Runtime.Stdout, joinPrinted(args.Cells, " ", true))
	return Nil()
}

func builtinPrintln(env *LEnv, args *LVal) *LVal {
	fmt.Fprintln(env.Runtime.Stdout, joinPrinted(args.Cells, " ", false))
	return Nil()
}

func builtinNot(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 1 {
		return berrf("not", "one argument expected (got %d)", len(args.Cells))
	}
	return Bool(!args.Cells[0].IsTruthy())
}

func joinPrinted(cells []*LVal, sep string, readable bool) string {
	strs := make([]string, len(cells))
	for i, c := range cells {
		strs[i] = PrintStr(c, readable)
	}
	return strings.Join(strs, sep)
}

func numberArgs(name string, args *LVal) (int64, int64, *LVal) {
	if len(args.Cells) != 2 {
		return 0, 0, berrf(name, "two arguments expected (got %d)", len(args.Cells))
	}
	for _, c := range args.Cells {
		if c.Type != LNumber {
			return 0, 0, berrf(name, "argument is not a number: %s", c.Type)
		}
	}
	return args.Cells[0].Int, args.Cells[1].Int, nil
}

// berrf returns an error value with a message prefixed by the name of the
// builtin or special form that produced it.
func berrf(name string, format string, v ...interface{}) *LVal {
	v = append([]interface{}{name}, v...)
	return Errorf("%s: "+format, v...)
}
