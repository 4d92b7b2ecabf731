package lisp

// Special forms intercept a list before generic evaluation when the list's
// head is a symbol naming one of them.  Handlers receive the unevaluated
// operand list.
type langSpecialOp struct {
	name string
	fun  LBuiltin
}

var langSpecialOps []*langSpecialOp

// Populated in init to break the initialization cycle between the op table
// and handlers that call back into Eval.
func init() {
	langSpecialOps = []*langSpecialOp{
		{"def!", opDef},
		{"let*", opLetSeq},
		{"do", opDo},
		{"if", opIf},
		{"fn*", opFn},
	}
}

func lookupSpecialOp(name string) *langSpecialOp {
	for _, op := range langSpecialOps {
		if op.name == name {
			return op
		}
	}
	return nil
}

// (def! name expr)
func opDef(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("def!", "two arguments expected (got %d)", len(args.Cells))
	}
	sym := args.Cells[0]
	if sym.Type != LSymbol {
		return berrf("def!", "first argument is not a symbol: %s", sym.Type)
	}
	v := env.Eval(args.Cells[1])
	if v.Type == LError {
		return v
	}
	return env.Put(sym.Str, v)
}

// (let* (name expr ...) body)
func opLetSeq(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("let*", "two arguments expected (got %d)", len(args.Cells))
	}
	bindlist := args.Cells[0]
	if !isSeq(bindlist) {
		return berrf("let*", "first argument is not a list: %s", bindlist.Type)
	}
	if len(bindlist.Cells)%2 != 0 {
		return berrf("let*", "first argument is not a list of pairs")
	}
	// Each initializer is evaluated in the partially populated scope so
	// later bindings see earlier siblings.
	letenv := NewEnv(env)
	for i := 0; i < len(bindlist.Cells); i += 2 {
		sym := bindlist.Cells[i]
		if sym.Type != LSymbol {
			return berrf("let*", "binding name is not a symbol: %s", sym.Type)
		}
		v := letenv.Eval(bindlist.Cells[i+1])
		if v.Type == LError {
			return v
		}
		letenv.Put(sym.Str, v)
	}
	return letenv.Eval(args.Cells[1])
}

// (do expr ...)
func opDo(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) == 0 {
		return berrf("do", "at least one argument expected")
	}
	var val *LVal
	for _, c := range args.Cells {
		val = env.Eval(c)
		if val.Type == LError {
			return val
		}
	}
	return val
}

// (if condition then else?)
func opIf(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 && len(args.Cells) != 3 {
		return berrf("if", "two or three arguments expected (got %d)", len(args.Cells))
	}
	r := env.Eval(args.Cells[0])
	if r.Type == LError {
		return r
	}
	if r.IsTruthy() {
		return env.Eval(args.Cells[1])
	}
	if len(args.Cells) == 3 {
		return env.Eval(args.Cells[2])
	}
	return Nil()
}

// (fn* (param ... & rest?) body)
func opFn(env *LEnv, args *LVal) *LVal {
	if len(args.Cells) != 2 {
		return berrf("fn*", "two arguments expected (got %d)", len(args.Cells))
	}
	formals := args.Cells[0]
	if !isSeq(formals) {
		return berrf("fn*", "first argument is not a list: %s", formals.Type)
	}
	for i, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return berrf("fn*", "first argument contains a non-symbol: %s", sym.Type)
		}
		if sym.Str == VarArgSymbol && i != len(formals.Cells)-2 {
			return berrf("fn*", "%s must be followed by exactly one symbol", VarArgSymbol)
		}
	}
	params := make([]*LVal, len(formals.Cells))
	copy(params, formals.Cells)
	return Lambda(List(params), args.Cells[1], env)
}
